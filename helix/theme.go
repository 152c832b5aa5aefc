package helix

import (
	"slices"

	"github.com/samber/lo"
)

// Theme maps Helix theme keys ("ui.background", "keyword", ...) to styles.
// Keys are unique; writing to an existing key merges rather than replaces.
type Theme struct {
	styles map[string]Style
}

// NewTheme returns an empty theme.
func NewTheme() *Theme {
	return &Theme{styles: make(map[string]Style)}
}

// Merge inserts style at key, merging into any existing style. If the result
// is empty the key is removed, so a theme never holds empty styles.
func (t *Theme) Merge(key string, style Style) {
	merged := t.styles[key].merge(style)
	if merged.IsEmpty() {
		delete(t.styles, key)
		return
	}
	t.styles[key] = merged
}

// Get returns the style at key.
func (t *Theme) Get(key string) (Style, bool) {
	s, ok := t.styles[key]
	return s, ok
}

// Len returns the number of keys.
func (t *Theme) Len() int {
	return len(t.styles)
}

// Keys returns all keys in ascending order.
func (t *Theme) Keys() []string {
	keys := lo.Keys(t.styles)
	slices.Sort(keys)
	return keys
}

// Styles returns a copy of the key to style mapping.
func (t *Theme) Styles() map[string]Style {
	out := make(map[string]Style, len(t.styles))
	for k, v := range t.styles {
		out[k] = v
	}
	return out
}
