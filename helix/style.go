package helix

import (
	"slices"

	"github.com/samber/lo"
)

// Style is the value of one Helix theme key.
type Style struct {
	FG        string   `toml:"fg,omitempty" json:"fg,omitempty"`
	BG        string   `toml:"bg,omitempty" json:"bg,omitempty"`
	Modifiers []string `toml:"modifiers,omitempty" json:"modifiers,omitempty"`
}

// IsEmpty reports whether the style sets nothing.
func (s Style) IsEmpty() bool {
	return s.FG == "" && s.BG == "" && len(s.Modifiers) == 0
}

// merge layers next on top of s: colors present in next overwrite, modifiers
// are unioned and kept sorted and unique.
func (s Style) merge(next Style) Style {
	if next.FG != "" {
		s.FG = next.FG
	}
	if next.BG != "" {
		s.BG = next.BG
	}
	if len(next.Modifiers) > 0 {
		s.Modifiers = normalizeModifiers(append(slices.Clone(s.Modifiers), next.Modifiers...))
	}
	return s
}

func normalizeModifiers(mods []string) []string {
	mods = lo.Uniq(lo.Compact(mods))
	if len(mods) == 0 {
		return nil
	}
	slices.Sort(mods)
	return mods
}
