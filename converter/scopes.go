package converter

import (
	"strings"

	"vscode2helix/helix"
	"vscode2helix/vscode"
)

const (
	entityNamePrefix = "entity.name."
	entityName       = "entity.name"
	textKey          = "ui.text"
)

// helixKey maps a TextMate scope name to the Helix key it styles. A name
// that is entity.name once the prefix is gone styles ui.text.
func helixKey(scope string) string {
	key := strings.TrimPrefix(scope, entityNamePrefix)
	if key == entityName {
		return textKey
	}
	return key
}

func styleFromSettings(s vscode.Settings) helix.Style {
	return helix.Style{
		FG:        s.Foreground,
		BG:        s.Background,
		Modifiers: strings.Fields(s.FontStyle),
	}
}

// applyTokenColors merges every rule into theme in document order.
func applyTokenColors(theme *helix.Theme, rules []vscode.TokenColor) {
	for _, rule := range rules {
		style := styleFromSettings(rule.Settings)
		for _, scope := range rule.Scope.Names() {
			theme.Merge(helixKey(scope), style)
		}
	}
}
