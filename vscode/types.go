package vscode

import (
	"encoding/json"
	"fmt"
)

// Palette maps VS Code color roles (e.g. "editor.background") to color values.
// Values are opaque and passed through verbatim.
type Palette map[string]string

// Lookup returns the color for role, treating empty values as absent.
func (p Palette) Lookup(role string) (string, bool) {
	if role == "" {
		return "", false
	}
	c, ok := p[role]
	if !ok || c == "" {
		return "", false
	}
	return c, true
}

// Theme is a parsed VS Code color theme.
type Theme struct {
	Name        string
	Type        string
	Colors      Palette
	TokenColors []TokenColor
}

// TokenColor is one entry of "tokenColors": a scope selector and its style.
type TokenColor struct {
	Name     string   `json:"name,omitempty"`
	Scope    Scope    `json:"scope"`
	Settings Settings `json:"settings"`
}

// Settings holds the style applied to every scope of a TokenColor.
type Settings struct {
	Foreground string `json:"foreground,omitempty"`
	Background string `json:"background,omitempty"`
	FontStyle  string `json:"fontStyle,omitempty"`
}

// Scope is a scope selector. VS Code accepts either a single scope name or an
// array of them; both decode into the same ordered list.
type Scope struct {
	names []string
}

// NewScope builds a Scope from scope names.
func NewScope(names ...string) Scope {
	return Scope{names: append([]string(nil), names...)}
}

// Names returns the scope names in document order.
func (s Scope) Names() []string {
	return s.names
}

// UnmarshalJSON accepts a string, an array of strings, or null.
func (s *Scope) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		s.names = nil
	case string:
		s.names = []string{v}
	case []any:
		names := make([]string, 0, len(v))
		for i, item := range v {
			name, ok := item.(string)
			if !ok {
				return fmt.Errorf("scope[%d]: expected string, got %T", i, item)
			}
			names = append(names, name)
		}
		s.names = names
	default:
		return fmt.Errorf("scope: expected string or array of strings, got %T", raw)
	}
	return nil
}
