package vscode

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/tailscale/hujson"
)

var (
	// ErrMissingColors is returned when the document has no "colors" object.
	ErrMissingColors = errors.New(`missing required field "colors"`)
	// ErrMissingTokenColors is returned when the document has no "tokenColors" array.
	ErrMissingTokenColors = errors.New(`missing required field "tokenColors"`)
)

type document struct {
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	Colors      Palette      `json:"colors"`
	TokenColors []TokenColor `json:"tokenColors"`
}

// Parse decodes a VS Code theme. Comments and trailing commas are accepted.
func Parse(data []byte) (*Theme, error) {
	// Standardize rewrites its argument in place.
	buf := append([]byte(nil), data...)
	buf, err := hujson.Standardize(buf)
	if err != nil {
		return nil, errors.Wrap(err, "strip comments")
	}

	var doc document
	if err := json.Unmarshal(buf, &doc); err != nil {
		return nil, errors.Wrap(err, "decode theme")
	}

	if doc.Colors == nil {
		return nil, ErrMissingColors
	}
	if doc.TokenColors == nil {
		return nil, ErrMissingTokenColors
	}

	return &Theme{
		Name:        doc.Name,
		Type:        doc.Type,
		Colors:      doc.Colors,
		TokenColors: doc.TokenColors,
	}, nil
}
