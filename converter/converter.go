// Package converter turns VS Code color themes into Helix themes.
package converter

import (
	"github.com/cockroachdb/errors"

	converrors "vscode2helix/errors"
	"vscode2helix/helix"
	"vscode2helix/vscode"
)

// Convert maps a VS Code theme onto Helix keys. Token color rules are applied
// first, in document order, then the fixed palette mappings. It never fails:
// anything missing from the source is simply left out of the result.
func Convert(src *vscode.Theme) *helix.Theme {
	theme := helix.NewTheme()
	if src == nil {
		return theme
	}
	applyTokenColors(theme, src.TokenColors)
	applyPalette(theme, src.Colors)
	return theme
}

// Result is a rendered conversion with the details adapters log.
type Result struct {
	Name string
	Keys int
	TOML []byte
}

// Document parses a VS Code theme document, converts it, and renders the
// Helix TOML. Errors are *errors.ParseError or *errors.RenderError.
func Document(doc []byte) (*Result, error) {
	src, err := vscode.Parse(doc)
	if err != nil {
		return nil, converrors.NewParseError(err)
	}

	theme := Convert(src)
	out, err := theme.Render()
	if err != nil {
		return nil, converrors.NewRenderError(errors.Wrap(err, "encode toml"))
	}

	return &Result{Name: src.Name, Keys: theme.Len(), TOML: out}, nil
}

// VSCode2Helix converts a VS Code theme document into Helix TOML.
func VSCode2Helix(doc []byte) ([]byte, error) {
	res, err := Document(doc)
	if err != nil {
		return nil, err
	}
	return res.TOML, nil
}
