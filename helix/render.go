package helix

import (
	"bytes"

	"github.com/pelletier/go-toml/v2"
)

// Render encodes the theme as a Helix TOML document: one table per key, keys
// in ascending order. Identical themes render to identical bytes.
func (t *Theme) Render() ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(false)
	if err := enc.Encode(t.styles); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
