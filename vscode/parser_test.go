package vscode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	withComments := `{
  // exported from the marketplace
  "name": "Night Owl",
  "type": "dark",
  "colors": {
    "editor.background": "#011627", /* base */
    "editor.foreground": "#d6deeb",
  },
  "tokenColors": [
    {
      "name": "Comment",
      "scope": ["comment", "punctuation.definition.comment"],
      "settings": { "foreground": "#637777", "fontStyle": "italic" },
    },
    { "scope": "keyword", "settings": { "foreground": "#c792ea" } },
  ],
}`

	cases := []struct {
		name      string
		contents  string
		wantError error
		assert    func(t *testing.T, theme *Theme, err error)
	}{
		{
			name:     "comments and trailing commas are accepted",
			contents: withComments,
			assert: func(t *testing.T, theme *Theme, err error) {
				require.NoError(t, err)
				require.Equal(t, "Night Owl", theme.Name)
				require.Equal(t, "dark", theme.Type)
				require.Equal(t, "#011627", theme.Colors["editor.background"])
				require.Len(t, theme.TokenColors, 2)
				require.Equal(t, []string{"comment", "punctuation.definition.comment"}, theme.TokenColors[0].Scope.Names())
				require.Equal(t, "italic", theme.TokenColors[0].Settings.FontStyle)
				require.Equal(t, []string{"keyword"}, theme.TokenColors[1].Scope.Names())
			},
		},
		{
			name:     "empty colors and token colors are valid",
			contents: `{"colors": {}, "tokenColors": []}`,
			assert: func(t *testing.T, theme *Theme, err error) {
				require.NoError(t, err)
				require.Empty(t, theme.Colors)
				require.Empty(t, theme.TokenColors)
			},
		},
		{
			name:     "entries without scope or settings decode to empty values",
			contents: `{"colors": {}, "tokenColors": [{"settings": {"foreground": "#fff"}}, {"scope": "string"}]}`,
			assert: func(t *testing.T, theme *Theme, err error) {
				require.NoError(t, err)
				require.Empty(t, theme.TokenColors[0].Scope.Names())
				require.Equal(t, Settings{}, theme.TokenColors[1].Settings)
			},
		},
		{
			name:      "missing colors",
			contents:  `{"tokenColors": []}`,
			wantError: ErrMissingColors,
		},
		{
			name:      "null colors",
			contents:  `{"colors": null, "tokenColors": []}`,
			wantError: ErrMissingColors,
		},
		{
			name:      "missing token colors",
			contents:  `{"colors": {}}`,
			wantError: ErrMissingTokenColors,
		},
		{
			name:     "colors with the wrong shape",
			contents: `{"colors": ["#fff"], "tokenColors": []}`,
			assert: func(t *testing.T, theme *Theme, err error) {
				require.Error(t, err)
				require.Nil(t, theme)
			},
		},
		{
			name:     "numeric scope",
			contents: `{"colors": {}, "tokenColors": [{"scope": 3, "settings": {}}]}`,
			assert: func(t *testing.T, theme *Theme, err error) {
				require.Error(t, err)
				require.Contains(t, err.Error(), "scope")
			},
		},
		{
			name:     "array scope with a non-string item",
			contents: `{"colors": {}, "tokenColors": [{"scope": ["comment", 1], "settings": {}}]}`,
			assert: func(t *testing.T, theme *Theme, err error) {
				require.Error(t, err)
				require.Contains(t, err.Error(), "scope[1]")
			},
		},
		{
			name:     "not json at all",
			contents: `colors = {}`,
			assert: func(t *testing.T, theme *Theme, err error) {
				require.Error(t, err)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			theme, err := Parse([]byte(tc.contents))
			if tc.wantError != nil {
				require.ErrorIs(t, err, tc.wantError)
				require.Nil(t, theme)
				return
			}
			tc.assert(t, theme, err)
		})
	}
}

func TestParseDoesNotModifyInput(t *testing.T) {
	t.Parallel()

	input := []byte(`{"colors": {}, /* c */ "tokenColors": []}`)
	original := string(input)

	_, err := Parse(input)
	require.NoError(t, err)
	require.Equal(t, original, string(input))
}

func TestPaletteLookup(t *testing.T) {
	t.Parallel()

	p := Palette{"editor.background": "#000000", "editor.foreground": ""}

	c, ok := p.Lookup("editor.background")
	require.True(t, ok)
	require.Equal(t, "#000000", c)

	_, ok = p.Lookup("editor.foreground")
	require.False(t, ok)

	_, ok = p.Lookup("statusBar.background")
	require.False(t, ok)

	_, ok = p.Lookup("")
	require.False(t, ok)
}
