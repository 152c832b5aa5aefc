package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vscode2helix/config"
	converrors "vscode2helix/errors"
	"vscode2helix/helix"
)

const sampleTheme = `{
  // trailing commas and comments are fine
  "name": "Sample",
  "colors": {
    "editor.background": "#101010",
    "foreground": "#e0e0e0",
  },
  "tokenColors": [
    { "scope": "entity.name.function", "settings": { "foreground": "#89b4fa", "fontStyle": "bold" } },
  ],
}`

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTheme(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func decodeTheme(t *testing.T, data []byte) map[string]helix.Style {
	t.Helper()
	var styles map[string]helix.Style
	require.NoError(t, toml.Unmarshal(data, &styles))
	return styles
}

func TestConvertWritesDefaultOutputPath(t *testing.T) {
	input := writeTheme(t, "sample.json", sampleTheme)

	_, _, err := execute(t, "", "-i", input)
	require.NoError(t, err)

	out, err := os.ReadFile(strings.TrimSuffix(input, ".json") + ".toml")
	require.NoError(t, err)

	styles := decodeTheme(t, out)
	assert.Equal(t, helix.Style{FG: "#89b4fa", Modifiers: []string{"bold"}}, styles["function"])
	assert.Equal(t, helix.Style{BG: "#101010"}, styles["ui.background"])
	assert.Equal(t, helix.Style{FG: "#e0e0e0", BG: "#101010"}, styles["ui.help"])
}

func TestConvertExplicitOutput(t *testing.T) {
	input := writeTheme(t, "sample.jsonc", sampleTheme)
	output := filepath.Join(t.TempDir(), "nested", "themes", "sample.toml")

	_, _, err := execute(t, "", "--input", input, "--output", output)
	require.NoError(t, err)

	out, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Len(t, decodeTheme(t, out), 3)
}

func TestConvertStdinToStdout(t *testing.T) {
	stdout, _, err := execute(t, sampleTheme, "-i", "-")
	require.NoError(t, err)

	styles := decodeTheme(t, []byte(stdout))
	assert.Contains(t, styles, "function")
}

func TestConvertParseErrorWritesNothing(t *testing.T) {
	input := writeTheme(t, "broken.json", `{"colors": {}}`)
	output := filepath.Join(filepath.Dir(input), "broken.toml")

	_, _, err := execute(t, "", "-i", input)
	require.Error(t, err)
	assert.Equal(t, converrors.ExitDataErr, converrors.ExitCode(err))

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestConvertMissingInputFile(t *testing.T) {
	_, _, err := execute(t, "", "-i", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Equal(t, converrors.ExitIOErr, converrors.ExitCode(err))
}

func TestConvertRequiresInput(t *testing.T) {
	_, _, err := execute(t, "")
	require.Error(t, err)
	assert.Equal(t, converrors.ExitFailure, converrors.ExitCode(err))
}

func TestWatchRejectsStdin(t *testing.T) {
	_, _, err := execute(t, "", "-i", "-", "--watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdin")
}

func TestConfigGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vscode2helix.config")

	stdout, _, err := execute(t, "", "config", "generate", "--path", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"listen_addr"`)

	_, _, err = execute(t, "", "config", "generate", "--path", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestExplicitConfigMustExist(t *testing.T) {
	input := writeTheme(t, "sample.json", sampleTheme)

	_, _, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "nope.config"), "-i", input)
	require.Error(t, err)
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := execute(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, appVersion)
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "vscode2helix "+appVersion+"\n", stdout)
}

func TestServeAcceptsIPv6Listen(t *testing.T) {
	cfg := config.Default()
	cfg.ListenAddr = listenAddr("::1", 9000)
	require.NoError(t, cfg.Validate())
}

func TestListenAddr(t *testing.T) {
	assert.Equal(t, ":8080", listenAddr("all", 8080))
	assert.Equal(t, ":9000", listenAddr("", 9000))
	assert.Equal(t, "127.0.0.1:8080", listenAddr("127.0.0.1", 8080))
	assert.Equal(t, "[::1]:8080", listenAddr("::1", 8080))
}
