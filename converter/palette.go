package converter

import (
	"vscode2helix/helix"
	"vscode2helix/vscode"
)

type paletteMode int

const (
	modeFg paletteMode = iota
	modeBg
	modeFgBg
)

type paletteMapping struct {
	key    string
	mode   paletteMode
	fgRole string
	bgRole string
}

func fg(key, role string) paletteMapping {
	return paletteMapping{key: key, mode: modeFg, fgRole: role}
}

func bg(key, role string) paletteMapping {
	return paletteMapping{key: key, mode: modeBg, bgRole: role}
}

func fgBg(key, fgRole, bgRole string) paletteMapping {
	return paletteMapping{key: key, mode: modeFgBg, fgRole: fgRole, bgRole: bgRole}
}

// paletteMappings are the Helix UI keys filled from the VS Code "colors" object.
//
// ui.cursor and ui.selection read their fg from the VS Code *background* role
// and their bg from the *foreground* role. Existing converted themes depend on
// that pairing, so it is kept as is.
var paletteMappings = []paletteMapping{
	bg("ui.background", "editor.background"),
	fgBg("ui.cursor", "editorCursor.background", "editorCursor.foreground"),
	bg("ui.cursor.match", "editorBracketMatch.background"),
	fg("ui.linenr", "editorLineNumber.foreground"),
	fg("ui.linenr.selected", "editorLineNumber.activeForeground"),
	fgBg("ui.statusline", "statusBar.foreground", "statusBar.background"),
	fgBg("ui.popup", "editorSuggestWidget.foreground", "editorSuggestWidget.background"),
	bg("ui.window", "window.activeBorder"),
	fgBg("ui.help", "foreground", "editor.background"),
	fgBg("ui.menu", "editorHoverWidget.foreground", "editorHoverWidget.background"),
	fgBg("ui.selection", "editor.selectionBackground", "editor.selectionForeground"),
	fgBg("warning", "editorWarning.foreground", "editorWarning.background"),
	fgBg("error", "editorError.foreground", "editorError.background"),
	fgBg("info", "editorInfo.foreground", "editorInfo.background"),
	fgBg("hint", "editorHint.foreground", "editorHint.background"),
}

func (m paletteMapping) style(p vscode.Palette) helix.Style {
	var s helix.Style
	if m.mode == modeFg || m.mode == modeFgBg {
		s.FG, _ = p.Lookup(m.fgRole)
	}
	if m.mode == modeBg || m.mode == modeFgBg {
		s.BG, _ = p.Lookup(m.bgRole)
	}
	return s
}

func applyPalette(theme *helix.Theme, p vscode.Palette) {
	for _, m := range paletteMappings {
		theme.Merge(m.key, m.style(p))
	}
}
