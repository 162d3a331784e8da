package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyUp KeyName = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyToggleDark
	KeyCycleMode
	KeyNextPanel
	KeyPrevPanel
	KeyApplySuggestion
	KeyYank
	KeyMapRole
	KeySaveTheme
	KeyLoadTheme
	KeyResetTheme
	KeyResetAll
	KeyHelp
	KeyQuit
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"up":        KeyUp,
	"k":         KeyUp,
	"down":      KeyDown,
	"j":         KeyDown,
	"left":      KeyLeft,
	"h":         KeyLeft,
	"right":     KeyRight,
	"l":         KeyRight,
	"enter":     KeyEnter,
	"e":         KeyEnter,
	"d":         KeyToggleDark,
	"m":         KeyCycleMode,
	"tab":       KeyNextPanel,
	"shift+tab": KeyPrevPanel,
	"a":         KeyApplySuggestion,
	"y":         KeyYank,
	"p":         KeyMapRole,
	"s":         KeySaveTheme,
	"o":         KeyLoadTheme,
	"r":         KeyResetTheme,
	"R":         KeyResetAll,
	"?":         KeyHelp,
	"q":         KeyQuit,
	"ctrl+c":    KeyQuit,
}

// GlobalkeyBindings is a global, immutable map of KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	KeyLeft: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	KeyRight: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	KeyEnter: key.NewBinding(
		key.WithKeys("enter", "e"),
		key.WithHelp("↵/e", "edit"),
	),
	KeyToggleDark: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "dark/light"),
	),
	KeyCycleMode: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "mode"),
	),
	KeyNextPanel: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "panel"),
	),
	KeyPrevPanel: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev panel"),
	),
	KeyApplySuggestion: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "fix contrast"),
	),
	KeyYank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	KeyMapRole: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "map role"),
	),
	KeySaveTheme: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save"),
	),
	KeyLoadTheme: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open"),
	),
	KeyResetTheme: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset theme"),
	),
	KeyResetAll: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "reset all"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// HelpMap adapts the global bindings to the bubbles help.KeyMap interface.
type HelpMap struct{}

func (HelpMap) ShortHelp() []key.Binding {
	return bindings(KeyEnter, KeyToggleDark, KeyCycleMode, KeyNextPanel, KeyYank, KeyHelp, KeyQuit)
}

func (HelpMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		bindings(KeyUp, KeyDown, KeyLeft, KeyRight, KeyNextPanel, KeyPrevPanel),
		bindings(KeyEnter, KeyApplySuggestion, KeyMapRole, KeyYank, KeyCycleMode),
		bindings(KeyToggleDark, KeySaveTheme, KeyLoadTheme, KeyResetTheme, KeyResetAll),
		bindings(KeyHelp, KeyQuit),
	}
}

func bindings(names ...KeyName) []key.Binding {
	out := make([]key.Binding, 0, len(names))
	for _, n := range names {
		out = append(out, GlobalkeyBindings[n])
	}
	return out
}
