package app

import (
	"context"
	"errors"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kastheco/codecolor/colorutil"
	"github.com/kastheco/codecolor/config"
	"github.com/kastheco/codecolor/config/themestore"
	"github.com/kastheco/codecolor/theme"
)

// newTestHome returns a home backed by a temp state dir and a fake clipboard.
func newTestHome(t *testing.T, store themestore.Store) (*home, *string) {
	t.Helper()
	copied := new(string)
	h := newHome(context.Background(), config.Default(t.TempDir()), theme.NewState(t.TempDir()), store)
	h.clipboardWrite = func(s string) error {
		*copied = s
		return nil
	}
	return h, copied
}

func press(t *testing.T, h *home, msgs ...tea.KeyMsg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		model, c := h.handleKeyPress(msg)
		require.Same(t, h, model)
		cmd = c
	}
	return cmd
}

func runes(s string) []tea.KeyMsg {
	out := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		out = append(out, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return out
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestHandleKeyPress_GridNavigation(t *testing.T) {
	h, _ := newTestHome(t, nil)

	press(t, h, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, h.selected, "left clamps at the first slot")

	press(t, h, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, theme.Color7, h.selectedSlot())

	press(t, h, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, theme.Bg1, h.selectedSlot(), "down stops on the last row")

	press(t, h, runes("k")...)
	assert.Equal(t, theme.Color13, h.selectedSlot())
}

func TestHandleKeyPress_PanelsAndModes(t *testing.T) {
	h, _ := newTestHome(t, nil)
	assert.Equal(t, panelContrast, h.focusPanel)

	press(t, h, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, panelHarmonies, h.focusPanel)
	press(t, h, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, panelRamps, h.focusPanel)

	press(t, h, runes("m")...)
	assert.Equal(t, colorutil.ModeRGB, h.mode)
}

func TestEditColor_SubmitPersists(t *testing.T) {
	h, _ := newTestHome(t, nil)

	press(t, h, keyEnter)
	require.Equal(t, stateEditColor, h.state)
	require.NotNil(t, h.colorInputOverlay)
	assert.True(t, h.isUserInOverlay())

	for range len(h.colorInputOverlay.Value()) {
		press(t, h, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	press(t, h, runes("hsl(180, 100%, 50%)")...)
	press(t, h, keyEnter)

	assert.Equal(t, stateDefault, h.state)
	assert.Nil(t, h.colorInputOverlay)
	assert.Equal(t, "#00ffff", h.themeState.Active().Get(theme.Color0))

	loaded, err := theme.Load(h.themeState.Dir)
	require.NoError(t, err)
	assert.Equal(t, "#00ffff", loaded.Active().Get(theme.Color0))
}

func TestEditColor_EscapeKeepsColor(t *testing.T) {
	h, _ := newTestHome(t, nil)
	before := h.selectedHex()

	press(t, h, keyEnter)
	press(t, h, runes("zz")...)
	press(t, h, keyEsc)

	assert.Equal(t, stateDefault, h.state)
	assert.Equal(t, before, h.selectedHex())
	_, err := os.Stat(h.themeState.Path())
	assert.True(t, os.IsNotExist(err), "cancel must not autosave")
}

func TestToggleDarkMode(t *testing.T) {
	h, _ := newTestHome(t, nil)
	require.False(t, h.themeState.DarkMode)

	press(t, h, runes("d")...)
	assert.True(t, h.themeState.DarkMode)
	assert.Equal(t, theme.DefaultDark().Color0, h.selectedHex())
	assert.Contains(t, h.statusMsg, theme.DarkThemeName)
}

func TestApplySuggestion(t *testing.T) {
	h, _ := newTestHome(t, nil)
	require.NoError(t, h.themeState.SetColor(theme.Bg0, "#000000"))
	require.NoError(t, h.themeState.SetColor(theme.Color0, "#333333"))

	press(t, h, runes("a")...)
	assert.Equal(t, "#757575", h.selectedHex())

	press(t, h, runes("a")...)
	assert.Contains(t, h.statusMsg, "already meets")
}

func TestApplySuggestion_SkipsBg0(t *testing.T) {
	h, _ := newTestHome(t, nil)
	h.selected = 18
	require.Equal(t, theme.Bg0, h.selectedSlot())
	before := h.selectedHex()

	press(t, h, runes("a")...)
	assert.Equal(t, before, h.selectedHex())
}

func TestYank_UsesDisplayMode(t *testing.T) {
	h, copied := newTestHome(t, nil)
	require.NoError(t, h.themeState.SetColor(theme.Color0, "#3498db"))

	press(t, h, runes("m")...)
	press(t, h, runes("y")...)
	assert.Equal(t, "rgb(52, 152, 219)", *copied)
	assert.Contains(t, h.statusMsg, "copied")
}

func TestYank_ClipboardFailure(t *testing.T) {
	h, _ := newTestHome(t, nil)
	h.clipboardWrite = func(string) error { return errors.New("no display") }

	press(t, h, runes("y")...)
	assert.Equal(t, "clipboard unavailable", h.statusMsg)
}

func TestMapRole_TwoStepPicker(t *testing.T) {
	h, _ := newTestHome(t, nil)

	press(t, h, runes("p")...)
	require.Equal(t, statePickRole, h.state)
	press(t, h, runes("syntax.keyword")...)
	press(t, h, keyEnter)

	require.Equal(t, statePickSlot, h.state)
	assert.Equal(t, theme.Role{Group: theme.GroupSyntax, Name: "keyword"}, h.pendingRole)
	press(t, h, runes("color14")...)
	press(t, h, keyEnter)

	assert.Equal(t, stateDefault, h.state)
	assert.Equal(t, theme.Color14, h.themeState.SyntaxMapping[theme.TokenKeyword])
	assert.Equal(t, theme.Role{}, h.pendingRole)
}

func TestMapRole_CancelClearsPending(t *testing.T) {
	h, _ := newTestHome(t, nil)
	press(t, h, runes("p")...)
	press(t, h, runes("syntax.keyword")...)
	press(t, h, keyEnter)
	press(t, h, keyEsc)

	assert.Equal(t, stateDefault, h.state)
	assert.Equal(t, theme.Role{}, h.pendingRole)
	assert.Equal(t, theme.Color5, h.themeState.SyntaxMapping[theme.TokenKeyword])
}

func TestResetTheme_RequiresConfirmation(t *testing.T) {
	h, _ := newTestHome(t, nil)
	require.NoError(t, h.themeState.SetColor(theme.Color0, "#123456"))

	press(t, h, runes("r")...)
	require.Equal(t, stateConfirm, h.state)
	press(t, h, keyEnter) // defaults to "no"
	assert.Equal(t, "#123456", h.selectedHex())

	press(t, h, runes("r")...)
	press(t, h, runes("y")...)
	assert.Equal(t, stateDefault, h.state)
	assert.Equal(t, theme.DefaultLight().Color0, h.selectedHex())
}

func TestResetAll_RemovesStateFile(t *testing.T) {
	h, _ := newTestHome(t, nil)
	press(t, h, runes("d")...)
	_, err := os.Stat(h.themeState.Path())
	require.NoError(t, err)

	press(t, h, runes("R")...)
	press(t, h, runes("y")...)

	assert.False(t, h.themeState.DarkMode)
	_, err = os.Stat(h.themeState.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestLibrary_WithoutStore(t *testing.T) {
	h, _ := newTestHome(t, nil)
	press(t, h, runes("s")...)
	assert.Equal(t, stateDefault, h.state)
	assert.Equal(t, "no theme library configured", h.statusMsg)
}

func TestLibrary_SaveAndLoad(t *testing.T) {
	store := themestore.NewTestStore(t)
	h, _ := newTestHome(t, store)
	require.NoError(t, h.themeState.SetColor(theme.Color0, "#abcdef"))

	press(t, h, runes("s")...)
	require.Equal(t, stateSaveTheme, h.state)
	press(t, h, runes("mine")...)
	press(t, h, keyEnter)
	assert.Equal(t, "saved mine", h.statusMsg)

	require.NoError(t, h.themeState.SetColor(theme.Color0, "#000000"))
	press(t, h, runes("o")...)
	require.Equal(t, stateLoadTheme, h.state)
	press(t, h, keyEnter)

	assert.Equal(t, "loaded mine", h.statusMsg)
	assert.Equal(t, "#abcdef", h.selectedHex())
	assert.NotEmpty(t, h.themeState.Dir, "loading keeps the state directory")
}

func TestLibrary_LoadEmpty(t *testing.T) {
	h, _ := newTestHome(t, themestore.NewTestStore(t))
	press(t, h, runes("o")...)
	assert.Equal(t, stateDefault, h.state)
	assert.Equal(t, "theme library is empty", h.statusMsg)
}

func TestMeterTicksUntilSettled(t *testing.T) {
	h, _ := newTestHome(t, nil)
	cmd := h.Init()
	require.NotNil(t, cmd, "meter starts away from its target")
	require.True(t, h.meterRunning)

	for range 200 {
		_, cmd = h.Update(meterTickMsg{})
		if cmd == nil {
			break
		}
	}
	assert.Nil(t, cmd)
	assert.False(t, h.meterRunning)
	assert.True(t, h.meter.Settled())
}

func TestView(t *testing.T) {
	h, _ := newTestHome(t, nil)
	h.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	out := h.View()
	assert.Contains(t, out, theme.LightThemeName)
	assert.Contains(t, out, "color0")
	assert.Contains(t, out, "Contrast")

	press(t, h, tea.KeyMsg{Type: tea.KeyTab})
	assert.Contains(t, h.View(), colorutil.HarmonyTriadic)

	press(t, h, runes("r")...)
	assert.Contains(t, h.View(), "Reset theme")
}

func TestIsUserInOverlay(t *testing.T) {
	for _, s := range []state{stateEditColor, statePickRole, statePickSlot, stateSaveTheme, stateLoadTheme, stateConfirm} {
		h := &home{state: s}
		assert.True(t, h.isUserInOverlay(), "state %d", s)
	}
	assert.False(t, (&home{state: stateDefault}).isUserInOverlay())
}
