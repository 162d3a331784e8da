package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kastheco/codecolor/colorutil"
	"github.com/kastheco/codecolor/config/themestore"
	"github.com/kastheco/codecolor/internal/logging"
	"github.com/kastheco/codecolor/theme"
	"github.com/kastheco/codecolor/ui/overlay"
)

const subsystem = "app"

func (m *home) themeName() string {
	if m.themeState.DarkMode {
		return theme.DarkThemeName
	}
	return theme.LightThemeName
}

// persist autosaves the theme state. Failures are surfaced in the status
// line; the in-memory state stays authoritative.
func (m *home) persist() {
	if err := m.themeState.Save(); err != nil {
		logging.Error(subsystem, err, "autosave theme state")
		m.statusMsg = "autosave failed: " + err.Error()
	}
}

// changed persists and retargets the meter after any palette edit.
func (m *home) changed() tea.Cmd {
	m.persist()
	m.retargetMeter()
	return m.startMeter()
}

func (m *home) openColorInput() {
	slot := m.selectedSlot()
	m.colorInputOverlay = overlay.NewColorInputOverlay(
		"Edit "+string(slot),
		colorutil.FormatColor(m.selectedHex(), m.mode),
	)
	m.colorInputOverlay.SetWidth(overlayWidth(m.width))
	m.state = stateEditColor
}

func (m *home) setSelectedColor(hex string) tea.Cmd {
	slot := m.selectedSlot()
	if err := m.themeState.SetColor(slot, hex); err != nil {
		m.statusMsg = err.Error()
		return nil
	}
	logging.Debug(subsystem, "set %s to %s", slot, hex)
	return m.changed()
}

func (m *home) toggleDarkMode() tea.Cmd {
	m.themeState.DarkMode = !m.themeState.DarkMode
	m.statusMsg = "switched to " + m.themeName()
	return m.changed()
}

// applySuggestion replaces the selected color with the nearest color that
// meets the target ratio against bg0.
func (m *home) applySuggestion() tea.Cmd {
	slot := m.selectedSlot()
	if slot == theme.Bg0 {
		m.statusMsg = "bg0 is the reference background"
		return nil
	}
	bg := m.themeState.Active().Get(theme.Bg0)
	fg := m.selectedHex()
	target := m.targetRatio()
	if colorutil.ContrastRatio(fg, bg) >= target {
		m.statusMsg = fmt.Sprintf("%s already meets %.1f:1", slot, target)
		return nil
	}
	suggestion := colorutil.SuggestAccessibleColor(fg, bg, target)
	m.statusMsg = fmt.Sprintf("%s: %s → %s", slot, fg, suggestion)
	return m.setSelectedColor(suggestion)
}

func (m *home) yankSelected() {
	value := colorutil.FormatColor(m.selectedHex(), m.mode)
	if err := m.clipboardWrite(value); err != nil {
		logging.Warn(subsystem, "clipboard write failed: %v", err)
		m.statusMsg = "clipboard unavailable"
		return
	}
	m.statusMsg = "copied " + value
}

func (m *home) openRolePicker() {
	roles := theme.Roles()
	items := make([]string, len(roles))
	for i, r := range roles {
		items[i] = r.String()
	}
	m.openPicker("Map role", items, statePickRole)
}

func (m *home) pickRole(value string) {
	role, err := theme.ParseRole(value)
	if err != nil {
		m.statusMsg = err.Error()
		return
	}
	current, err := m.themeState.SlotFor(role)
	if err != nil {
		m.statusMsg = err.Error()
		return
	}
	m.pendingRole = role
	slots := theme.AllSlots()
	items := make([]string, len(slots))
	for i, s := range slots {
		items[i] = string(s)
	}
	m.openPicker(fmt.Sprintf("%s (now %s)", role, current), items, statePickSlot)
}

func (m *home) mapPendingRole(value string) tea.Cmd {
	role := m.pendingRole
	m.pendingRole = theme.Role{}
	slot, err := theme.ParseSlot(value)
	if err != nil {
		m.statusMsg = err.Error()
		return nil
	}
	if err := m.themeState.SetRole(role, slot); err != nil {
		m.statusMsg = err.Error()
		return nil
	}
	m.statusMsg = fmt.Sprintf("%s → %s", role, slot)
	return m.changed()
}

func (m *home) openPicker(title string, items []string, next state) {
	m.pickerOverlay = overlay.NewPickerOverlay(title, items)
	m.pickerOverlay.SetSize(overlayWidth(m.width), m.height)
	m.state = next
}

func (m *home) openLibraryPicker(next state) {
	if m.store == nil {
		m.statusMsg = "no theme library configured"
		return
	}
	entries, err := m.store.List()
	if err != nil {
		logging.Error(subsystem, err, "list theme library")
		m.statusMsg = err.Error()
		return
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	if next == stateLoadTheme && len(names) == 0 {
		m.statusMsg = "theme library is empty"
		return
	}
	title := "Load theme"
	if next == stateSaveTheme {
		title = "Save theme as"
	}
	m.openPicker(title, names, next)
	if next == stateSaveTheme {
		m.pickerOverlay.SetAllowCustom(true)
	}
}

func (m *home) saveToLibrary(name string) {
	if err := themestore.ValidateName(name); err != nil {
		m.statusMsg = err.Error()
		return
	}
	if _, err := m.store.Save(name, *m.themeState); err != nil {
		logging.Error(subsystem, err, "save %q to theme library", name)
		m.statusMsg = err.Error()
		return
	}
	m.statusMsg = "saved " + name
}

func (m *home) loadFromLibrary(name string) tea.Cmd {
	entry, err := m.store.Get(name)
	if err != nil {
		if errors.Is(err, themestore.ErrNotFound) {
			m.statusMsg = "no saved theme " + name
		} else {
			logging.Error(subsystem, err, "load %q from theme library", name)
			m.statusMsg = err.Error()
		}
		return nil
	}
	loaded := entry.State
	loaded.Dir = m.themeState.Dir
	if err := loaded.Merge(); err != nil {
		m.statusMsg = err.Error()
		return nil
	}
	*m.themeState = loaded
	m.statusMsg = "loaded " + name
	return m.changed()
}

func (m *home) confirm(title, message string, action func() tea.Cmd) {
	m.confirmOverlay = overlay.NewConfirmOverlay(title, message)
	m.confirmAction = action
	m.state = stateConfirm
}

func (m *home) resetCurrentTheme() tea.Cmd {
	m.themeState.ResetCurrentTheme(m.themeState.DarkMode)
	m.statusMsg = "restored " + m.themeName()
	return m.changed()
}

// resetAll restores every default. The state file is removed rather than
// rewritten.
func (m *home) resetAll() tea.Cmd {
	if err := m.themeState.ResetAll(); err != nil {
		logging.Error(subsystem, err, "reset theme state")
		m.statusMsg = err.Error()
		return nil
	}
	m.statusMsg = "reset to defaults"
	m.retargetMeter()
	return m.startMeter()
}
