package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kastheco/codecolor/keys"
	"github.com/kastheco/codecolor/theme"
	"github.com/kastheco/codecolor/ui"
)

func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateEditColor:
		return m.handleEditColorState(msg)
	case statePickRole, statePickSlot, stateSaveTheme, stateLoadTheme:
		return m.handlePickerState(msg)
	case stateConfirm:
		return m.handleConfirmState(msg)
	}
	return m.handleDefaultState(msg)
}

func (m *home) handleDefaultState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, nil
	}
	m.statusMsg = ""

	slots := len(theme.AllSlots())
	switch name {
	case keys.KeyQuit:
		return m, tea.Quit
	case keys.KeyLeft:
		m.selected = max(0, m.selected-1)
	case keys.KeyRight:
		m.selected = min(slots-1, m.selected+1)
	case keys.KeyUp:
		if m.selected-ui.PaletteColumns >= 0 {
			m.selected -= ui.PaletteColumns
		}
	case keys.KeyDown:
		if m.selected+ui.PaletteColumns < slots {
			m.selected += ui.PaletteColumns
		}
	case keys.KeyNextPanel:
		m.focusPanel = (m.focusPanel + 1) % panelCount
		return m, nil
	case keys.KeyPrevPanel:
		m.focusPanel = (m.focusPanel + panelCount - 1) % panelCount
		return m, nil
	case keys.KeyCycleMode:
		m.mode = m.mode.Next()
		return m, nil
	case keys.KeyHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case keys.KeyEnter:
		m.openColorInput()
		return m, nil
	case keys.KeyToggleDark:
		return m, m.toggleDarkMode()
	case keys.KeyApplySuggestion:
		return m, m.applySuggestion()
	case keys.KeyYank:
		m.yankSelected()
		return m, nil
	case keys.KeyMapRole:
		m.openRolePicker()
		return m, nil
	case keys.KeySaveTheme:
		m.openLibraryPicker(stateSaveTheme)
		return m, nil
	case keys.KeyLoadTheme:
		m.openLibraryPicker(stateLoadTheme)
		return m, nil
	case keys.KeyResetTheme:
		m.confirm("Reset theme", "Restore the default "+m.themeName()+" palette?", m.resetCurrentTheme)
		return m, nil
	case keys.KeyResetAll:
		m.confirm("Reset everything", "Discard both palettes and all role mappings?", m.resetAll)
		return m, nil
	}

	m.retargetMeter()
	return m, m.startMeter()
}

func (m *home) handleEditColorState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.colorInputOverlay == nil {
		m.state = stateDefault
		return m, nil
	}
	if !m.colorInputOverlay.HandleKeyPress(msg) {
		return m, nil
	}
	o := m.colorInputOverlay
	m.colorInputOverlay = nil
	m.state = stateDefault
	if !o.IsSubmitted() {
		return m, nil
	}
	return m, m.setSelectedColor(o.Hex())
}

func (m *home) handlePickerState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.pickerOverlay == nil {
		m.state = stateDefault
		return m, nil
	}
	if !m.pickerOverlay.HandleKeyPress(msg) {
		return m, nil
	}
	p := m.pickerOverlay
	m.pickerOverlay = nil
	current := m.state
	m.state = stateDefault

	value := p.Value()
	if !p.IsSubmitted() || value == "" {
		m.pendingRole = theme.Role{}
		return m, nil
	}

	switch current {
	case statePickRole:
		m.pickRole(value)
	case statePickSlot:
		return m, m.mapPendingRole(value)
	case stateSaveTheme:
		m.saveToLibrary(value)
	case stateLoadTheme:
		return m, m.loadFromLibrary(value)
	}
	return m, nil
}

func (m *home) handleConfirmState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmOverlay == nil {
		m.state = stateDefault
		return m, nil
	}
	if !m.confirmOverlay.HandleKeyPress(msg) {
		return m, nil
	}
	confirmed := m.confirmOverlay.IsConfirmed()
	action := m.confirmAction
	m.confirmOverlay = nil
	m.confirmAction = nil
	m.state = stateDefault
	if !confirmed || action == nil {
		return m, nil
	}
	return m, action()
}
