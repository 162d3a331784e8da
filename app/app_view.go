package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kastheco/codecolor/colorutil"
	"github.com/kastheco/codecolor/internal/check"
	"github.com/kastheco/codecolor/keys"
	"github.com/kastheco/codecolor/theme"
	"github.com/kastheco/codecolor/ui"
)

const (
	cellWidth   = 10
	swatchWidth = 9
	meterWidth  = 42
)

func (m *home) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	var overlayView string
	switch m.state {
	case stateEditColor:
		if m.colorInputOverlay != nil {
			overlayView = m.colorInputOverlay.Render()
		}
	case statePickRole, statePickSlot, stateSaveTheme, stateLoadTheme:
		if m.pickerOverlay != nil {
			overlayView = m.pickerOverlay.Render()
		}
	case stateConfirm:
		if m.confirmOverlay != nil {
			overlayView = m.confirmOverlay.Render()
		}
	}

	var body string
	if overlayView != "" {
		body = lipgloss.Place(width, max(m.height-2, lipgloss.Height(overlayView)),
			lipgloss.Center, lipgloss.Center, overlayView)
	} else {
		body = m.renderEditor()
	}

	out := lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusLine(), m.help.View(keys.HelpMap{}))
	return ui.FillBackground(ui.Frame(out, width), m.height)
}

func (m *home) renderEditor() string {
	t := m.themeState.Active()
	header := ui.Title("codecolor") + ui.Muted("  ·  ") +
		ui.Text(m.themeName()) + ui.Muted(fmt.Sprintf("  ·  %s  ·  ", m.mode)) +
		ui.GradientBar(t.Get(theme.Bg0), t.Get(theme.Fg0), 16)

	tabs := make([]string, 0, panelCount)
	for p := panel(0); p < panelCount; p++ {
		if p == m.focusPanel {
			tabs = append(tabs, ui.Title("["+p.String()+"]"))
		} else {
			tabs = append(tabs, ui.Muted(" "+p.String()+" "))
		}
	}

	var content string
	switch m.focusPanel {
	case panelContrast:
		content = m.renderContrastPanel(t)
	case panelHarmonies:
		content = m.renderHarmoniesPanel()
	case panelRamps:
		content = m.renderRampsPanel()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		ui.PaletteGrid(t, m.selectedSlot(), m.mode, cellWidth),
		"",
		strings.Join(tabs, " "),
		content,
	)
}

func (m *home) renderContrastPanel(t theme.Theme) string {
	slot := m.selectedSlot()
	fg := t.Get(slot)
	bg := t.Get(theme.Bg0)
	target := m.targetRatio()

	lines := []string{
		ui.Preview(fg, bg, fmt.Sprintf("%s on bg0: The quick brown fox", slot), 36),
		m.meter.Render(meterWidth) + ui.Muted(fmt.Sprintf(" %.2f", m.meter.Value())),
	}
	if slot != theme.Bg0 && colorutil.ContrastRatio(fg, bg) < target {
		suggestion := colorutil.SuggestAccessibleColor(fg, bg, target)
		lines = append(lines, ui.Muted(fmt.Sprintf("suggest %.1f:1 ", target))+
			ui.Swatch(suggestion, suggestion, swatchWidth)+ui.Muted("  a to apply"))
	}

	audit := check.Audit(m.themeState, target)
	ok, total := audit.Summary()
	summary := fmt.Sprintf("roles passing %.1f:1: %d/%d", target, ok, total)
	if failing := audit.Failing(); len(failing) > 0 {
		names := make([]string, 0, min(len(failing), 4))
		for _, e := range failing[:min(len(failing), 4)] {
			names = append(names, e.Role)
		}
		summary += "  (" + strings.Join(names, ", ")
		if len(failing) > 4 {
			summary += ", …"
		}
		summary += ")"
	}
	lines = append(lines, ui.Muted(summary))
	return strings.Join(lines, "\n")
}

func (m *home) renderHarmoniesPanel() string {
	hex := m.selectedHex()
	harmonies := colorutil.AllHarmonies(hex)
	if angle := m.appConfig.AnalogousAngle; angle > 0 {
		harmonies[1] = colorutil.Analogous(hex, angle)
	}
	rows := make([]string, len(harmonies))
	for i, h := range harmonies {
		rows[i] = ui.HarmonyRow(h, swatchWidth)
	}
	return strings.Join(rows, "\n")
}

func (m *home) renderRampsPanel() string {
	hex := m.selectedHex()
	shades := m.appConfig.ShadeCount
	if shades <= 0 {
		shades = 9
	}
	tints := m.appConfig.TintCount
	if tints <= 0 {
		tints = 5
	}
	return strings.Join([]string{
		ui.RampRow("Shades", colorutil.Shades(hex, shades), swatchWidth),
		ui.RampRow("Tints", colorutil.Tints(hex, tints), swatchWidth),
		ui.RampRow("Dark shades", colorutil.DarkShades(hex, tints), swatchWidth),
	}, "\n")
}

func (m *home) renderStatusLine() string {
	slot := m.selectedSlot()
	line := fmt.Sprintf("%s  %s", slot, colorutil.FormatColor(m.selectedHex(), m.mode))
	if m.statusMsg != "" {
		line += "  ·  " + m.statusMsg
	}
	return ui.Text(line)
}
