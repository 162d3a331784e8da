package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/gamut"

	"github.com/kastheco/codecolor/colorutil"
	"github.com/kastheco/codecolor/theme"
)

// PaletteColumns is the number of swatches per PaletteGrid row.
const PaletteColumns = 6

// LabelColor picks black or white, whichever reads better on hex.
func LabelColor(hex string) string {
	return gamut.ToHex(gamut.Contrast(gamut.Hex(colorutil.ToHex(hex))))
}

// Swatch renders a one-line block of hex with label centered on it.
// Labels wider than the block are truncated.
func Swatch(hex, label string, width int) string {
	if width < 1 {
		width = 1
	}
	hex = colorutil.ToHex(hex)
	label = runewidth.Truncate(label, width, "…")

	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(LabelColor(hex))).
		Width(width).
		Align(lipgloss.Center).
		Render(label)
}

// PaletteGrid lays the theme out PaletteColumns swatches per row, slot name
// above, formatted value below. The selected slot is marked with a cursor.
func PaletteGrid(t theme.Theme, selected theme.Slot, mode colorutil.Mode, cellWidth int) string {
	slots := theme.AllSlots()
	var rows []string
	for start := 0; start < len(slots); start += PaletteColumns {
		end := min(start+PaletteColumns, len(slots))
		var cells []string
		for _, slot := range slots[start:end] {
			cells = append(cells, paletteCell(t, slot, slot == selected, mode, cellWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func paletteCell(t theme.Theme, slot theme.Slot, selected bool, mode colorutil.Mode, width int) string {
	hex := t.Get(slot)
	name := string(slot)
	nameStyle := labelStyle
	if selected {
		name = "▸ " + name
		nameStyle = cursorStyle
	}
	value := runewidth.Truncate(colorutil.FormatColor(hex, mode), width, "…")

	cell := lipgloss.JoinVertical(lipgloss.Left,
		nameStyle.Width(width).Render(runewidth.Truncate(name, width, "…")),
		Swatch(hex, "", width),
		Swatch(hex, "", width),
		mutedStyle.Width(width).Render(value),
	)
	return lipgloss.NewStyle().MarginRight(1).Render(cell)
}

// ContrastBadge renders a ratio and its WCAG level, colored by level.
func ContrastBadge(res colorutil.ContrastResult) string {
	color := colorLove
	switch res.Level {
	case colorutil.LevelAAA, colorutil.LevelAA:
		color = colorPine
	case colorutil.LevelAALarge:
		color = colorGold
	}
	return lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Render(fmt.Sprintf("%.2f:1 %s", res.Ratio, res.Level))
}

// HarmonyRow renders a harmony's name followed by its swatches.
func HarmonyRow(h colorutil.Harmony, swatchWidth int) string {
	return colorRow(h.Name, h.Colors, swatchWidth)
}

// RampRow renders a labelled row of ramp swatches.
func RampRow(label string, colors []string, swatchWidth int) string {
	return colorRow(label, colors, swatchWidth)
}

const rowLabelWidth = 20

func colorRow(label string, colors []string, swatchWidth int) string {
	var b strings.Builder
	b.WriteString(labelStyle.Width(rowLabelWidth).Render(runewidth.Truncate(label, rowLabelWidth-1, "…")))
	for _, hex := range colors {
		b.WriteString(Swatch(hex, hex, swatchWidth))
	}
	return b.String()
}

// GradientBar renders width cells blending from a to b.
func GradientBar(a, b string, width int) string {
	if width <= 0 {
		return ""
	}
	start := gamut.Hex(colorutil.ToHex(a))
	end := gamut.Hex(colorutil.ToHex(b))

	var sb strings.Builder
	for _, c := range gamut.Blends(start, end, width) {
		sb.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(gamut.ToHex(c))).Render(" "))
	}
	return sb.String()
}

// Preview renders sample text in fg on bg with the pair's contrast badge.
func Preview(fg, bg, text string, width int) string {
	sample := lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorutil.ToHex(fg))).
		Background(lipgloss.Color(colorutil.ToHex(bg))).
		Width(width).
		Padding(0, 1).
		Render(runewidth.Truncate(text, max(width-2, 1), "…"))
	return lipgloss.JoinHorizontal(lipgloss.Center, sample, " ", ContrastBadge(colorutil.CheckContrast(fg, bg)))
}
