package ui

import "github.com/charmbracelet/lipgloss"

// Chrome colors for everything that is not a user swatch. Mirrors
// ui/overlay/theme.go.
var (
	colorBase   = lipgloss.Color("#21252b")
	colorMuted  = lipgloss.Color("#5c6370")
	colorSubtle = lipgloss.Color("#9da5b4")
	colorText   = lipgloss.Color("#dcdfe4")

	colorLove = lipgloss.Color("#bd5644")
	colorGold = lipgloss.Color("#e5c07b")
	colorPine = lipgloss.Color("#91b794")
	colorIris = lipgloss.Color("#cc666b")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorIris)
	labelStyle  = lipgloss.NewStyle().Foreground(colorSubtle)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	textStyle   = lipgloss.NewStyle().Foreground(colorText)
	cursorStyle = lipgloss.NewStyle().Foreground(colorGold).Bold(true)
)

// Title renders s as a section heading.
func Title(s string) string { return titleStyle.Render(s) }

// Muted renders s in the dimmed chrome color.
func Muted(s string) string { return mutedStyle.Render(s) }

// Text renders s in the primary chrome color.
func Text(s string) string { return textStyle.Render(s) }

// Frame wraps s in the editor's outer frame, painted with the chrome base
// color.
func Frame(s string, width int) string {
	return lipgloss.NewStyle().
		Background(colorBase).
		Padding(0, 1).
		Width(width).
		Render(s)
}
