package overlay

import "github.com/charmbracelet/lipgloss"

// Editor chrome, taken from the built-in Firefly palette so overlays match
// the default dark theme.
var (
	// Base tones
	colorBase    = lipgloss.Color("#21252b") // bg0
	colorOverlay = lipgloss.Color("#2c313a") // bg1
	colorMuted   = lipgloss.Color("#5c6370") // color8
	colorText    = lipgloss.Color("#dcdfe4") // fg0

	// Semantic colors
	colorLove = lipgloss.Color("#bd5644") // error, danger
	colorGold = lipgloss.Color("#e5c07b") // warning
	colorFoam = lipgloss.Color("#79999d") // selection
	colorIris = lipgloss.Color("#cc666b") // highlight, primary
)
