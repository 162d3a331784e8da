package ui

import (
	"strings"
)

// FillBackground pads the editor view to `height` lines so the alt-screen
// renderer doesn't leave stale rows below a shrinking panel.
func FillBackground(s string, height int) string {
	if height <= 0 {
		return s
	}

	lines := strings.Split(s, "\n")

	// Extend to target height with blank lines.
	for len(lines) < height {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
