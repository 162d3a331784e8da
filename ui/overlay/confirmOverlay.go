package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var confirmChoiceLabels = []string{"yes", "no"}

// ConfirmOverlay asks a yes/no question before a destructive action.
type ConfirmOverlay struct {
	title       string
	message     string
	selectedIdx int
	confirmed   bool
	width       int
}

// NewConfirmOverlay creates a confirmation modal. The cursor starts on "no".
func NewConfirmOverlay(title, message string) *ConfirmOverlay {
	return &ConfirmOverlay{
		title:       title,
		message:     message,
		selectedIdx: 1,
		width:       50,
	}
}

// HandleKeyPress processes input. Returns true when the overlay should close.
func (c *ConfirmOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "left", "h":
		if c.selectedIdx > 0 {
			c.selectedIdx--
		}
	case "right", "l":
		if c.selectedIdx < len(confirmChoiceLabels)-1 {
			c.selectedIdx++
		}
	case "y":
		c.selectedIdx = 0
		c.confirmed = true
		return true
	case "n", "esc":
		return true
	case "enter":
		c.confirmed = c.selectedIdx == 0
		return true
	}
	return false
}

// IsConfirmed returns true if the user chose "yes".
func (c *ConfirmOverlay) IsConfirmed() bool {
	return c.confirmed
}

// Render draws the confirmation overlay.
func (c *ConfirmOverlay) Render() string {
	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorGold).
		Padding(1, 2).
		Width(c.width)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorGold)

	messageStyle := lipgloss.NewStyle().
		Foreground(colorText)

	hintStyle := lipgloss.NewStyle().
		Foreground(colorMuted)

	selectedStyle := lipgloss.NewStyle().
		Background(colorFoam).
		Foreground(colorBase).
		Padding(0, 1)

	normalStyle := lipgloss.NewStyle().
		Foreground(colorText).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString(titleStyle.Render("△ " + c.title))
	b.WriteString("\n")
	b.WriteString(messageStyle.Render(c.message))
	b.WriteString("\n\n")

	var choices []string
	for i, label := range confirmChoiceLabels {
		if i == c.selectedIdx {
			choices = append(choices, selectedStyle.Render("▸ "+label))
		} else {
			choices = append(choices, normalStyle.Render("  "+label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, choices...))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("←→ select · y/n · enter confirm · esc cancel"))

	return borderStyle.Render(b.String())
}

// SetWidth sets the overlay width.
func (c *ConfirmOverlay) SetWidth(w int) {
	c.width = w
}
