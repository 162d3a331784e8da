package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kastheco/codecolor/colorutil"
)

var (
	inputBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorIris).
				Padding(1, 2)

	inputTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorIris)

	inputErrorStyle = lipgloss.NewStyle().
			Foreground(colorLove)

	inputHintStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// ColorInputOverlay edits one color. Any notation ParseToHex accepts is
// allowed; the live preview swatch follows the text as it is typed.
type ColorInputOverlay struct {
	title     string
	input     textinput.Model
	width     int
	err       string
	hex       string
	submitted bool
	Canceled  bool
}

// NewColorInputOverlay creates an input prefilled with initial.
func NewColorInputOverlay(title, initial string) *ColorInputOverlay {
	ti := textinput.New()
	ti.Placeholder = "#rrggbb, rgb(), hsl(), cmyk() or a name"
	ti.CharLimit = 64
	ti.SetValue(initial)
	ti.CursorEnd()
	ti.Focus()

	o := &ColorInputOverlay{title: title, input: ti, width: 50}
	o.hex, _ = colorutil.ParseToHex(initial)
	return o
}

// HandleKeyPress processes input. Returns true when the overlay should close.
// Enter on unparseable text keeps the overlay open and shows an error.
func (o *ColorInputOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyEsc:
		o.Canceled = true
		return true
	case tea.KeyEnter:
		hex, ok := colorutil.ParseToHex(o.input.Value())
		if !ok {
			o.err = "not a color: " + strings.TrimSpace(o.input.Value())
			return false
		}
		o.hex = hex
		o.submitted = true
		return true
	}

	o.input, _ = o.input.Update(msg)
	o.err = ""
	if hex, ok := colorutil.ParseToHex(o.input.Value()); ok {
		o.hex = hex
	}
	return false
}

// Hex returns the parsed color. Valid after submission; while editing it is
// the last parseable value.
func (o *ColorInputOverlay) Hex() string {
	return o.hex
}

// Value returns the raw text.
func (o *ColorInputOverlay) Value() string {
	return o.input.Value()
}

// IsSubmitted returns true if the user pressed Enter on a valid color.
func (o *ColorInputOverlay) IsSubmitted() bool {
	return o.submitted
}

// Err returns the current validation message, if any.
func (o *ColorInputOverlay) Err() string {
	return o.err
}

// Render draws the input overlay.
func (o *ColorInputOverlay) Render() string {
	innerWidth := max(o.width-8, 10)
	o.input.Width = innerWidth - 4

	var swatch lipgloss.TerminalColor = colorOverlay
	if o.hex != "" {
		swatch = lipgloss.Color(o.hex)
	}
	preview := lipgloss.NewStyle().
		Background(swatch).
		Width(innerWidth).
		Render(" ")

	var b strings.Builder
	b.WriteString(inputTitleStyle.Render(o.title))
	b.WriteString("\n\n")
	b.WriteString(o.input.View())
	b.WriteString("\n")
	b.WriteString(preview)
	if o.err != "" {
		b.WriteString("\n")
		b.WriteString(inputErrorStyle.Render(o.err))
	}
	b.WriteString("\n\n")
	b.WriteString(inputHintStyle.Render("enter apply · esc cancel"))

	return inputBorderStyle.Width(o.width).Render(b.String())
}

// SetWidth sets the overlay width.
func (o *ColorInputOverlay) SetWidth(w int) {
	o.width = w
}
