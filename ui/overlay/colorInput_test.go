package overlay

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func clearInput(o *ColorInputOverlay) {
	for range len(o.Value()) {
		o.HandleKeyPress(tea.KeyMsg{Type: tea.KeyBackspace})
	}
}

func TestColorInputOverlay_SubmitParsesAnyNotation(t *testing.T) {
	o := NewColorInputOverlay("Edit color4", "#3498db")
	clearInput(o)
	typeString(o, "rgb(255, 128, 0)")

	closed := o.HandleKeyPress(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, closed)
	assert.True(t, o.IsSubmitted())
	assert.Equal(t, "#ff8000", o.Hex())
}

func TestColorInputOverlay_InvalidStaysOpen(t *testing.T) {
	o := NewColorInputOverlay("Edit", "")
	typeString(o, "nope")

	closed := o.HandleKeyPress(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, closed)
	assert.False(t, o.IsSubmitted())
	assert.Contains(t, o.Err(), "nope")

	// typing clears the error
	typeString(o, "x")
	assert.Empty(t, o.Err())
}

func TestColorInputOverlay_PreviewTracksLastValid(t *testing.T) {
	o := NewColorInputOverlay("Edit", "#ff0000")
	assert.Equal(t, "#ff0000", o.Hex())

	typeString(o, "z")
	assert.Equal(t, "#ff0000", o.Hex(), "unparseable text keeps the previous color")
}

func TestColorInputOverlay_Escape(t *testing.T) {
	o := NewColorInputOverlay("Edit", "#ff0000")
	closed := o.HandleKeyPress(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, closed)
	assert.True(t, o.Canceled)
	assert.False(t, o.IsSubmitted())
}

func TestColorInputOverlay_Render(t *testing.T) {
	o := NewColorInputOverlay("Edit bg0", "#21252b")
	o.SetWidth(40)
	out := o.Render()
	assert.Contains(t, out, "Edit bg0")
	assert.Contains(t, out, "enter apply")
}
