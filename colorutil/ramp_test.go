package colorutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestShades(t *testing.T) {
	want := []string{
		"#1a1a1a", "#333333", "#4d4d4d", "#666666", "#808080",
		"#999999", "#b3b3b3", "#cccccc", "#e6e6e6",
	}
	if diff := cmp.Diff(want, Shades("#808080", DefaultShadeCount)); diff != "" {
		t.Errorf("Shades mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"#800000", "#ff0000", "#ff8080"}, Shades("#ff0000", 3))
}

func TestShades_LightnessIncreases(t *testing.T) {
	shades := Shades("#3498db", DefaultShadeCount)
	assert.Len(t, shades, DefaultShadeCount)
	for i := 1; i < len(shades); i++ {
		assert.Greater(t, HexToHSL(shades[i]).L, HexToHSL(shades[i-1]).L, "step %d", i)
	}
}

func TestTints(t *testing.T) {
	assert.Equal(t,
		[]string{"#2a2a2a", "#555555", "#808080", "#aaaaaa", "#d5d5d5"},
		Tints("#000000", DefaultTintCount))
	assert.Equal(t,
		[]string{"#ff2a2a", "#ff5555", "#ff8080", "#ffaaaa", "#ffd5d5"},
		Tints("#ff0000", DefaultTintCount))
}

func TestDarkShades(t *testing.T) {
	assert.Equal(t,
		[]string{"#d5d5d5", "#aaaaaa", "#808080", "#555555", "#2a2a2a"},
		DarkShades("#ffffff", 5))
	assert.Equal(t, []string{"#2772a4", "#1a4c6e", "#0d2637"}, DarkShades("#3498db", 3))
}

func TestRamps_NonPositiveCount(t *testing.T) {
	assert.Empty(t, Shades("#3498db", 0))
	assert.Empty(t, Tints("#3498db", -1))
	assert.Empty(t, DarkShades("#3498db", 0))
}

func TestMix(t *testing.T) {
	assert.Equal(t, "#ff0000", Mix("#ff0000", "#0000ff", 0))
	assert.Equal(t, "#0000ff", Mix("#ff0000", "#0000ff", 100))
	assert.Equal(t, "#808080", Mix("#000000", "#ffffff", 50))
	assert.Equal(t, "#ffffff", Mix("#000000", "#ffffff", 150))
}
