package colorutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelativeLuminance(t *testing.T) {
	assert.Equal(t, 0.0, RelativeLuminance("#000000"))
	assert.InDelta(t, 1.0, RelativeLuminance("#ffffff"), 1e-12)
	assert.InDelta(t, 0.21586, RelativeLuminance("#808080"), 1e-5)
}

func TestIsDark(t *testing.T) {
	assert.True(t, IsDark("#1c1a1c"))
	assert.True(t, IsDark("#808080"))
	assert.False(t, IsDark("#fdf6e3"))
	assert.False(t, IsDark("#ffffff"))
}

func TestContrastRatio(t *testing.T) {
	assert.InDelta(t, 21, ContrastRatio("#000000", "#ffffff"), 1e-12)
	assert.InDelta(t, 1, ContrastRatio("#3498db", "#3498db"), 1e-12)
	assert.Equal(t, ContrastRatio("#3498db", "#21252b"), ContrastRatio("#21252b", "#3498db"))
}

func TestCheckContrast(t *testing.T) {
	tests := []struct {
		name   string
		fg, bg string
		want   ContrastResult
	}{
		{
			name: "black on white",
			fg:   "#000000", bg: "#ffffff",
			want: ContrastResult{Ratio: 21, AA: true, AALarge: true, AAA: true, AAALarge: true, Level: LevelAAA},
		},
		{
			name: "just under AA",
			fg:   "#777777", bg: "#ffffff",
			want: ContrastResult{Ratio: 4.48, AALarge: true, Level: LevelAALarge},
		},
		{
			name: "same color",
			fg:   "#808080", bg: "#808080",
			want: ContrastResult{Ratio: 1, Level: LevelFail},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckContrast(tt.fg, tt.bg))
		})
	}
}

func TestCheckContrast_LevelsAreMonotonic(t *testing.T) {
	for _, fg := range []string{"#000000", "#333333", "#595959", "#767676", "#949494", "#ffffff"} {
		res := CheckContrast(fg, "#ffffff")
		if res.AAA {
			assert.True(t, res.AA, fg)
		}
		if res.AA {
			assert.True(t, res.AALarge, fg)
		}
		assert.Equal(t, res.AA, res.AAALarge, fg)
	}
}

func TestSuggestAccessibleColor(t *testing.T) {
	tests := []struct {
		name   string
		fg, bg string
		target float64
		want   string
	}{
		{"gray on black lightens", "#333333", "#000000", 4.5, "#757575"},
		{"blue on dark background", "#3498db", "#1c1a1c", 4.5, "#389adc"},
		{"already passing on dark", "#ffffff", "#000000", 4.5, "#ffffff"},
		{"gray on white picks darkest", "#777777", "#ffffff", 4.5, "#000000"},
		{"blue on white at AAA", "#3498db", "#ffffff", 7, "#000000"},
		{"already passing on light", "#000000", "#ffffff", 4.5, "#000000"},
		{"unreachable target on dark", "#808080", "#777777", 21, "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SuggestAccessibleColor(tt.fg, tt.bg, tt.target))
		})
	}
}

func TestSuggestAccessibleColor_MeetsTarget(t *testing.T) {
	for _, fg := range []string{"#a64b3a", "#625c70", "#91b794"} {
		got := SuggestAccessibleColor(fg, "#21252b", DefaultTargetRatio)
		assert.GreaterOrEqual(t, ContrastRatio(got, "#21252b"), DefaultTargetRatio, fg)
	}
}
