package colorutil

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hueDistance is the shortest angular distance between two hues.
func hueDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	return math.Min(d, 360-d)
}

func TestRotateHue(t *testing.T) {
	assert.Equal(t, "#00ffff", RotateHue("#ff0000", 180))
	assert.Equal(t, "#ff0080", RotateHue("#ff0000", -30))
	assert.Equal(t, "#ff8000", RotateHue("#ff0000", 30))
}

func TestRotateHue_FullCircle(t *testing.T) {
	for _, hex := range []string{"#3498db", "#a64b3a", "#91b794", "#d48b1d"} {
		full := HexToHSL(RotateHue(hex, 360))
		none := HexToHSL(RotateHue(hex, 0))
		assert.InDelta(t, none.H, full.H, 1e-9, hex)
		assert.InDelta(t, none.S, full.S, 1e-9, hex)
		assert.InDelta(t, none.L, full.L, 1e-9, hex)
		assert.Equal(t, RotateHue(hex, 0), RotateHue(hex, 720), hex)
	}
}

func TestHarmonies_Red(t *testing.T) {
	tests := []struct {
		name string
		got  Harmony
		want []string
	}{
		{"complementary", Complementary("#FF0000"), []string{"#ff0000", "#00ffff"}},
		{"analogous", Analogous("#ff0000", 30), []string{"#ff0080", "#ff0000", "#ff8000"}},
		{"triadic", Triadic("#ff0000"), []string{"#ff0000", "#00ff00", "#0000ff"}},
		{"split-complementary", SplitComplementary("#ff0000"), []string{"#ff0000", "#00ff80", "#007fff"}},
		{"tetradic", Tetradic("#ff0000"), []string{"#ff0000", "#80ff00", "#00ffff", "#7f00ff"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got.Colors); diff != "" {
				t.Errorf("colors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTriadic_HuesAreSpaced(t *testing.T) {
	for _, hex := range []string{"#3498db", "#bd5644", "#625c70", "#e5c07b"} {
		h := Triadic(hex)
		require.Len(t, h.Colors, 3)
		hues := make([]float64, len(h.Colors))
		for i, c := range h.Colors {
			hues[i] = HexToHSL(c).H
		}
		assert.InDelta(t, 120, hueDistance(hues[0], hues[1]), 2, hex)
		assert.InDelta(t, 120, hueDistance(hues[1], hues[2]), 2, hex)
		assert.InDelta(t, 120, hueDistance(hues[2], hues[0]), 2, hex)
	}
}

func TestAnalogous_Description(t *testing.T) {
	assert.Equal(t, "Adjacent colors (±30°)", Analogous("#3498db", 30).Description)
	assert.Equal(t, "Adjacent colors (±22.5°)", Analogous("#3498db", 22.5).Description)
}

func TestAllHarmonies(t *testing.T) {
	all := AllHarmonies("#3498db")
	require.Len(t, all, 5)

	names := make([]string, len(all))
	for i, h := range all {
		names[i] = h.Name
		assert.NotEmpty(t, h.Description)
		assert.GreaterOrEqual(t, len(h.Colors), 2)
		assert.LessOrEqual(t, len(h.Colors), 4)
	}
	assert.Equal(t, HarmonyNames(), names)
	assert.Equal(t, []string{"#34dbca", "#3498db", "#3444db"}, all[1].Colors)
}

func TestHarmonyByName(t *testing.T) {
	h, err := HarmonyByName("#ff0000", "Split", DefaultAnalogousAngle)
	require.NoError(t, err)
	assert.Equal(t, HarmonySplitComplementary, h.Name)

	h, err = HarmonyByName("#ff0000", "analogous", 15)
	require.NoError(t, err)
	assert.Equal(t, "Adjacent colors (±15°)", h.Description)

	_, err = HarmonyByName("#ff0000", "monochrome", DefaultAnalogousAngle)
	assert.Error(t, err)
}
