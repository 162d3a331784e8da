package colorutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGBToCMYK(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		want    CMYK
	}{
		{"red", 255, 0, 0, CMYK{C: 0, M: 100, Y: 100, K: 0}},
		{"white", 255, 255, 255, CMYK{C: 0, M: 0, Y: 0, K: 0}},
		{"mid gray", 128, 128, 128, CMYK{C: 0, M: 0, Y: 0, K: 50}},
		{"blue-ish", 52, 152, 219, CMYK{C: 76, M: 31, Y: 0, K: 14}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RGBToCMYK(tt.r, tt.g, tt.b))
		})
	}
}

func TestRGBToCMYK_PureBlack(t *testing.T) {
	assert.Equal(t, CMYK{C: 0, M: 0, Y: 0, K: 100}, RGBToCMYK(0, 0, 0))
}

func TestRGBToCMYK_Grayscale(t *testing.T) {
	for v := 0; v <= 255; v++ {
		got := RGBToCMYK(v, v, v)
		assert.Equal(t, 0, got.C, "channel %d", v)
		assert.Equal(t, 0, got.M, "channel %d", v)
		assert.Equal(t, 0, got.Y, "channel %d", v)
		assert.Equal(t, int(math.Round((1-float64(v)/255)*100)), got.K, "channel %d", v)
	}
}

func TestCMYKToRGB(t *testing.T) {
	assert.Equal(t, RGB{R: 255, G: 0, B: 0}, CMYKToRGB(0, 100, 100, 0))
	assert.Equal(t, RGB{R: 0, G: 0, B: 0}, CMYKToRGB(0, 0, 0, 100))
	assert.Equal(t, RGB{R: 53, G: 151, B: 219}, CMYKToRGB(76, 31, 0, 14))
}

func TestCMYKRoundTripIsApproximate(t *testing.T) {
	colors := []RGB{
		{R: 255, G: 0, B: 0},
		{R: 52, G: 152, B: 219},
		{R: 28, G: 26, B: 28},
		{R: 181, G: 137, B: 0},
		{R: 220, G: 50, B: 47},
		{R: 200, G: 200, B: 200},
	}
	for _, c := range colors {
		cmyk := RGBToCMYK(c.R, c.G, c.B)
		back := CMYKToRGB(cmyk.C, cmyk.M, cmyk.Y, cmyk.K)
		assert.InDelta(t, c.R, back.R, 1, "%v via %v", c, cmyk)
		assert.InDelta(t, c.G, back.G, 1, "%v via %v", c, cmyk)
		assert.InDelta(t, c.B, back.B, 1, "%v via %v", c, cmyk)
	}
}

func TestHexConversions(t *testing.T) {
	assert.Equal(t, RGB{R: 52, G: 152, B: 219}, HexToRGB("#3498DB"))
	assert.Equal(t, "#3498db", RGBToHex(52, 152, 219))
	assert.Equal(t, "#ff0000", RGBToHex(300, -1, 0))
	assert.Equal(t, CMYK{C: 76, M: 31, Y: 0, K: 14}, HexToCMYK("#3498db"))
	assert.Equal(t, "#ff0000", CMYKToHex(0, 100, 100, 0))
	assert.Equal(t, "#000000", ToHex("not-a-color"))
}

func TestHexToHSL(t *testing.T) {
	hsl := HexToHSL("#3498db")
	assert.InDelta(t, 204.07, hsl.H, 0.01)
	assert.InDelta(t, 0.6987, hsl.S, 0.0001)
	assert.InDelta(t, 0.5314, hsl.L, 0.0001)

	gray := HexToHSL("#808080")
	assert.Equal(t, 0.0, gray.H)
	assert.Equal(t, 0.0, gray.S)
}

func TestHSLToHex(t *testing.T) {
	assert.Equal(t, "#ff0000", HSLToHex(HSL{H: 0, S: 1, L: 0.5}))
	assert.Equal(t, "#00ffff", HSLToHex(HSL{H: 180, S: 1, L: 0.5}))
	assert.Equal(t, "#ffffff", HSLToHex(HSL{H: 42, S: 0.3, L: 1}))
	assert.Equal(t, "#3498db", HSLToHex(HexToHSL("#3498db")))
}

func TestHexToHSL_HalfDegreeHue(t *testing.T) {
	hsl := HexToHSL("#f0b200")
	assert.Equal(t, 44.5, hsl.H)
	assert.Equal(t, 1.0, hsl.S)
	assert.Equal(t, "hsl(45, 100%, 47%)", FormatColor("#f0b200", ModeHSL))
	assert.Equal(t, map[string]int{"h": 45, "s": 100, "l": 47}, Components("#f0b200", ModeHSL))
}

func TestHSLRoundingBoundaries(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"rotate", RotateHue("#997c00", -30), "#993000"},
		{"shade", Shades("#664d00", 9)[4], "#ffc000"},
		{"suggest", SuggestAccessibleColor("#664d00", "#404040", 7), "#ffcf3d"},
		{"format", FormatColor("#f0b200", ModeHSL), "hsl(45, 100%, 47%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
