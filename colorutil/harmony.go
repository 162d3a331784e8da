package colorutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultAnalogousAngle is the hue offset used by AllHarmonies.
const DefaultAnalogousAngle = 30

// Harmony is a named set of colors derived from one base color by fixed hue
// offsets.
type Harmony struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Colors      []string `json:"colors" yaml:"colors"`
}

const (
	HarmonyComplementary      = "Complementary"
	HarmonyAnalogous          = "Analogous"
	HarmonyTriadic            = "Triadic"
	HarmonySplitComplementary = "Split-Complementary"
	HarmonyTetradic           = "Tetradic"
)

// RotateHue shifts the hue of hex by degrees, wrapping into [0,360), and
// keeps saturation and lightness.
func RotateHue(hex string, degrees float64) string {
	hsl := HexToHSL(hex)
	hue := math.Mod(hsl.H+degrees, 360)
	if hue < 0 {
		hue += 360
	}
	hsl.H = hue
	return HSLToHex(hsl)
}

// Complementary pairs hex with the color opposite it on the wheel.
func Complementary(hex string) Harmony {
	return Harmony{
		Name:        HarmonyComplementary,
		Description: "Opposite on the color wheel (180°)",
		Colors:      []string{ToHex(hex), RotateHue(hex, 180)},
	}
}

// Analogous returns the colors angle degrees either side of hex, with hex in
// the middle.
func Analogous(hex string, angle float64) Harmony {
	return Harmony{
		Name:        HarmonyAnalogous,
		Description: fmt.Sprintf("Adjacent colors (±%s°)", strconv.FormatFloat(angle, 'f', -1, 64)),
		Colors: []string{
			RotateHue(hex, -angle),
			ToHex(hex),
			RotateHue(hex, angle),
		},
	}
}

// Triadic returns three colors 120° apart.
func Triadic(hex string) Harmony {
	return Harmony{
		Name:        HarmonyTriadic,
		Description: "Three evenly spaced colors (120° apart)",
		Colors:      []string{ToHex(hex), RotateHue(hex, 120), RotateHue(hex, 240)},
	}
}

// SplitComplementary returns hex and the two neighbours of its complement.
func SplitComplementary(hex string) Harmony {
	return Harmony{
		Name:        HarmonySplitComplementary,
		Description: "Base + colors adjacent to its complement",
		Colors:      []string{ToHex(hex), RotateHue(hex, 150), RotateHue(hex, 210)},
	}
}

// Tetradic returns four colors 90° apart.
func Tetradic(hex string) Harmony {
	return Harmony{
		Name:        HarmonyTetradic,
		Description: "Four evenly spaced colors (90° apart)",
		Colors:      []string{ToHex(hex), RotateHue(hex, 90), RotateHue(hex, 180), RotateHue(hex, 270)},
	}
}

// AllHarmonies returns every harmony of hex in a fixed order.
func AllHarmonies(hex string) []Harmony {
	return []Harmony{
		Complementary(hex),
		Analogous(hex, DefaultAnalogousAngle),
		Triadic(hex),
		SplitComplementary(hex),
		Tetradic(hex),
	}
}

// HarmonyNames lists the harmony names in AllHarmonies order.
func HarmonyNames() []string {
	return []string{
		HarmonyComplementary,
		HarmonyAnalogous,
		HarmonyTriadic,
		HarmonySplitComplementary,
		HarmonyTetradic,
	}
}

// HarmonyByName builds a single harmony. Names are matched
// case-insensitively; "split" and "square" are accepted aliases.
func HarmonyByName(hex, name string, angle float64) (Harmony, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "complementary":
		return Complementary(hex), nil
	case "analogous":
		return Analogous(hex, angle), nil
	case "triadic":
		return Triadic(hex), nil
	case "split-complementary", "split":
		return SplitComplementary(hex), nil
	case "tetradic", "square":
		return Tetradic(hex), nil
	}
	return Harmony{}, fmt.Errorf("unknown harmony %q", name)
}
