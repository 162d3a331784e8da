package colorutil

import "math"

// DefaultTargetRatio is the WCAG AA threshold for normal text.
const DefaultTargetRatio = 4.5

// Level is the highest WCAG 2.1 conformance a color pair reaches.
type Level string

const (
	LevelFail    Level = "Fail"
	LevelAALarge Level = "AA Large"
	LevelAA      Level = "AA"
	LevelAAA     Level = "AAA"
)

// ContrastResult classifies a foreground/background pair. AA and AAALarge
// share the 4.5 threshold; WCAG defines them for different text sizes.
type ContrastResult struct {
	Ratio    float64 `json:"ratio" yaml:"ratio"`
	AA       bool    `json:"aa" yaml:"aa"`
	AALarge  bool    `json:"aaLarge" yaml:"aaLarge"`
	AAA      bool    `json:"aaa" yaml:"aaa"`
	AAALarge bool    `json:"aaaLarge" yaml:"aaaLarge"`
	Level    Level   `json:"level" yaml:"level"`
}

// RelativeLuminance returns the WCAG 2.1 relative luminance of hex in [0,1].
func RelativeLuminance(hex string) float64 {
	rgb := HexToRGB(hex)
	r := linearize(float64(rgb.R) / 255)
	g := linearize(float64(rgb.G) / 255)
	b := linearize(float64(rgb.B) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func linearize(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// IsDark reports whether hex counts as a dark background (luminance < 0.5).
func IsDark(hex string) bool {
	return RelativeLuminance(hex) < 0.5
}

// ContrastRatio returns the WCAG contrast ratio of two colors in [1,21]. The
// argument order does not matter.
func ContrastRatio(fg, bg string) float64 {
	l1 := RelativeLuminance(fg)
	l2 := RelativeLuminance(bg)
	lighter := math.Max(l1, l2)
	darker := math.Min(l1, l2)
	return (lighter + 0.05) / (darker + 0.05)
}

// CheckContrast classifies fg on bg against the WCAG 2.1 thresholds. The
// reported ratio is rounded to two decimals; the flags use the exact ratio.
func CheckContrast(fg, bg string) ContrastResult {
	ratio := ContrastRatio(fg, bg)

	res := ContrastResult{
		Ratio:    math.Round(ratio*100) / 100,
		AALarge:  ratio >= 3,
		AA:       ratio >= 4.5,
		AAALarge: ratio >= 4.5,
		AAA:      ratio >= 7,
		Level:    LevelFail,
	}
	switch {
	case res.AAA:
		res.Level = LevelAAA
	case res.AA:
		res.Level = LevelAA
	case res.AALarge:
		res.Level = LevelAALarge
	}
	return res
}

// SuggestAccessibleColor searches for a variant of fg with the same hue and
// saturation whose contrast with bg reaches target. Lightness is scanned from
// 0 to 100 in whole percent steps; on a dark background only candidates at
// least as light as fg qualify, on a light one only candidates at most as
// light. Without a match the result is white on dark backgrounds and black
// otherwise.
func SuggestAccessibleColor(fg, bg string, target float64) string {
	hsl := HexToHSL(fg)
	dark := IsDark(bg)
	orig := hsl.L * 100

	for l := 0; l <= 100; l++ {
		candidate := HSLToHex(HSL{H: hsl.H, S: hsl.S, L: float64(l) / 100})
		if ContrastRatio(candidate, bg) < target {
			continue
		}
		if dark && float64(l) >= orig {
			return candidate
		}
		if !dark && float64(l) <= orig {
			return candidate
		}
	}

	if dark {
		return "#ffffff"
	}
	return "#000000"
}
