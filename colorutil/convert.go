package colorutil

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB holds 8-bit channels in [0,255].
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HSL holds a hue in degrees [0,360) and saturation/lightness as fractions
// in [0,1]. Percent forms only appear in FormatColor and Components.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// CMYK holds integer percentages in [0,100]. Pure black is always
// {0, 0, 0, 100}.
type CMYK struct {
	C int `json:"c"`
	M int `json:"m"`
	Y int `json:"y"`
	K int `json:"k"`
}

// RGBToCMYK converts 8-bit RGB to CMYK percentages. Every channel is rounded
// to a whole percent, so CMYK -> RGB -> CMYK is only approximately stable.
func RGBToCMYK(r, g, b int) CMYK {
	rn := float64(r) / 255
	gn := float64(g) / 255
	bn := float64(b) / 255

	k := 1 - math.Max(rn, math.Max(gn, bn))
	if k == 1 {
		return CMYK{C: 0, M: 0, Y: 0, K: 100}
	}

	c := (1 - rn - k) / (1 - k) * 100
	m := (1 - gn - k) / (1 - k) * 100
	y := (1 - bn - k) / (1 - k) * 100

	return CMYK{
		C: round(c),
		M: round(m),
		Y: round(y),
		K: round(k * 100),
	}
}

// CMYKToRGB converts CMYK percentages to 8-bit RGB. Out-of-range input is
// not clamped.
func CMYKToRGB(c, m, y, k int) RGB {
	cn := float64(c) / 100
	mn := float64(m) / 100
	yn := float64(y) / 100
	kn := float64(k) / 100

	return RGB{
		R: round(255 * (1 - cn) * (1 - kn)),
		G: round(255 * (1 - mn) * (1 - kn)),
		B: round(255 * (1 - yn) * (1 - kn)),
	}
}

// HexToCMYK converts any parseable color string to CMYK.
func HexToCMYK(hex string) CMYK {
	rgb := HexToRGB(hex)
	return RGBToCMYK(rgb.R, rgb.G, rgb.B)
}

// CMYKToHex converts CMYK percentages to a canonical hex string.
func CMYKToHex(c, m, y, k int) string {
	rgb := CMYKToRGB(c, m, y, k)
	return RGBToHex(rgb.R, rgb.G, rgb.B)
}

// HexToRGB converts any parseable color string to 8-bit RGB. Unparseable
// input reads as black.
func HexToRGB(hex string) RGB {
	c, _ := Parse(hex)
	return toRGB(c)
}

// RGBToHex formats 8-bit channels as #rrggbb, clamping each into [0,255].
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", clamp255(r), clamp255(g), clamp255(b))
}

// HexToHSL converts any parseable color string to HSL without rounding. The
// color is quantized to 8-bit channels first.
func HexToHSL(hex string) HSL {
	return rgbToHSL(HexToRGB(hex))
}

// rgbToHSL divides the hue sector by 6 before scaling to degrees. Hues that
// sit exactly on x.5 only round up in this order.
func rgbToHSL(c RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	hi := max(r, g, b)
	lo := min(r, g, b)
	l := (hi + lo) / 2
	if hi == lo {
		return HSL{H: 0, S: 0, L: l}
	}

	d := hi - lo
	var s float64
	if l > 0.5 {
		s = d / (2 - hi - lo)
	} else {
		s = d / (hi + lo)
	}

	var h float64
	switch hi {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h /= 6
	return HSL{H: h * 360, S: s, L: l}
}

// HSLToHex converts HSL to a canonical hex string. Saturation and lightness
// are truncated to 1/100 of a percent first.
func HSLToHex(hsl HSL) string {
	h := bound01(hsl.H, 360, false)
	s := bound01(hsl.S*100, 100, true)
	l := bound01(hsl.L*100, 100, true)
	return toHex(hslToColor(h, s, l))
}

// ToHex normalizes any parseable color string to #rrggbb. Unparseable input
// reads as black; use ParseToHex when validity matters.
func ToHex(text string) string {
	c, _ := Parse(text)
	return toHex(c)
}

// hslToColor expects h, s and l already scaled to [0,1].
func hslToColor(h, s, l float64) colorful.Color {
	if s == 0 {
		return colorful.Color{R: l, G: l, B: l}
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return colorful.Color{
		R: hueToChannel(p, q, h+1.0/3),
		G: hueToChannel(p, q, h),
		B: hueToChannel(p, q, h-1.0/3),
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

func toRGB(c colorful.Color) RGB {
	c = c.Clamped()
	return RGB{
		R: round(c.R * 255),
		G: round(c.G * 255),
		B: round(c.B * 255),
	}
}

func toHex(c colorful.Color) string {
	rgb := toRGB(c)
	return RGBToHex(rgb.R, rgb.G, rgb.B)
}

func round(x float64) int {
	return int(math.Round(x))
}

func clamp255(v int) int {
	return min(255, max(0, v))
}
