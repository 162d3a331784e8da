package colorutil

import (
	"image/color"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

const cssUnit = `[-+]?(?:\d*\.\d+|\d+)%?`

var (
	hexRe = regexp.MustCompile(`^#?([0-9a-f]{3}|[0-9a-f]{4}|[0-9a-f]{6}|[0-9a-f]{8})$`)

	// funcRe matches rgb/hsl/hsv notation with optional alpha. Arguments may be
	// separated by commas or whitespace and the parentheses are optional. It is
	// unanchored so pasted CSS like "color: rgb(0, 0, 255);" still reads.
	funcRe = regexp.MustCompile(`(rgba?|hsla?|hsva?)[\s(]+(` + cssUnit + `)[,\s]+(` + cssUnit + `)[,\s]+(` + cssUnit + `)(?:[,\s/]+(` + cssUnit + `))?\s*\)?`)
)

// Named colors missing from the SVG 1.1 table.
var extraNames = map[string]color.RGBA{
	"rebeccapurple": {R: 0x66, G: 0x33, B: 0x99, A: 0xff},
}

// Parse reads a color in any supported textual format: hex with or without
// '#' (3, 4, 6 or 8 digits), rgb()/rgba(), hsl()/hsla(), hsv()/hsva(), CSS
// named colors and "transparent". Alpha is accepted and discarded. The second
// return value reports whether the input was recognized; Parse never fails
// in any other way.
func Parse(text string) (colorful.Color, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return colorful.Color{}, false
	}
	if s == "transparent" {
		return colorful.Color{}, true
	}
	if c, ok := colornames.Map[s]; ok {
		return fromRGBA(c), true
	}
	if c, ok := extraNames[s]; ok {
		return fromRGBA(c), true
	}
	if m := hexRe.FindStringSubmatch(s); m != nil {
		return parseHexDigits(m[1])
	}
	if m := funcRe.FindStringSubmatch(s); m != nil {
		return parseFunc(m[1], m[2], m[3], m[4], m[5])
	}
	return colorful.Color{}, false
}

func fromRGBA(c color.RGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func parseHexDigits(digits string) (colorful.Color, bool) {
	if len(digits) <= 4 {
		var b strings.Builder
		for _, r := range digits[:3] {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		digits = b.String()
	}
	var ch [3]float64
	for i := range ch {
		v, err := strconv.ParseUint(digits[2*i:2*i+2], 16, 8)
		if err != nil {
			return colorful.Color{}, false
		}
		ch[i] = float64(v) / 255
	}
	return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, true
}

type cssValue struct {
	n       float64
	percent bool
}

func parseUnit(s string) (cssValue, bool) {
	v := cssValue{}
	if strings.HasSuffix(s, "%") {
		v.percent = true
		s = strings.TrimSuffix(s, "%")
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return v, false
	}
	v.n = n
	return v, true
}

func parseFunc(name string, args ...string) (colorful.Color, bool) {
	var vals [3]cssValue
	for i := range vals {
		v, ok := parseUnit(args[i])
		if !ok {
			return colorful.Color{}, false
		}
		vals[i] = v
	}
	if args[3] != "" {
		if _, ok := parseUnit(args[3]); !ok {
			return colorful.Color{}, false
		}
	}

	switch strings.TrimSuffix(name, "a") {
	case "rgb":
		return colorful.Color{
			R: bound01(vals[0].n, 255, vals[0].percent),
			G: bound01(vals[1].n, 255, vals[1].percent),
			B: bound01(vals[2].n, 255, vals[2].percent),
		}, true
	case "hsl":
		h := bound01(vals[0].n, 360, false)
		s, l := fraction(vals[1]), fraction(vals[2])
		return hslToColor(h, s, l), true
	case "hsv":
		h := bound01(vals[0].n, 360, false)
		s, v := fraction(vals[1]), fraction(vals[2])
		return colorful.Hsv(h*360, s, v), true
	}
	return colorful.Color{}, false
}

// fraction scales a saturation/lightness/value argument into [0,1]. Bare
// numbers up to 1 are fractions, larger ones are percentages.
func fraction(v cssValue) float64 {
	if !v.percent && v.n <= 1 {
		return bound01(v.n*100, 100, true)
	}
	return bound01(v.n, 100, v.percent)
}

// bound01 clamps n into [0,max] and rescales it to [0,1]. Percentages are
// truncated to two decimals before scaling, which is where HSL saturation and
// lightness lose precision on every conversion back to a color.
func bound01(n, max float64, percent bool) float64 {
	if percent {
		n = math.Min(100, math.Max(0, n))
		n = math.Trunc(n*max) / 100
	} else {
		n = math.Min(max, math.Max(0, n))
	}
	if math.Abs(n-max) < 0.000001 {
		return 1
	}
	return math.Mod(n, max) / max
}
