package colorutil

const (
	DefaultShadeCount = 9
	DefaultTintCount  = 5
)

// Shades returns count colors at lightness i/(count+1) for i = 1..count,
// keeping the hue and saturation of hex. Despite the name the result runs
// from near-black to near-white.
func Shades(hex string, count int) []string {
	if count <= 0 {
		return []string{}
	}
	hsl := HexToHSL(hex)
	step := 1 / float64(count+1)

	out := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		out = append(out, HSLToHex(HSL{H: hsl.H, S: hsl.S, L: step * float64(i)}))
	}
	return out
}

// Tints mixes hex toward white in count even steps, excluding both ends.
func Tints(hex string, count int) []string {
	return mixRamp(hex, "#ffffff", count)
}

// DarkShades mixes hex toward black in count even steps, excluding both ends.
func DarkShades(hex string, count int) []string {
	return mixRamp(hex, "#000000", count)
}

func mixRamp(hex, toward string, count int) []string {
	if count <= 0 {
		return []string{}
	}
	out := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		amount := float64(i) / float64(count+1) * 100
		out = append(out, Mix(hex, toward, amount))
	}
	return out
}

// Mix interpolates each 8-bit channel linearly from a toward b. amount is a
// percentage: 0 yields a, 100 yields b.
func Mix(a, b string, amount float64) string {
	c1 := HexToRGB(a)
	c2 := HexToRGB(b)
	p := amount / 100

	mix := func(x, y int) int {
		return round(float64(y-x)*p + float64(x))
	}
	return RGBToHex(mix(c1.R, c2.R), mix(c1.G, c2.G), mix(c1.B, c2.B))
}
