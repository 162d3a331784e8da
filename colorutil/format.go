package colorutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Mode names a textual color representation.
type Mode string

const (
	ModeHex  Mode = "hex"
	ModeRGB  Mode = "rgb"
	ModeHSL  Mode = "hsl"
	ModeCMYK Mode = "cmyk"
)

// Modes returns every supported mode in display order.
func Modes() []Mode {
	return []Mode{ModeHex, ModeRGB, ModeHSL, ModeCMYK}
}

// ParseMode validates a mode name (case-insensitive).
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes() {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown color mode %q (want hex, rgb, hsl or cmyk)", s)
}

// Next cycles through Modes.
func (m Mode) Next() Mode {
	modes := Modes()
	for i, known := range modes {
		if known == m {
			return modes[(i+1)%len(modes)]
		}
	}
	return ModeHex
}

var cmykRe = regexp.MustCompile(`(?i)cmyk\s*\(\s*(\d+)%?\s*,\s*(\d+)%?\s*,\s*(\d+)%?\s*,\s*(\d+)%?\s*\)`)

// FormatColor renders hex in the canonical textual form for mode:
//
//	hex   #rrggbb
//	rgb   rgb(r, g, b)
//	hsl   hsl(h, s%, l%)   all three rounded to integers
//	cmyk  cmyk(c%, m%, y%, k%)
//
// An unknown mode falls back to hex.
func FormatColor(hex string, mode Mode) string {
	switch mode {
	case ModeRGB:
		rgb := HexToRGB(hex)
		return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
	case ModeHSL:
		hsl := HexToHSL(hex)
		return fmt.Sprintf("hsl(%d, %d%%, %d%%)", round(hsl.H), round(hsl.S*100), round(hsl.L*100))
	case ModeCMYK:
		cmyk := HexToCMYK(hex)
		return fmt.Sprintf("cmyk(%d%%, %d%%, %d%%, %d%%)", cmyk.C, cmyk.M, cmyk.Y, cmyk.K)
	}
	return ToHex(hex)
}

// ParseToHex converts input in any supported format to #rrggbb. CMYK
// notation is tried first since the general parser does not know it. The
// boolean is false for anything unrecognized.
func ParseToHex(input string) (string, bool) {
	if m := cmykRe.FindStringSubmatch(input); m != nil {
		var v [4]int
		for i := range v {
			n, err := strconv.Atoi(m[i+1])
			if err != nil {
				return "", false
			}
			v[i] = n
		}
		return CMYKToHex(v[0], v[1], v[2], v[3]), true
	}

	c, ok := Parse(input)
	if !ok {
		return "", false
	}
	return toHex(c), true
}

// Components returns the numeric fields of hex for mode: nothing for hex,
// r/g/b, h/s/l with s and l as rounded percentages, or c/m/y/k.
func Components(hex string, mode Mode) map[string]int {
	switch mode {
	case ModeRGB:
		rgb := HexToRGB(hex)
		return map[string]int{"r": rgb.R, "g": rgb.G, "b": rgb.B}
	case ModeHSL:
		hsl := HexToHSL(hex)
		return map[string]int{
			"h": round(hsl.H),
			"s": round(hsl.S * 100),
			"l": round(hsl.L * 100),
		}
	case ModeCMYK:
		cmyk := HexToCMYK(hex)
		return map[string]int{"c": cmyk.C, "m": cmyk.M, "y": cmyk.Y, "k": cmyk.K}
	}
	return map[string]int{}
}
