package theme

import (
	"fmt"
	"strings"

	"github.com/kastheco/codecolor/colorutil"
)

// Slot names one color position of a theme.
type Slot string

const (
	Color0  Slot = "color0"
	Color1  Slot = "color1"
	Color2  Slot = "color2"
	Color3  Slot = "color3"
	Color4  Slot = "color4"
	Color5  Slot = "color5"
	Color6  Slot = "color6"
	Color7  Slot = "color7"
	Color8  Slot = "color8"
	Color9  Slot = "color9"
	Color10 Slot = "color10"
	Color11 Slot = "color11"
	Color12 Slot = "color12"
	Color13 Slot = "color13"
	Color14 Slot = "color14"
	Color15 Slot = "color15"
	Color16 Slot = "color16"
	Color17 Slot = "color17"
	Bg0     Slot = "bg0"
	Bg1     Slot = "bg1"
	Bg2     Slot = "bg2"
	Fg0     Slot = "fg0"
	Fg1     Slot = "fg1"
	Fg2     Slot = "fg2"
)

var allSlots = []Slot{
	Color0, Color1, Color2, Color3, Color4, Color5, Color6, Color7, Color8,
	Color9, Color10, Color11, Color12, Color13, Color14, Color15, Color16, Color17,
	Bg0, Bg1, Bg2, Fg0, Fg1, Fg2,
}

// AllSlots returns every slot in display order: palette, backgrounds,
// foregrounds.
func AllSlots() []Slot {
	out := make([]Slot, len(allSlots))
	copy(out, allSlots)
	return out
}

// ParseSlot validates a slot name.
func ParseSlot(s string) (Slot, error) {
	slot := Slot(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range allSlots {
		if slot == known {
			return slot, nil
		}
	}
	return "", fmt.Errorf("unknown slot %q", s)
}

// Theme is a full palette. Every field holds a hex color.
type Theme struct {
	Color0  string `json:"color0" toml:"color0" yaml:"color0"`
	Color1  string `json:"color1" toml:"color1" yaml:"color1"`
	Color2  string `json:"color2" toml:"color2" yaml:"color2"`
	Color3  string `json:"color3" toml:"color3" yaml:"color3"`
	Color4  string `json:"color4" toml:"color4" yaml:"color4"`
	Color5  string `json:"color5" toml:"color5" yaml:"color5"`
	Color6  string `json:"color6" toml:"color6" yaml:"color6"`
	Color7  string `json:"color7" toml:"color7" yaml:"color7"`
	Color8  string `json:"color8" toml:"color8" yaml:"color8"`
	Color9  string `json:"color9" toml:"color9" yaml:"color9"`
	Color10 string `json:"color10" toml:"color10" yaml:"color10"`
	Color11 string `json:"color11" toml:"color11" yaml:"color11"`
	Color12 string `json:"color12" toml:"color12" yaml:"color12"`
	Color13 string `json:"color13" toml:"color13" yaml:"color13"`
	Color14 string `json:"color14" toml:"color14" yaml:"color14"`
	Color15 string `json:"color15" toml:"color15" yaml:"color15"`
	Color16 string `json:"color16" toml:"color16" yaml:"color16"`
	Color17 string `json:"color17" toml:"color17" yaml:"color17"`
	Bg0     string `json:"bg0" toml:"bg0" yaml:"bg0"`
	Bg1     string `json:"bg1" toml:"bg1" yaml:"bg1"`
	Bg2     string `json:"bg2" toml:"bg2" yaml:"bg2"`
	Fg0     string `json:"fg0" toml:"fg0" yaml:"fg0"`
	Fg1     string `json:"fg1" toml:"fg1" yaml:"fg1"`
	Fg2     string `json:"fg2" toml:"fg2" yaml:"fg2"`
}

func (t *Theme) field(slot Slot) *string {
	switch slot {
	case Color0:
		return &t.Color0
	case Color1:
		return &t.Color1
	case Color2:
		return &t.Color2
	case Color3:
		return &t.Color3
	case Color4:
		return &t.Color4
	case Color5:
		return &t.Color5
	case Color6:
		return &t.Color6
	case Color7:
		return &t.Color7
	case Color8:
		return &t.Color8
	case Color9:
		return &t.Color9
	case Color10:
		return &t.Color10
	case Color11:
		return &t.Color11
	case Color12:
		return &t.Color12
	case Color13:
		return &t.Color13
	case Color14:
		return &t.Color14
	case Color15:
		return &t.Color15
	case Color16:
		return &t.Color16
	case Color17:
		return &t.Color17
	case Bg0:
		return &t.Bg0
	case Bg1:
		return &t.Bg1
	case Bg2:
		return &t.Bg2
	case Fg0:
		return &t.Fg0
	case Fg1:
		return &t.Fg1
	case Fg2:
		return &t.Fg2
	}
	return nil
}

// Get returns the color stored in slot, or "" for an unknown slot.
func (t Theme) Get(slot Slot) string {
	if f := t.field(slot); f != nil {
		return *f
	}
	return ""
}

// With returns a copy of t with slot set to color. Any format ParseToHex
// understands is accepted and stored as canonical hex.
func (t Theme) With(slot Slot, color string) (Theme, error) {
	hex, ok := colorutil.ParseToHex(color)
	if !ok {
		return t, fmt.Errorf("invalid color %q", color)
	}
	f := t.field(slot)
	if f == nil {
		return t, fmt.Errorf("unknown slot %q", slot)
	}
	*f = hex
	return t, nil
}

// Normalize rewrites every slot as canonical hex. Empty slots are filled
// from fallback; unparseable values are reported.
func (t Theme) Normalize(fallback Theme) (Theme, error) {
	for _, slot := range allSlots {
		f := t.field(slot)
		if *f == "" {
			*f = fallback.Get(slot)
			continue
		}
		hex, ok := colorutil.ParseToHex(*f)
		if !ok {
			return t, fmt.Errorf("slot %s: invalid color %q", slot, *f)
		}
		*f = hex
	}
	return t, nil
}

// Colors returns the theme as a slot-to-hex map.
func (t Theme) Colors() map[Slot]string {
	out := make(map[Slot]string, len(allSlots))
	for _, slot := range allSlots {
		out[slot] = t.Get(slot)
	}
	return out
}
