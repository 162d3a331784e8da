package colorapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/kastheco/codecolor/colorutil"
)

// Defaults applied when a request omits the optional parameters.
type Defaults struct {
	TargetRatio    float64
	ShadeCount     int
	TintCount      int
	AnalogousAngle float64
}

// DefaultDefaults mirrors the package-level defaults of colorutil.
func DefaultDefaults() Defaults {
	return Defaults{
		TargetRatio:    colorutil.DefaultTargetRatio,
		ShadeCount:     colorutil.DefaultShadeCount,
		TintCount:      colorutil.DefaultTintCount,
		AnalogousAngle: colorutil.DefaultAnalogousAngle,
	}
}

// ParseResult is the response of /v1/colors/parse.
type ParseResult struct {
	Input  string         `json:"input"`
	Hex    string         `json:"hex"`
	RGB    colorutil.RGB  `json:"rgb"`
	HSL    colorutil.HSL  `json:"hsl"`
	CMYK   colorutil.CMYK `json:"cmyk"`
	IsDark bool           `json:"isDark"`
}

// FormatResult is the response of /v1/colors/format.
type FormatResult struct {
	Hex   string         `json:"hex"`
	Mode  colorutil.Mode `json:"mode"`
	Value string         `json:"value"`
}

// ComponentsResult is the response of /v1/colors/components.
type ComponentsResult struct {
	Hex        string         `json:"hex"`
	Mode       colorutil.Mode `json:"mode"`
	Components map[string]int `json:"components"`
}

// ContrastResult is the response of /v1/contrast.
type ContrastResult struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
	colorutil.ContrastResult
}

// SuggestResult is the response of /v1/contrast/suggest.
type SuggestResult struct {
	Foreground string                   `json:"foreground"`
	Background string                   `json:"background"`
	Target     float64                  `json:"target"`
	Suggestion string                   `json:"suggestion"`
	Contrast   colorutil.ContrastResult `json:"contrast"`
}

// RampResult is the response of /v1/ramps.
type RampResult struct {
	Hex    string   `json:"hex"`
	Kind   string   `json:"kind"`
	Colors []string `json:"colors"`
}

// NewHandler returns an http.Handler serving the read-only color endpoints.
func NewHandler(d Defaults) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/colors/parse", func(w http.ResponseWriter, r *http.Request) {
		input := r.URL.Query().Get("input")
		hex, ok := colorutil.ParseToHex(input)
		if !ok {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid color %q", input))
			return
		}
		writeJSON(w, http.StatusOK, ParseResult{
			Input:  input,
			Hex:    hex,
			RGB:    colorutil.HexToRGB(hex),
			HSL:    colorutil.HexToHSL(hex),
			CMYK:   colorutil.HexToCMYK(hex),
			IsDark: colorutil.IsDark(hex),
		})
	})

	mux.HandleFunc("GET /v1/colors/format", func(w http.ResponseWriter, r *http.Request) {
		hex, mode, ok := colorAndMode(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, FormatResult{Hex: hex, Mode: mode, Value: colorutil.FormatColor(hex, mode)})
	})

	mux.HandleFunc("GET /v1/colors/components", func(w http.ResponseWriter, r *http.Request) {
		hex, mode, ok := colorAndMode(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, ComponentsResult{Hex: hex, Mode: mode, Components: colorutil.Components(hex, mode)})
	})

	mux.HandleFunc("GET /v1/contrast", func(w http.ResponseWriter, r *http.Request) {
		fg, ok := colorParam(w, r, "fg")
		if !ok {
			return
		}
		bg, ok := colorParam(w, r, "bg")
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, ContrastResult{
			Foreground:     fg,
			Background:     bg,
			ContrastResult: colorutil.CheckContrast(fg, bg),
		})
	})

	mux.HandleFunc("GET /v1/contrast/suggest", func(w http.ResponseWriter, r *http.Request) {
		fg, ok := colorParam(w, r, "fg")
		if !ok {
			return
		}
		bg, ok := colorParam(w, r, "bg")
		if !ok {
			return
		}
		target, ok := floatParam(w, r, "ratio", d.TargetRatio)
		if !ok {
			return
		}
		if target < 1 || target > 21 {
			writeError(w, http.StatusBadRequest, "ratio must be between 1 and 21")
			return
		}
		suggestion := colorutil.SuggestAccessibleColor(fg, bg, target)
		writeJSON(w, http.StatusOK, SuggestResult{
			Foreground: fg,
			Background: bg,
			Target:     target,
			Suggestion: suggestion,
			Contrast:   colorutil.CheckContrast(suggestion, bg),
		})
	})

	mux.HandleFunc("GET /v1/harmonies", func(w http.ResponseWriter, r *http.Request) {
		hex, ok := colorParam(w, r, "color")
		if !ok {
			return
		}
		angle, ok := floatParam(w, r, "angle", d.AnalogousAngle)
		if !ok {
			return
		}
		name := r.URL.Query().Get("name")
		if name == "" {
			all := colorutil.AllHarmonies(hex)
			all[1] = colorutil.Analogous(hex, angle)
			writeJSON(w, http.StatusOK, all)
			return
		}
		h, err := colorutil.HarmonyByName(hex, name, angle)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, []colorutil.Harmony{h})
	})

	mux.HandleFunc("GET /v1/ramps", func(w http.ResponseWriter, r *http.Request) {
		hex, ok := colorParam(w, r, "color")
		if !ok {
			return
		}
		kind := r.URL.Query().Get("kind")
		if kind == "" {
			kind = RampShades
		}
		defCount := d.ShadeCount
		if kind != RampShades {
			defCount = d.TintCount
		}
		count, ok := intParam(w, r, "count", defCount)
		if !ok {
			return
		}
		if count < 1 || count > MaxRampCount {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("count must be between 1 and %d", MaxRampCount))
			return
		}
		colors, err := Ramp(hex, kind, count)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, RampResult{Hex: hex, Kind: kind, Colors: colors})
	})

	return mux
}

// Ramp kinds.
const (
	RampShades = "shades"
	RampTints  = "tints"
	RampDark   = "dark"
)

// MaxRampCount bounds ramp sizes requested over the network.
const MaxRampCount = 64

// Ramp dispatches to the colorutil ramp generator named by kind.
func Ramp(hex, kind string, count int) ([]string, error) {
	switch kind {
	case RampShades:
		return colorutil.Shades(hex, count), nil
	case RampTints:
		return colorutil.Tints(hex, count), nil
	case RampDark, "dark-shades":
		return colorutil.DarkShades(hex, count), nil
	}
	return nil, fmt.Errorf("unknown ramp kind %q", kind)
}

func colorParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		writeError(w, http.StatusBadRequest, name+" is required")
		return "", false
	}
	hex, ok := colorutil.ParseToHex(raw)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid color %q", raw))
		return "", false
	}
	return hex, true
}

func colorAndMode(w http.ResponseWriter, r *http.Request) (string, colorutil.Mode, bool) {
	hex, ok := colorParam(w, r, "color")
	if !ok {
		return "", "", false
	}
	mode, err := colorutil.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return "", "", false
	}
	return hex, mode, true
}

func floatParam(w http.ResponseWriter, r *http.Request, name string, def float64) (float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid %s %q", name, raw))
		return 0, false
	}
	return v, true
}

func intParam(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid %s %q", name, raw))
		return 0, false
	}
	return v, true
}

// writeJSON encodes v as JSON and writes it to w with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
