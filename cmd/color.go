package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kastheco/codecolor/colorutil"
	"github.com/kastheco/codecolor/internal/colorapi"
)

// parseColorArg parses any notation the parser accepts into canonical hex.
func parseColorArg(s string) (string, error) {
	hex, ok := colorutil.ParseToHex(s)
	if !ok {
		return "", fmt.Errorf("invalid color %q", s)
	}
	return hex, nil
}

func newConvertCmd(opts *rootOptions) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "convert <color>",
		Short: "convert a color to hex, rgb, hsl or cmyk",
		Long: `Convert a color given as hex, rgb(), hsl(), hsv(), cmyk() or a CSS name.
Without --mode every representation is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := parseColorArg(args[0])
			if err != nil {
				return err
			}
			if mode != "" {
				m, err := colorutil.ParseMode(mode)
				if err != nil {
					return err
				}
				res := colorapi.FormatResult{Hex: hex, Mode: m, Value: colorutil.FormatColor(hex, m)}
				return opts.print(cmd, res, func(w io.Writer) {
					fmt.Fprintln(w, res.Value)
				})
			}

			res := colorapi.ParseResult{
				Input:  args[0],
				Hex:    hex,
				RGB:    colorutil.HexToRGB(hex),
				HSL:    colorutil.HexToHSL(hex),
				CMYK:   colorutil.HexToCMYK(hex),
				IsDark: colorutil.IsDark(hex),
			}
			return opts.print(cmd, res, func(w io.Writer) {
				for _, m := range colorutil.Modes() {
					fmt.Fprintf(w, "%-5s %s\n", m, colorutil.FormatColor(hex, m))
				}
			})
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "output mode: hex, rgb, hsl or cmyk")
	return cmd
}

func newComponentsCmd(opts *rootOptions) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "components <color>",
		Short: "print the integer components of a color in one mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := parseColorArg(args[0])
			if err != nil {
				return err
			}
			if mode == "" {
				mode = string(opts.cfg.DefaultMode)
			}
			m, err := colorutil.ParseMode(mode)
			if err != nil {
				return err
			}
			res := colorapi.ComponentsResult{Hex: hex, Mode: m, Components: colorutil.Components(hex, m)}
			return opts.print(cmd, res, func(w io.Writer) {
				if len(res.Components) == 0 {
					fmt.Fprintln(w, hex)
					return
				}
				for _, k := range componentOrder(m) {
					fmt.Fprintf(w, "%s %d\n", k, res.Components[k])
				}
			})
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "mode: rgb, hsl or cmyk (default from config)")
	return cmd
}

func componentOrder(m colorutil.Mode) []string {
	switch m {
	case colorutil.ModeRGB:
		return []string{"r", "g", "b"}
	case colorutil.ModeHSL:
		return []string{"h", "s", "l"}
	case colorutil.ModeCMYK:
		return []string{"c", "m", "y", "k"}
	}
	return nil
}

func newContrastCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "check the WCAG 2.1 contrast of two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, err := parseColorArg(args[0])
			if err != nil {
				return err
			}
			bg, err := parseColorArg(args[1])
			if err != nil {
				return err
			}
			res := colorapi.ContrastResult{Foreground: fg, Background: bg, ContrastResult: colorutil.CheckContrast(fg, bg)}
			return opts.print(cmd, res, func(w io.Writer) {
				fmt.Fprintf(w, "%s on %s: %.2f:1 %s\n", fg, bg, res.Ratio, res.Level)
				fmt.Fprintf(w, "AA %s  AA large %s  AAA %s  AAA large %s\n",
					passMark(res.AA), passMark(res.AALarge), passMark(res.AAA), passMark(res.AAALarge))
			})
		},
	}
}

func passMark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func newSuggestCmd(opts *rootOptions) *cobra.Command {
	var ratio float64

	cmd := &cobra.Command{
		Use:   "suggest <foreground> <background>",
		Short: "find the nearest foreground that meets a contrast ratio",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, err := parseColorArg(args[0])
			if err != nil {
				return err
			}
			bg, err := parseColorArg(args[1])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("ratio") {
				ratio = opts.cfg.TargetRatio
			}
			if ratio < 1 || ratio > 21 {
				return fmt.Errorf("ratio must be between 1 and 21")
			}
			suggestion := colorutil.SuggestAccessibleColor(fg, bg, ratio)
			res := colorapi.SuggestResult{
				Foreground: fg,
				Background: bg,
				Target:     ratio,
				Suggestion: suggestion,
				Contrast:   colorutil.CheckContrast(suggestion, bg),
			}
			return opts.print(cmd, res, func(w io.Writer) {
				fmt.Fprintf(w, "%s (%.2f:1 %s)\n", suggestion, res.Contrast.Ratio, res.Contrast.Level)
			})
		},
	}

	cmd.Flags().Float64VarP(&ratio, "ratio", "r", colorutil.DefaultTargetRatio, "target contrast ratio (default from config)")
	return cmd
}

func newHarmonyCmd(opts *rootOptions) *cobra.Command {
	var (
		name  string
		angle float64
	)

	cmd := &cobra.Command{
		Use:   "harmony <color>",
		Short: "generate color harmonies",
		Long: "Generate the complementary, analogous, triadic, split-complementary and\n" +
			"tetradic harmonies of a color, or a single one with --name.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := parseColorArg(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("angle") {
				angle = opts.cfg.AnalogousAngle
			}

			var harmonies []colorutil.Harmony
			if name != "" {
				h, err := colorutil.HarmonyByName(hex, name, angle)
				if err != nil {
					return err
				}
				harmonies = []colorutil.Harmony{h}
			} else {
				harmonies = colorutil.AllHarmonies(hex)
				harmonies[1] = colorutil.Analogous(hex, angle)
			}
			return opts.print(cmd, harmonies, func(w io.Writer) {
				for _, h := range harmonies {
					fmt.Fprintf(w, "%-20s %s\n", h.Name, strings.Join(h.Colors, " "))
				}
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "harmony: "+strings.ToLower(strings.Join(colorutil.HarmonyNames(), ", ")))
	cmd.Flags().Float64Var(&angle, "angle", colorutil.DefaultAnalogousAngle, "analogous spread in degrees (default from config)")
	return cmd
}

var rampKinds = []string{colorapi.RampShades, colorapi.RampTints, colorapi.RampDark}

func newRampCmd(opts *rootOptions) *cobra.Command {
	var (
		kind  string
		count int
	)

	cmd := &cobra.Command{
		Use:   "ramp <color>",
		Short: "generate shades, tints or dark shades of a color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := parseColorArg(args[0])
			if err != nil {
				return err
			}
			if !slices.Contains(rampKinds, kind) {
				return fmt.Errorf("unknown ramp kind %q (want %s)", kind, strings.Join(rampKinds, ", "))
			}
			if !cmd.Flags().Changed("count") {
				count = opts.cfg.TintCount
				if kind == colorapi.RampShades {
					count = opts.cfg.ShadeCount
				}
			}
			if count < 1 {
				return fmt.Errorf("count must be at least 1")
			}
			colors, err := colorapi.Ramp(hex, kind, count)
			if err != nil {
				return err
			}
			res := colorapi.RampResult{Hex: hex, Kind: kind, Colors: colors}
			return opts.print(cmd, res, func(w io.Writer) {
				fmt.Fprintln(w, strings.Join(colors, " "))
			})
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", colorapi.RampShades, "ramp kind: "+strings.Join(rampKinds, ", "))
	cmd.Flags().IntVarP(&count, "count", "c", colorutil.DefaultShadeCount, "number of colors (default from config)")
	return cmd
}
