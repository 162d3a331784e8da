package mcptools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kastheco/codecolor/colorutil"
	"github.com/kastheco/codecolor/internal/colorapi"
	"github.com/kastheco/codecolor/internal/logging"
)

// Tools exposes colorutil as MCP tools.
type Tools struct {
	defaults colorapi.Defaults
}

// New creates the tool set. Zero-valued defaults fall back to colorutil's.
func New(d colorapi.Defaults) *Tools {
	def := colorapi.DefaultDefaults()
	if d.TargetRatio <= 0 {
		d.TargetRatio = def.TargetRatio
	}
	if d.ShadeCount <= 0 {
		d.ShadeCount = def.ShadeCount
	}
	if d.TintCount <= 0 {
		d.TintCount = def.TintCount
	}
	if d.AnalogousAngle == 0 {
		d.AnalogousAngle = def.AnalogousAngle
	}
	return &Tools{defaults: d}
}

// NewServer builds an MCP server with every tool registered.
func NewServer(version string, t *Tools) *server.MCPServer {
	s := server.NewMCPServer(
		"codecolor",
		version,
		server.WithToolCapabilities(true),
	)
	s.AddTools(t.ServerTools()...)
	return s
}

// ServeStdio serves s over stdin/stdout until the client disconnects.
func ServeStdio(s *server.MCPServer) error {
	logging.Info("MCP", "serving tools on stdio")
	return server.ServeStdio(s)
}

// ServerTools pairs every tool definition with its handler.
func (t *Tools) ServerTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("color_convert",
				mcp.WithDescription("Parse a color in any supported notation and convert it to hex, rgb, hsl and cmyk"),
				mcp.WithString("color",
					mcp.Required(),
					mcp.Description("Color to convert, e.g. #3498db, rgb(52,152,219), cmyk(76%,31%,0%,14%) or a CSS name"),
				),
				mcp.WithString("mode",
					mcp.Description("Only return this notation: hex, rgb, hsl or cmyk"),
				),
			),
			Handler: t.handleConvert,
		},
		{
			Tool: mcp.NewTool("color_contrast",
				mcp.WithDescription("WCAG 2.1 contrast ratio and conformance levels for a foreground/background pair"),
				mcp.WithString("foreground", mcp.Required(), mcp.Description("Foreground color")),
				mcp.WithString("background", mcp.Required(), mcp.Description("Background color")),
			),
			Handler: t.handleContrast,
		},
		{
			Tool: mcp.NewTool("color_suggest",
				mcp.WithDescription("Suggest a variant of the foreground with the same hue that reaches a target contrast ratio"),
				mcp.WithString("foreground", mcp.Required(), mcp.Description("Foreground color")),
				mcp.WithString("background", mcp.Required(), mcp.Description("Background color")),
				mcp.WithNumber("ratio", mcp.Description("Target ratio between 1 and 21, default 4.5")),
			),
			Handler: t.handleSuggest,
		},
		{
			Tool: mcp.NewTool("color_harmonies",
				mcp.WithDescription("Color-wheel harmonies of a base color"),
				mcp.WithString("color", mcp.Required(), mcp.Description("Base color")),
				mcp.WithString("name", mcp.Description("Only this harmony: complementary, analogous, triadic, split-complementary or tetradic")),
				mcp.WithNumber("angle", mcp.Description("Analogous offset in degrees, default 30")),
			),
			Handler: t.handleHarmonies,
		},
		{
			Tool: mcp.NewTool("color_ramp",
				mcp.WithDescription("Lightness ramp of a color"),
				mcp.WithString("color", mcp.Required(), mcp.Description("Base color")),
				mcp.WithString("kind", mcp.Description("shades (default), tints or dark")),
				mcp.WithNumber("count", mcp.Description("Number of colors")),
			),
			Handler: t.handleRamp,
		},
	}
}

type conversion struct {
	Hex  string         `json:"hex"`
	RGB  string         `json:"rgb"`
	HSL  string         `json:"hsl"`
	CMYK string         `json:"cmyk"`
	Mode colorutil.Mode `json:"mode,omitempty"`
}

func (t *Tools) handleConvert(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	hex, errResult := colorArg(args, "color")
	if errResult != nil {
		return errResult, nil
	}

	if raw, ok := args["mode"].(string); ok && raw != "" {
		mode, err := colorutil.ParseMode(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(colorutil.FormatColor(hex, mode)), nil
	}

	return jsonResult(conversion{
		Hex:  colorutil.FormatColor(hex, colorutil.ModeHex),
		RGB:  colorutil.FormatColor(hex, colorutil.ModeRGB),
		HSL:  colorutil.FormatColor(hex, colorutil.ModeHSL),
		CMYK: colorutil.FormatColor(hex, colorutil.ModeCMYK),
	})
}

func (t *Tools) handleContrast(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	fg, errResult := colorArg(args, "foreground")
	if errResult != nil {
		return errResult, nil
	}
	bg, errResult := colorArg(args, "background")
	if errResult != nil {
		return errResult, nil
	}
	return jsonResult(colorapi.ContrastResult{
		Foreground:     fg,
		Background:     bg,
		ContrastResult: colorutil.CheckContrast(fg, bg),
	})
}

func (t *Tools) handleSuggest(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	fg, errResult := colorArg(args, "foreground")
	if errResult != nil {
		return errResult, nil
	}
	bg, errResult := colorArg(args, "background")
	if errResult != nil {
		return errResult, nil
	}
	target, err := numberArg(args, "ratio", t.defaults.TargetRatio)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if target < 1 || target > 21 {
		return mcp.NewToolResultError("ratio must be between 1 and 21"), nil
	}

	suggestion := colorutil.SuggestAccessibleColor(fg, bg, target)
	return jsonResult(colorapi.SuggestResult{
		Foreground: fg,
		Background: bg,
		Target:     target,
		Suggestion: suggestion,
		Contrast:   colorutil.CheckContrast(suggestion, bg),
	})
}

func (t *Tools) handleHarmonies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	hex, errResult := colorArg(args, "color")
	if errResult != nil {
		return errResult, nil
	}
	angle, err := numberArg(args, "angle", t.defaults.AnalogousAngle)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if name, ok := args["name"].(string); ok && name != "" {
		h, err := colorutil.HarmonyByName(hex, name, angle)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult([]colorutil.Harmony{h})
	}

	all := colorutil.AllHarmonies(hex)
	all[1] = colorutil.Analogous(hex, angle)
	return jsonResult(all)
}

func (t *Tools) handleRamp(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	hex, errResult := colorArg(args, "color")
	if errResult != nil {
		return errResult, nil
	}
	kind, _ := args["kind"].(string)
	if kind == "" {
		kind = colorapi.RampShades
	}
	def := t.defaults.ShadeCount
	if kind != colorapi.RampShades {
		def = t.defaults.TintCount
	}
	count, err := numberArg(args, "count", float64(def))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if count < 1 || count > colorapi.MaxRampCount || count != float64(int(count)) {
		return mcp.NewToolResultError(fmt.Sprintf("count must be a whole number between 1 and %d", colorapi.MaxRampCount)), nil
	}

	colors, err := colorapi.Ramp(hex, kind, int(count))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(colorapi.RampResult{Hex: hex, Kind: kind, Colors: colors})
}

// colorArg reads a required color argument and canonicalizes it. A non-nil
// result is the error to hand back to the client.
func colorArg(args map[string]any, name string) (string, *mcp.CallToolResult) {
	raw, ok := args[name].(string)
	if !ok || raw == "" {
		return "", mcp.NewToolResultError(name + " parameter is required")
	}
	hex, ok := colorutil.ParseToHex(raw)
	if !ok {
		return "", mcp.NewToolResultError(fmt.Sprintf("invalid color %q", raw))
	}
	return hex, nil
}

// numberArg reads an optional numeric argument. JSON clients send float64;
// in-process callers may pass ints.
func numberArg(args map[string]any, name string, def float64) (float64, error) {
	switch v := args[name].(type) {
	case nil:
		return def, nil
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	}
	return 0, fmt.Errorf("%s must be a number", name)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
