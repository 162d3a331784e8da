package mcptools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kastheco/codecolor/colorutil"
	"github.com/kastheco/codecolor/internal/colorapi"
)

func call(t *testing.T, name string, args map[string]interface{}) (string, bool) {
	t.Helper()
	tools := New(colorapi.Defaults{})
	for _, st := range tools.ServerTools() {
		if st.Tool.Name != name {
			continue
		}
		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      name,
				Arguments: args,
			},
		}
		result, err := st.Handler(context.Background(), req)
		require.NoError(t, err)
		require.Len(t, result.Content, 1)
		text, ok := result.Content[0].(mcp.TextContent)
		require.True(t, ok)
		return text.Text, result.IsError
	}
	t.Fatalf("tool %s not registered", name)
	return "", false
}

func TestServerTools_Names(t *testing.T) {
	var names []string
	for _, st := range New(colorapi.Defaults{}).ServerTools() {
		names = append(names, st.Tool.Name)
		assert.NotEmpty(t, st.Tool.Description)
	}
	assert.Equal(t, []string{"color_convert", "color_contrast", "color_suggest", "color_harmonies", "color_ramp"}, names)
	assert.NotNil(t, NewServer("test", New(colorapi.Defaults{})))
}

func TestConvert(t *testing.T) {
	text, isErr := call(t, "color_convert", map[string]interface{}{"color": "#3498DB"})
	require.False(t, isErr)

	var got conversion
	require.NoError(t, json.Unmarshal([]byte(text), &got))
	assert.Equal(t, conversion{
		Hex:  "#3498db",
		RGB:  "rgb(52, 152, 219)",
		HSL:  "hsl(204, 70%, 53%)",
		CMYK: "cmyk(76%, 31%, 0%, 14%)",
	}, got)

	text, isErr = call(t, "color_convert", map[string]interface{}{"color": "red", "mode": "cmyk"})
	require.False(t, isErr)
	assert.Equal(t, "cmyk(0%, 100%, 100%, 0%)", text)
}

func TestConvert_Errors(t *testing.T) {
	text, isErr := call(t, "color_convert", map[string]interface{}{})
	assert.True(t, isErr)
	assert.Equal(t, "color parameter is required", text)

	text, isErr = call(t, "color_convert", map[string]interface{}{"color": "nope"})
	assert.True(t, isErr)
	assert.Contains(t, text, "invalid color")

	_, isErr = call(t, "color_convert", map[string]interface{}{"color": "red", "mode": "lab"})
	assert.True(t, isErr)
}

func TestContrast(t *testing.T) {
	text, isErr := call(t, "color_contrast", map[string]interface{}{"foreground": "#000", "background": "#fff"})
	require.False(t, isErr)

	var got colorapi.ContrastResult
	require.NoError(t, json.Unmarshal([]byte(text), &got))
	assert.Equal(t, 21.0, got.Ratio)
	assert.Equal(t, colorutil.LevelAAA, got.Level)
}

func TestSuggest(t *testing.T) {
	text, isErr := call(t, "color_suggest", map[string]interface{}{"foreground": "#3498db", "background": "#1c1a1c"})
	require.False(t, isErr)

	var got colorapi.SuggestResult
	require.NoError(t, json.Unmarshal([]byte(text), &got))
	assert.Equal(t, "#389adc", got.Suggestion)
	assert.Equal(t, 4.5, got.Target)

	text, isErr = call(t, "color_suggest", map[string]interface{}{"foreground": "#3498db", "background": "#ffffff", "ratio": 7.0})
	require.False(t, isErr)
	require.NoError(t, json.Unmarshal([]byte(text), &got))
	assert.Equal(t, "#000000", got.Suggestion)

	_, isErr = call(t, "color_suggest", map[string]interface{}{"foreground": "#000", "background": "#fff", "ratio": "high"})
	assert.True(t, isErr)
	_, isErr = call(t, "color_suggest", map[string]interface{}{"foreground": "#000", "background": "#fff", "ratio": 0.5})
	assert.True(t, isErr)
}

func TestHarmonies(t *testing.T) {
	text, isErr := call(t, "color_harmonies", map[string]interface{}{"color": "#ff0000"})
	require.False(t, isErr)

	var all []colorutil.Harmony
	require.NoError(t, json.Unmarshal([]byte(text), &all))
	require.Len(t, all, 5)
	assert.Equal(t, []string{"#ff0000", "#80ff00", "#00ffff", "#7f00ff"}, all[4].Colors)

	text, isErr = call(t, "color_harmonies", map[string]interface{}{"color": "#ff0000", "name": "square"})
	require.False(t, isErr)
	require.NoError(t, json.Unmarshal([]byte(text), &all))
	require.Len(t, all, 1)
	assert.Equal(t, colorutil.HarmonyTetradic, all[0].Name)

	_, isErr = call(t, "color_harmonies", map[string]interface{}{"color": "#ff0000", "name": "mono"})
	assert.True(t, isErr)
}

func TestRamp(t *testing.T) {
	text, isErr := call(t, "color_ramp", map[string]interface{}{"color": "#ff0000", "kind": "tints"})
	require.False(t, isErr)

	var got colorapi.RampResult
	require.NoError(t, json.Unmarshal([]byte(text), &got))
	assert.Equal(t, []string{"#ff2a2a", "#ff5555", "#ff8080", "#ffaaaa", "#ffd5d5"}, got.Colors)

	text, isErr = call(t, "color_ramp", map[string]interface{}{"color": "#ff0000", "count": 3})
	require.False(t, isErr)
	require.NoError(t, json.Unmarshal([]byte(text), &got))
	assert.Equal(t, []string{"#800000", "#ff0000", "#ff8080"}, got.Colors)

	for _, args := range []map[string]interface{}{
		{"color": "#fff", "count": 2.5},
		{"color": "#fff", "count": 0},
		{"color": "#fff", "kind": "pastel"},
	} {
		_, isErr := call(t, "color_ramp", args)
		assert.True(t, isErr, "%v", args)
	}
}
