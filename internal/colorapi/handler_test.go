package colorapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kastheco/codecolor/colorutil"
	"github.com/kastheco/codecolor/internal/colorapi"
)

func get(t *testing.T, path string, q url.Values, out any) int {
	t.Helper()
	srv := httptest.NewServer(colorapi.NewHandler(colorapi.DefaultDefaults()))
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + path + "?" + q.Encode())
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestParse(t *testing.T) {
	var got colorapi.ParseResult
	status := get(t, "/v1/colors/parse", url.Values{"input": {"cmyk(76%, 31%, 0%, 14%)"}}, &got)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "#3597db", got.Hex)
	assert.Equal(t, colorutil.RGB{R: 53, G: 151, B: 219}, got.RGB)
	assert.Equal(t, colorutil.IsDark("#3597db"), got.IsDark)
}

func TestParse_Invalid(t *testing.T) {
	var body map[string]string
	status := get(t, "/v1/colors/parse", url.Values{"input": {"nope"}}, &body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, `invalid color "nope"`, body["error"])
}

func TestFormat(t *testing.T) {
	var got colorapi.FormatResult
	status := get(t, "/v1/colors/format", url.Values{"color": {"#3498DB"}, "mode": {"hsl"}}, &got)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "hsl(204, 70%, 53%)", got.Value)

	var body map[string]string
	status = get(t, "/v1/colors/format", url.Values{"color": {"#3498db"}, "mode": {"lab"}}, &body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["error"], "unknown color mode")
}

func TestComponents(t *testing.T) {
	var got colorapi.ComponentsResult
	status := get(t, "/v1/colors/components", url.Values{"color": {"#3498db"}, "mode": {"cmyk"}}, &got)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]int{"c": 76, "m": 31, "y": 0, "k": 14}, got.Components)
}

func TestContrast(t *testing.T) {
	var got map[string]any
	status := get(t, "/v1/contrast", url.Values{"fg": {"#777777"}, "bg": {"white"}}, &got)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 4.48, got["ratio"])
	assert.Equal(t, "AA Large", got["level"])
	assert.Equal(t, true, got["aaLarge"])
	assert.Equal(t, false, got["aa"])
	assert.Equal(t, "#ffffff", got["background"])
}

func TestContrast_MissingParam(t *testing.T) {
	var body map[string]string
	status := get(t, "/v1/contrast", url.Values{"fg": {"#000"}}, &body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "bg is required", body["error"])
}

func TestSuggest(t *testing.T) {
	var got colorapi.SuggestResult
	status := get(t, "/v1/contrast/suggest", url.Values{"fg": {"#333333"}, "bg": {"#000000"}}, &got)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "#757575", got.Suggestion)
	assert.Equal(t, 4.5, got.Target)
	assert.True(t, got.Contrast.AA)

	status = get(t, "/v1/contrast/suggest", url.Values{"fg": {"#333"}, "bg": {"#000"}, "ratio": {"25"}}, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status = get(t, "/v1/contrast/suggest", url.Values{"fg": {"#333"}, "bg": {"#000"}, "ratio": {"abc"}}, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHarmonies(t *testing.T) {
	var all []colorutil.Harmony
	status := get(t, "/v1/harmonies", url.Values{"color": {"red"}}, &all)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, all, 5)
	assert.Equal(t, []string{"#ff0000", "#00ffff"}, all[0].Colors)

	var one []colorutil.Harmony
	status = get(t, "/v1/harmonies", url.Values{"color": {"red"}, "name": {"analogous"}, "angle": {"15"}}, &one)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, one, 1)
	assert.Equal(t, "Adjacent colors (±15°)", one[0].Description)

	status = get(t, "/v1/harmonies", url.Values{"color": {"red"}, "name": {"mono"}}, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestRamps(t *testing.T) {
	var got colorapi.RampResult
	status := get(t, "/v1/ramps", url.Values{"color": {"#808080"}}, &got)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "shades", got.Kind)
	assert.Len(t, got.Colors, colorutil.DefaultShadeCount)

	status = get(t, "/v1/ramps", url.Values{"color": {"#000000"}, "kind": {"tints"}}, &got)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"#2a2a2a", "#555555", "#808080", "#aaaaaa", "#d5d5d5"}, got.Colors)

	status = get(t, "/v1/ramps", url.Values{"color": {"#3498db"}, "kind": {"dark"}, "count": {"3"}}, &got)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"#2772a4", "#1a4c6e", "#0d2637"}, got.Colors)

	for _, q := range []url.Values{
		{"color": {"#fff"}, "kind": {"pastel"}},
		{"color": {"#fff"}, "count": {"0"}},
		{"color": {"#fff"}, "count": {"1000"}},
	} {
		assert.Equal(t, http.StatusBadRequest, get(t, "/v1/ramps", q, nil), q.Encode())
	}
}

func TestRamp(t *testing.T) {
	colors, err := colorapi.Ramp("#ffffff", "dark-shades", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"#808080"}, colors)

	_, err = colorapi.Ramp("#ffffff", "bogus", 1)
	assert.Error(t, err)
}
