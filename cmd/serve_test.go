package cmd

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kastheco/codecolor/config/themestore"
	"github.com/kastheco/codecolor/internal/colorapi"
)

func TestServeCmd_Exists(t *testing.T) {
	rootCmd := NewRootCmd()
	// Verify the serve subcommand is registered
	cmd, _, err := rootCmd.Find([]string{"serve"})
	require.NoError(t, err)
	assert.Equal(t, "serve", cmd.Name())
}

func TestServeCmd_DefaultPort(t *testing.T) {
	cmd := NewServeCmd(&rootOptions{})
	assert.Contains(t, cmd.UseLine(), "serve")
	// Verify default flag values
	port, _ := cmd.Flags().GetInt("port")
	assert.Equal(t, 7433, port)
	bind, _ := cmd.Flags().GetString("bind")
	assert.Equal(t, "127.0.0.1", bind)
}

func TestServeMux_MountsBothAPIs(t *testing.T) {
	srv := httptest.NewServer(newServeMux(colorapi.DefaultDefaults(), themestore.NewTestStore(t)))
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/v1/contrast?fg=%23777777&bg=white")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var contrast colorapi.ContrastResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&contrast))
	assert.InDelta(t, 4.48, contrast.Ratio, 0.005)

	resp, err = http.Get(srv.URL + "/v1/contrast/suggest?fg=%23333333&bg=%23000000")
	require.NoError(t, err)
	defer resp.Body.Close()
	var suggest colorapi.SuggestResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&suggest))
	assert.Equal(t, "#757575", suggest.Suggestion)

	client := themestore.NewHTTPStore(srv.URL)
	require.NoError(t, client.Ping())
	entries, err := client.List()
	require.NoError(t, err)
	assert.Empty(t, entries)

	resp, err = http.Get(srv.URL + "/v1/ramps?color=red&count=3")
	require.NoError(t, err)
	defer resp.Body.Close()
	var ramp colorapi.RampResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ramp))
	assert.Equal(t, []string{"#800000", "#ff0000", "#ff8080"}, ramp.Colors)
}
