package themestore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kastheco/codecolor/config/themestore"
	"github.com/kastheco/codecolor/theme"
)

func TestHTTPStore_RoundTrip(t *testing.T) {
	client, _ := themestore.NewTestServer(t)

	st := theme.NewState("")
	require.NoError(t, st.SetColor(theme.Color1, "#abcdef"))
	require.NoError(t, st.SetSyntax(theme.TokenKeyword, theme.Color1))

	// Save
	saved, err := client.Save("custom", *st)
	require.NoError(t, err)
	assert.Equal(t, "custom", saved.Name)

	// Get
	got, err := client.Get("custom")
	require.NoError(t, err)
	assert.Equal(t, "#abcdef", got.State.LightColors.Color1)
	assert.Equal(t, theme.Color1, got.State.SyntaxMapping[theme.TokenKeyword])

	// List
	entries, err := client.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "custom", entries[0].Name)

	// Delete
	require.NoError(t, client.Delete("custom"))
	_, err = client.Get("custom")
	assert.ErrorIs(t, err, themestore.ErrNotFound)
	assert.ErrorIs(t, client.Delete("custom"), themestore.ErrNotFound)
}

func TestHTTPStore_NameNeedsEscaping(t *testing.T) {
	client, backend := themestore.NewTestServer(t)
	_, err := client.Save("Solarized Light #2", *theme.NewState(""))
	require.NoError(t, err)

	_, err = backend.Get("Solarized Light #2")
	assert.NoError(t, err)
}

func TestHTTPStore_ServerUnreachable(t *testing.T) {
	client := themestore.NewHTTPStore("http://127.0.0.1:1")
	_, err := client.List()
	require.Error(t, err)
	// Error should be recognizable as a connectivity issue
	assert.Contains(t, err.Error(), "theme store unreachable")
	assert.ErrorContains(t, client.Ping(), "theme store unreachable")
}

func TestHTTPStore_Ping(t *testing.T) {
	client, _ := themestore.NewTestServer(t)
	require.NoError(t, client.Ping())
	require.NoError(t, client.Close())
}
