package themestore

import (
	"net/http/httptest"
	"path/filepath"
	"testing"
)

// NewTestStore creates a BoltStore in a temporary directory for use in tests.
// It registers a cleanup function to close the store when the test completes.
// This is exported so external packages can use it in their tests.
func NewTestStore(t testing.TB) *BoltStore {
	t.Helper()
	store, err := NewBoltStore(filepath.Join(t.TempDir(), "themes.db"))
	if err != nil {
		t.Fatalf("NewTestStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// NewTestServer serves a fresh test store over a local httptest.Server and
// returns a client for it together with the backing store. The server is
// closed when the test ends.
func NewTestServer(t testing.TB) (*HTTPStore, *BoltStore) {
	t.Helper()
	backend := NewTestStore(t)
	srv := httptest.NewServer(NewHandler(backend))
	t.Cleanup(srv.Close)
	return NewHTTPStore(srv.URL), backend
}
