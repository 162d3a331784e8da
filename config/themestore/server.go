package themestore

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kastheco/codecolor/internal/logging"
	"github.com/kastheco/codecolor/theme"
)

// NewHandler returns an http.Handler that exposes the Store over HTTP.
// It uses Go 1.22+ ServeMux pattern matching for method+path routing.
func NewHandler(store Store) http.Handler {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /v1/ping", func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(); err != nil {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	// List themes
	mux.HandleFunc("GET /v1/themes", func(w http.ResponseWriter, r *http.Request) {
		entries, err := store.List()
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, entries)
	})

	// Get theme
	mux.HandleFunc("GET /v1/themes/{name}", func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		entry, err := store.Get(name)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "theme not found: "+name)
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, entry)
	})

	// Save theme
	mux.HandleFunc("PUT /v1/themes/{name}", func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		if err := ValidateName(name); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		st, err := theme.DecodeState(r.Body, theme.FormatJSON)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
		entry, err := store.Save(name, *st)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		logging.Info("ThemeStore", "saved theme %q", name)
		writeJSON(w, http.StatusOK, entry)
	})

	// Delete theme
	mux.HandleFunc("DELETE /v1/themes/{name}", func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		if err := store.Delete(name); err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "theme not found: "+name)
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		logging.Info("ThemeStore", "deleted theme %q", name)
		w.WriteHeader(http.StatusNoContent)
	})

	return mux
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
