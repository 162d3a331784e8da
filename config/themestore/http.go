package themestore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kastheco/codecolor/theme"
)

// HTTPStore is a Store implementation that talks to a remote theme library
// over HTTP. Connection errors are wrapped with "theme store unreachable" so
// callers can detect and surface them gracefully.
type HTTPStore struct {
	baseURL string
	client  *http.Client
}

// NewHTTPStore creates a new HTTPStore client pointing at baseURL.
// The underlying http.Client has a 5-second timeout.
func NewHTTPStore(baseURL string) *HTTPStore {
	return &HTTPStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// BaseURL returns the server address the client talks to.
func (s *HTTPStore) BaseURL() string {
	return s.baseURL
}

func (s *HTTPStore) themesURL() string {
	return s.baseURL + "/v1/themes"
}

func (s *HTTPStore) themeURL(name string) string {
	return fmt.Sprintf("%s/v1/themes/%s", s.baseURL, url.PathEscape(name))
}

// do executes an HTTP request, wrapping connection errors with
// "theme store unreachable".
func (s *HTTPStore) do(req *http.Request) (*http.Response, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("theme store unreachable: %w", err)
	}
	return resp, nil
}

// decodeError reads an error response body and returns a formatted error.
func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	var errResp struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
		return fmt.Errorf("theme store: %s (status %d)", errResp.Error, resp.StatusCode)
	}
	return fmt.Errorf("theme store: unexpected status %d", resp.StatusCode)
}

// List returns every theme in the remote library.
func (s *HTTPStore) List() ([]Entry, error) {
	req, err := http.NewRequest(http.MethodGet, s.themesURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("theme store: build request: %w", err)
	}

	resp, err := s.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("theme store: decode response: %w", err)
	}
	return entries, nil
}

// Get retrieves a single theme by name.
func (s *HTTPStore) Get(name string) (Entry, error) {
	req, err := http.NewRequest(http.MethodGet, s.themeURL(name), nil)
	if err != nil {
		return Entry{}, fmt.Errorf("theme store: build request: %w", err)
	}

	resp, err := s.do(req)
	if err != nil {
		return Entry{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Entry{}, fmt.Errorf("theme store: %w: %s", ErrNotFound, name)
	}
	if resp.StatusCode != http.StatusOK {
		return Entry{}, decodeError(resp)
	}

	var entry Entry
	if err := json.NewDecoder(resp.Body).Decode(&entry); err != nil {
		return Entry{}, fmt.Errorf("theme store: decode response: %w", err)
	}
	return entry, nil
}

// Save uploads st under name, replacing any existing theme.
func (s *HTTPStore) Save(name string, st theme.State) (Entry, error) {
	body, err := json.Marshal(st)
	if err != nil {
		return Entry{}, fmt.Errorf("theme store: marshal theme: %w", err)
	}
	req, err := http.NewRequest(http.MethodPut, s.themeURL(name), bytes.NewReader(body))
	if err != nil {
		return Entry{}, fmt.Errorf("theme store: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.do(req)
	if err != nil {
		return Entry{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Entry{}, decodeError(resp)
	}

	var entry Entry
	if err := json.NewDecoder(resp.Body).Decode(&entry); err != nil {
		return Entry{}, fmt.Errorf("theme store: decode response: %w", err)
	}
	return entry, nil
}

// Delete removes a theme from the remote library.
func (s *HTTPStore) Delete(name string) error {
	req, err := http.NewRequest(http.MethodDelete, s.themeURL(name), nil)
	if err != nil {
		return fmt.Errorf("theme store: build request: %w", err)
	}

	resp, err := s.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("theme store: %w: %s", ErrNotFound, name)
	}
	if resp.StatusCode != http.StatusNoContent {
		return decodeError(resp)
	}
	return nil
}

// Close is a no-op for HTTPStore. It exists to satisfy the Store interface.
func (s *HTTPStore) Close() error {
	return nil
}

// Ping checks connectivity to the remote store server.
// It uses a shorter 2-second timeout for health checks.
func (s *HTTPStore) Ping() error {
	pingClient := &http.Client{Timeout: 2 * time.Second}
	req, err := http.NewRequest(http.MethodGet, s.baseURL+"/v1/ping", nil)
	if err != nil {
		return fmt.Errorf("theme store: build ping request: %w", err)
	}

	resp, err := pingClient.Do(req)
	if err != nil {
		return fmt.Errorf("theme store unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("theme store: ping returned status %d", resp.StatusCode)
	}
	return nil
}
