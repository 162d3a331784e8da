package themestore

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kastheco/codecolor/theme"
)

// ErrNotFound is returned (wrapped) when a named theme does not exist.
var ErrNotFound = errors.New("theme not found")

// Entry is one saved theme.
type Entry struct {
	Name      string      `json:"name"`
	UpdatedAt time.Time   `json:"updated_at"`
	State     theme.State `json:"state"`
}

// Store is a library of named theme states.
type Store interface {
	List() ([]Entry, error)
	Get(name string) (Entry, error)
	Save(name string, st theme.State) (Entry, error)
	Delete(name string) error
	Ping() error
	Close() error
}

// ValidateName rejects names that cannot be used as a library key or URL
// path segment.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("theme name is required")
	}
	if name != strings.TrimSpace(name) {
		return fmt.Errorf("theme name %q has surrounding whitespace", name)
	}
	if strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("theme name %q must not contain slashes", name)
	}
	return nil
}
