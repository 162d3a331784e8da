package themestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/kastheco/codecolor/theme"
)

const bucketName = "themes"

// For deterministic timestamps in tests
var nowFunc = time.Now

// BoltStore keeps the library in a single bbolt file.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (or creates) the library at path.
func NewBoltStore(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create theme library dir: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 200 * time.Millisecond})
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, fmt.Errorf("theme library %s is locked by another process", path)
		}
		return nil, fmt.Errorf("open theme library: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init theme library: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// List returns every saved theme ordered by name.
func (s *BoltStore) List() ([]Entry, error) {
	entries := []Entry{}
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).ForEach(func(k, v []byte) error {
			var e Entry
			if err := json.Unmarshal(v, &e); err != nil {
				return fmt.Errorf("decode theme %q: %w", k, err)
			}
			entries = append(entries, e)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *BoltStore) Get(name string) (Entry, error) {
	var e Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketName)).Get([]byte(name))
		if v == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return json.Unmarshal(v, &e)
	})
	if err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Save inserts or replaces name.
func (s *BoltStore) Save(name string, st theme.State) (Entry, error) {
	if err := ValidateName(name); err != nil {
		return Entry{}, err
	}
	st.Dir = ""
	e := Entry{Name: name, UpdatedAt: nowFunc().UTC(), State: st}

	buf, err := json.Marshal(e)
	if err != nil {
		return Entry{}, fmt.Errorf("marshal theme %q: %w", name, err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(name), buf)
	})
	if err != nil {
		return Entry{}, fmt.Errorf("save theme %q: %w", name, err)
	}
	return e, nil
}

func (s *BoltStore) Delete(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b.Get([]byte(name)) == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return b.Delete([]byte(name))
	})
}

// Ping checks that the database is still open.
func (s *BoltStore) Ping() error {
	return s.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket([]byte(bucketName)) == nil {
			return errors.New("theme library bucket missing")
		}
		return nil
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
