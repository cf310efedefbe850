package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// KeyFileName is the name of the key file inside the cache directory.
const KeyFileName = "cache-key"

// Store owns one cache directory and the single key file inside it. The
// directory is either absent or holds the last saved key; concurrent
// writers are tolerated because the key is a deterministic function of the
// inputs and the last writer wins.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir. Nothing is touched on disk
// until Save is called.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the cache directory path.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) keyPath() string {
	return filepath.Join(s.dir, KeyFileName)
}

// Save creates the cache directory if needed and overwrites the key file.
func (s *Store) Save(key string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory %s: %w", s.dir, err)
	}
	if err := os.WriteFile(s.keyPath(), []byte(key), 0644); err != nil {
		return fmt.Errorf("failed to write cache key: %w", err)
	}
	return nil
}

// IsValid reports whether a stored key exists and matches the given key.
// An absent or unreadable key file is simply not valid.
func (s *Store) IsValid(key string) bool {
	data, err := os.ReadFile(s.keyPath())
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(data)) == key
}

// Clean removes the cache directory and everything under it. Cleaning an
// absent directory succeeds.
func (s *Store) Clean() error {
	if err := os.RemoveAll(s.dir); err != nil {
		return fmt.Errorf("failed to remove cache directory %s: %w", s.dir, err)
	}
	return nil
}
