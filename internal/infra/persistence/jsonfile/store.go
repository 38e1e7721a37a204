// Package jsonfile implements the repository interfaces over flat JSON-array
// files, one file per collection, rewritten wholesale on every mutation.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Mythos223/Blog-Website-Project/internal/repository"
)

// Store keeps each named collection in <dir>/<name>.json.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load reads the named collection into out, creating the backing file with
// an empty array if it does not exist yet.
func (s *Store) Load(name string, out any) error {
	path := s.path(name)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return fmt.Errorf("failed to initialize collection %s: %w", name, err)
		}
		data = []byte("[]")
	} else if err != nil {
		return fmt.Errorf("failed to read collection %s: %w", name, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		// The file exists but is not a valid JSON array. Surface this as
		// fatal rather than silently resetting data.
		return fmt.Errorf("%w: %s: %v", repository.ErrCorruptStore, name, err)
	}
	return nil
}

// Save overwrites the named collection with the full serialized array.
// No locking: two concurrent writers can lose updates (last writer wins).
func (s *Store) Save(name string, records any) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize collection %s: %w", name, err)
	}
	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", name, err)
	}
	return nil
}
