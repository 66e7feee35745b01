package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Archive keeps a copy of accepted uploads on disk. Filenames are uuids so
// concurrent uploads never collide; only the original extension is kept.
type Archive struct {
	dir string
}

// NewArchive creates the archive directory if needed. An empty dir disables
// archiving and returns a nil Archive, which Save treats as a no-op.
func NewArchive(dir string) (*Archive, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}
	return &Archive{dir: dir}, nil
}

// Save writes the upload under a fresh uuid name and returns the path.
func (a *Archive) Save(originalName string, data []byte) (string, error) {
	if a == nil {
		return "", nil
	}

	name := uuid.New().String() + filepath.Ext(originalName)
	path := filepath.Join(a.dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write archived upload: %w", err)
	}
	return path, nil
}
