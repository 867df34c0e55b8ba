package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileGateway stores each key as one JSON document under a data directory.
// It is the default backend: the on-disk analog of a browser's local storage,
// scoped to a single device.
type FileGateway struct {
	dir string
}

// NewFileGateway creates the data directory if needed and returns a gateway
// rooted at it.
func NewFileGateway(dir string) (*FileGateway, error) {
	if dir == "" {
		return nil, fmt.Errorf("file gateway: data directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file gateway: create data directory: %w", err)
	}
	return &FileGateway{dir: dir}, nil
}

// Read returns the stored value for key, or ok=false when the key has never
// been written.
func (g *FileGateway) Read(key string) (string, bool, error) {
	data, err := os.ReadFile(g.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("file gateway: read %q: %w", key, err)
	}
	return string(data), true, nil
}

// Write replaces the value for key. The write goes through a temp file and a
// rename so a crash never leaves a partially written record behind.
func (g *FileGateway) Write(key, value string) error {
	tmp, err := os.CreateTemp(g.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("file gateway: write %q: %w", key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("file gateway: write %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("file gateway: write %q: %w", key, err)
	}
	if err := os.Rename(tmpName, g.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("file gateway: write %q: %w", key, err)
	}
	return nil
}

// Remove deletes the record for key. Removing a missing key is a no-op.
func (g *FileGateway) Remove(key string) error {
	if err := os.Remove(g.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("file gateway: remove %q: %w", key, err)
	}
	return nil
}

func (g *FileGateway) path(key string) string {
	return filepath.Join(g.dir, key+".json")
}
