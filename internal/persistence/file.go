package persistence

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps each slot as a file in a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Path returns the file backing slot.
func (s *FileStore) Path(slot string) string {
	return filepath.Join(s.dir, filepath.Base(slot))
}

// Save writes to a temporary file and renames it over the slot.
func (s *FileStore) Save(_ context.Context, slot string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, filepath.Base(slot)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp save file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write save file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close save file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path(slot)); err != nil {
		return fmt.Errorf("failed to replace save file: %w", err)
	}
	return nil
}

// Load reads the slot's file.
func (s *FileStore) Load(_ context.Context, slot string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("slot %s: %w", slot, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}
	return data, nil
}

// Close is a no-op for the file store.
func (s *FileStore) Close() error {
	return nil
}

var _ Store = (*FileStore)(nil)
