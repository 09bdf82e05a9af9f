package cookiecost

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Backend is a key-value slot store holding text blobs, the equivalent of a
// browser's local storage. The Store keeps its whole collection under one key.
type Backend interface {
	// Get returns the value under 'key', ok is false if there is none.
	Get(key string) (value string, ok bool, err error)
	// Set replaces the value under 'key'.
	Set(key, value string) error
}

// MemoryBackend keeps values in memory. Its zero value is ready to use.
type MemoryBackend struct {
	values map[string]string
}

func (b *MemoryBackend) Get(key string) (string, bool, error) {
	v, ok := b.values[key]
	return v, ok, nil
}

func (b *MemoryBackend) Set(key, value string) error {
	if b.values == nil {
		b.values = make(map[string]string)
	}
	b.values[key] = value
	return nil
}

// FileBackend keeps each key in its own file '<dir>/<key>.json', so that the
// collection stays human readable and can live in a git repository.
type FileBackend struct {
	dir string
}

// NewFileBackend returns a backend in 'dir'. The directory is created on the first write.
func NewFileBackend(dir string) *FileBackend { return &FileBackend{dir: dir} }

// Dir returns the backend's directory.
func (b *FileBackend) Dir() string { return b.dir }

func (b *FileBackend) path(key string) string { return filepath.Join(b.dir, key+".json") }

func (b *FileBackend) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(b.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cannot read %q: %w", key, err)
	}
	return string(data), true, nil
}

// Set writes into a temporary file first, then renames it, so that a failed
// write never leaves a truncated collection behind.
func (b *FileBackend) Set(key, value string) error {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return fmt.Errorf("cannot create storage folder %q: %w", b.dir, err)
	}
	tmp, err := os.CreateTemp(b.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("cannot write %q: %w", key, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write %q: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), b.path(key)); err != nil {
		return fmt.Errorf("cannot write %q: %w", key, err)
	}
	return nil
}
