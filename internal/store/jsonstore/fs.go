package jsonstore

import (
	"os"

	"github.com/idilsaglam/todo/internal/fault"
)

// FileSystem is the file access the store needs. Implementations report
// failures as fault.IO so the operation and path survive classification.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	EnsureDir(dir string) error
}

// OSFileSystem is the FileSystem backed by the local disk.
type OSFileSystem struct{}

func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fault.IO("read_todos", path, err)
	}
	return b, nil
}

func (OSFileSystem) WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fault.IO("write_todos", path, err)
	}
	return nil
}

func (OSFileSystem) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fault.IO("ensure_dir", dir, err)
	}
	return nil
}
