package generator

import (
	"os"
	"path/filepath"
)

// Sink realizes directories and files on a filesystem.
type Sink interface {
	// CreateDirectory creates path and any missing parents. It succeeds if the
	// directory already exists.
	CreateDirectory(path string) error

	// WriteFile creates or truncates path, creating its parent if needed.
	WriteFile(path, content string) error
}

// OSSink writes to the local filesystem.
type OSSink struct{}

// CreateDirectory implements Sink.
func (OSSink) CreateDirectory(path string) error {
	return os.MkdirAll(path, 0o755)
}

// WriteFile implements Sink.
func (OSSink) WriteFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
