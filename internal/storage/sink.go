// Package storage supplies the durable write capability the host environment
// owns: resolve a destination, write named bytes, report the location.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Error reports a failed or unresolvable write destination.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("storage: %v", e.Err)
	}
	return fmt.Sprintf("storage: %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Sink writes named content to durable storage and returns its location.
type Sink interface {
	Write(name, mimeType string, data []byte) (string, error)
}

// DirSink writes files into a fixed directory.
type DirSink struct {
	dir string
}

// NewDirSink resolves the destination directory up front: an empty
// destination or an unwritable path fails here with *Error rather than on
// the first write.
func NewDirSink(dir string) (*DirSink, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, &Error{Err: fmt.Errorf("no destination directory configured")}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &Error{Path: dir, Err: err}
	}
	return &DirSink{dir: dir}, nil
}

func (s *DirSink) Write(name, mimeType string, data []byte) (string, error) {
	_ = mimeType // a filesystem location carries no content type

	path := filepath.Join(s.dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", &Error{Path: path, Err: err}
	}
	return path, nil
}
