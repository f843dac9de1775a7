package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrInvalidFilename is returned for names that would escape the sink directory
var ErrInvalidFilename = errors.New("invalid filename")

// Sink stores exported files
type Sink interface {
	Write(ctx context.Context, filename string, data []byte) error
}

// FileSink writes exports into a directory
type FileSink struct {
	dir string
}

// NewFileSink creates the directory if needed
func NewFileSink(dir string) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &FileSink{dir: dir}, nil
}

// Dir returns the target directory
func (s *FileSink) Dir() string { return s.dir }

func (s *FileSink) Write(ctx context.Context, filename string, data []byte) error {
	if filename == "" || filename != filepath.Base(filename) || filename == "." || filename == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(s.dir, filename)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming %s: %w", filename, err)
	}
	return nil
}

// MemorySink keeps exports in memory
type MemorySink struct {
	mu    sync.Mutex
	files map[string][]byte
}

// NewMemorySink creates an empty in-memory sink
func NewMemorySink() *MemorySink {
	return &MemorySink{files: make(map[string][]byte)}
}

func (s *MemorySink) Write(ctx context.Context, filename string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[filename] = append([]byte(nil), data...)
	return nil
}

// File returns a stored export
func (s *MemorySink) File(name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.files[name]
	return b, ok
}

// Len returns how many files were written
func (s *MemorySink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.files)
}
