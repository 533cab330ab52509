package render

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileSurface writes every painted image to <dir>/<name>.<ext>. Files are
// kept after Detach so rendered output survives teardown.
type FileSurface struct {
	dir  string
	name string

	mu      sync.Mutex
	owner   string
	written string
}

// NewFileSurface creates a surface writing into dir
func NewFileSurface(dir, name string) *FileSurface {
	return &FileSurface{dir: dir, name: name}
}

func (s *FileSurface) ID() string { return filepath.Join(s.dir, s.name) }

func (s *FileSurface) Attach(owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.owner != "" {
		return ErrSurfaceBusy
	}
	s.owner = owner
	return nil
}

func (s *FileSurface) Detach(owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.owner != owner {
		return ErrNotOwner
	}
	s.owner = ""
	return nil
}

// Paint writes the image through a temp file and rename so readers never
// see a partial chart
func (s *FileSurface) Paint(owner, contentType string, image []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.owner == "" || s.owner != owner {
		return ErrNotOwner
	}

	path := filepath.Join(s.dir, s.name+ExtensionFor(contentType))
	tmp, err := os.CreateTemp(s.dir, "."+s.name+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	if _, err := tmp.Write(image); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to move chart into %s: %w", path, err)
	}
	s.written = path
	return nil
}

// Path returns the last file written, or ""
func (s *FileSurface) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.written
}
