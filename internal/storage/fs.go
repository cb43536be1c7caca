// Package storage provides access to the posts directory.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/starford/listposts/internal/apperr"
)

// FS reads post files from a single directory.
type FS struct {
	root string // absolute path to posts directory
}

// NewFS creates a new FS rooted at the given directory.
// The directory must already exist.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w: %w", apperr.ErrDirectory, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: %s: %w: %w", root, apperr.ErrDirectory, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage: %s: %w: not a directory", root, apperr.ErrDirectory)
	}
	return &FS{root: abs}, nil
}

// Root returns the absolute path of the posts directory.
func (f *FS) Root() string {
	return f.root
}

// safePath resolves name against the root and rejects any result that
// escapes it.
func (f *FS) safePath(name string) (string, error) {
	cleaned := filepath.Clean(name)
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("storage: absolute paths not allowed: %s", name)
	}
	abs := filepath.Join(f.root, cleaned)
	if !strings.HasPrefix(abs, f.root+string(os.PathSeparator)) {
		return "", fmt.Errorf("storage: path escapes posts root: %s", name)
	}
	return abs, nil
}

// List returns the names of all entries in the root, skipping names that
// start with a dot. Names are in directory order as reported by os.ReadDir.
func (f *FS) List() ([]string, error) {
	entries, err := os.ReadDir(f.root)
	if err != nil {
		return nil, fmt.Errorf("storage: list: %w: %w", apperr.ErrDirectory, err)
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		out = append(out, e.Name())
	}
	return out, nil
}

// Open opens the named entry for reading. The caller must close it.
func (f *FS) Open(name string) (io.ReadCloser, error) {
	abs, err := f.safePath(name)
	if err != nil {
		return nil, &apperr.PostError{Kind: apperr.ErrFileOpen, File: name, Err: err}
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, &apperr.PostError{Kind: apperr.ErrFileOpen, File: name, Err: err}
	}
	return file, nil
}
