// Package testutil provides shared test helpers for laying out posts directories.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/listposts/internal/storage"
)

// Post renders a post file with a title line, the given header lines and a
// short body.
func Post(title string, header ...string) string {
	s := "# " + title + "\n"
	for _, h := range header {
		s += h + "\n"
	}
	return s + "---\nBody of " + title + ".\n"
}

// PostsDir creates a temporary posts directory holding files.
func PostsDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "posts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// TestPosts creates a temporary posts directory with a storage.FS over it.
func TestPosts(t *testing.T, files map[string]string) (string, *storage.FS) {
	t.Helper()
	dir := PostsDir(t, files)
	store, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, store
}
