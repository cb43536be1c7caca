// Package manifest collects post headers and emits them as a JSON array
// ordered by date, most recent first.
package manifest

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/starford/listposts/internal/apperr"
	"github.com/starford/listposts/internal/models"
)

// Manifest is the ordered list of posts for one run.
type Manifest []models.Post

// Builder accumulates posts up to a fixed capacity.
type Builder struct {
	limit int
	posts []models.Post
}

// NewBuilder returns a Builder that accepts at most maxPosts posts.
// A non-positive maxPosts disables the limit.
func NewBuilder(maxPosts int) *Builder {
	return &Builder{limit: maxPosts}
}

// Add appends a post. It fails with apperr.ErrCapacity once the limit is
// exceeded.
func (b *Builder) Add(p models.Post) error {
	if err := checkCapacity(len(b.posts)+1, b.limit); err != nil {
		return err
	}
	b.posts = append(b.posts, p)
	return nil
}

// Len reports how many posts have been added.
func (b *Builder) Len() int {
	return len(b.posts)
}

// Build returns the posts sorted by date descending. Posts with equal dates
// keep the order they were added in; posts without a date come last.
func (b *Builder) Build() Manifest {
	m := slices.Clone(b.posts)
	slices.SortStableFunc(m, compareNewestFirst)
	return m
}

func compareNewestFirst(a, b models.Post) int {
	switch {
	case a.HasDate && !b.HasDate:
		return -1
	case !a.HasDate && b.HasDate:
		return 1
	case !a.HasDate && !b.HasDate:
		return 0
	}
	return cmp.Compare(b.SortKey, a.SortKey)
}

func checkCapacity(n, limit int) error {
	if limit > 0 && n > limit {
		return fmt.Errorf("manifest: %w (%d > %d)", apperr.ErrCapacity, n, limit)
	}
	return nil
}
