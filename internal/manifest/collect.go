package manifest

import (
	"context"
	"io"
	"log/slog"

	"github.com/starford/listposts/internal/models"
	"github.com/starford/listposts/internal/parser"
)

// Source lists and opens post files.
type Source interface {
	List() ([]string, error)
	Open(name string) (io.ReadCloser, error)
}

// Collect parses the header of every post in src and returns the sorted
// manifest. Any error aborts the whole collection.
func Collect(ctx context.Context, src Source, maxPosts int, logger *slog.Logger) (Manifest, error) {
	names, err := src.List()
	if err != nil {
		return nil, err
	}
	if err := checkCapacity(len(names), maxPosts); err != nil {
		return nil, err
	}

	b := NewBuilder(maxPosts)
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		post, err := readPost(src, name)
		if err != nil {
			return nil, err
		}
		logger.Debug("manifest: parsed",
			slog.String("path", name),
			slog.Int("fields", len(post.Fields)),
			slog.Bool("has_date", post.HasDate))
		if err := b.Add(*post); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

func readPost(src Source, name string) (*models.Post, error) {
	rc, err := src.Open(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return parser.Parse(name, rc)
}
