// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/starford/listposts/internal/manifest"
	"github.com/starford/listposts/internal/storage"
)

// Run builds the posts manifest with the given options and writes it out.
// Nothing is written unless every post parses.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{
		stdout: os.Stdout,
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Structured JSON logger on stderr; stdout carries the manifest.
	logger := app.logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: cfg.App.LogLevel,
		}))
		slog.SetDefault(logger)
	}

	logger.Debug("Configuration loaded",
		slog.String("posts_dir", cfg.Posts.Dir),
		slog.Int("max_posts", cfg.Posts.MaxPosts),
		slog.String("output", outputName(cfg.Manifest.Output)),
		slog.String("log_level", cfg.App.LogLevel.String()))

	store, err := storage.NewFS(cfg.Posts.Dir)
	if err != nil {
		return err
	}

	m, err := manifest.Collect(ctx, store, cfg.Posts.MaxPosts, logger)
	if err != nil {
		return err
	}
	data := manifest.Marshal(m)

	if cfg.Manifest.Output != "" {
		if err := storage.WriteFileAtomic(cfg.Manifest.Output, data); err != nil {
			return fmt.Errorf("write manifest: %w", err)
		}
	} else if _, err := app.stdout.Write(data); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	logger.Info("Manifest written",
		slog.Int("posts", len(m)),
		slog.String("posts_dir", store.Root()),
		slog.String("output", outputName(cfg.Manifest.Output)))
	return nil
}

func outputName(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}
