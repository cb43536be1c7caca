package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/starford/listposts/internal"
	pkgconfig "github.com/starford/listposts/pkg/config"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
)

func run(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	load := pkgconfig.LoadOptional[internal.Config]
	if cmd.IsSet("config") {
		load = pkgconfig.Load[internal.Config]
	}
	if err := load(configPath, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	if cmd.IsSet("posts-dir") {
		cfg.Posts.Dir = cmd.String("posts-dir")
	}
	if cmd.IsSet("max-posts") {
		cfg.Posts.MaxPosts = int(cmd.Int("max-posts"))
	}
	if cmd.IsSet("output") {
		cfg.Manifest.Output = cmd.String("output")
	}
	if err := pkgconfig.Validate(cfg); err != nil {
		return err
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
	}

	if err := internal.Run(ctx, opts...); err != nil {
		return fmt.Errorf("list posts: %w", err)
	}

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "list-posts",
		Usage:  "Print a JSON manifest of post headers, newest first",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file (optional)",
				DefaultText: "list-posts.yaml",
				Value:       "list-posts.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "posts-dir",
				Aliases: []string{"d"},
				Usage:   "Directory to scan for posts",
				Sources: cli.EnvVars("POSTS_DIR"),
			},
			&cli.IntFlag{
				Name:    "max-posts",
				Usage:   "Fail if the directory holds more posts than this",
				Sources: cli.EnvVars("MAX_POSTS"),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write the manifest to this file instead of stdout",
				Sources: cli.EnvVars("MANIFEST_OUTPUT"),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
