package internal

import (
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	App      ApplicationConfig `yaml:"app"`
	Posts    PostsConfig       `yaml:"posts"`
	Manifest ManifestConfig    `yaml:"manifest"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Posts.Validate(); err != nil {
		return err
	}
	return c.Manifest.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// PostsConfig describes the directory scanned for posts.
type PostsConfig struct {
	Dir string `yaml:"dir"`
	// MaxPosts caps the number of entries; more is a fatal error.
	MaxPosts int `yaml:"max_posts"`
}

// Validate validates the posts configuration.
func (c *PostsConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Dir, validation.Required),
		validation.Field(&c.MaxPosts, validation.Required, validation.Min(1)),
	)
}

// ManifestConfig controls where the manifest is written.
// An empty Output means standard output.
type ManifestConfig struct {
	Output string `yaml:"output"`
}

// Validate validates the manifest configuration.
func (c *ManifestConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Output, validation.By(notDirectory)),
	)
}

func notDirectory(value interface{}) error {
	s, _ := value.(string)
	if s != "" && (s[len(s)-1] == '/' || s == "." || s == "..") {
		return validation.NewError("validation_output_dir", "must be a file path, not a directory")
	}
	return nil
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelWarn,
		},
		Posts: PostsConfig{
			Dir:      "posts",
			MaxPosts: 100,
		},
	}
}
