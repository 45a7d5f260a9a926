// Package config loads the mazesolve YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazepath/search"
)

// ErrInvalid indicates a configuration value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Config is the on-disk configuration of the CLI.
type Config struct {
	// Strategy is "bfs" or "dfs".
	Strategy string `yaml:"strategy"`
	Log      Log    `yaml:"log"`
	Output   Output `yaml:"output"`
}

// Log configures the slog handler.
type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is "text" or "json".
	Format string `yaml:"format"`
}

// Output controls what the solve command prints.
type Output struct {
	// ShowVisited overlays visited cells on the rendered maze.
	ShowVisited bool `yaml:"show_visited"`
	// Trace prints every visit event as it arrives.
	Trace bool `yaml:"trace"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Strategy: "bfs",
		Log:      Log{Level: "warn", Format: "text"},
		Output:   Output{ShowVisited: true},
	}
}

// Load reads path over the defaults. An empty path or a missing file
// yields Default(); unreadable files, bad YAML and invalid values are errors.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks every enumerated field.
func (c Config) Validate() error {
	if _, err := search.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: strategy %q", ErrInvalid, c.Strategy)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// SearchStrategy returns the parsed Strategy. Call Validate first.
func (c Config) SearchStrategy() search.Strategy {
	s, _ := search.ParseStrategy(c.Strategy)
	return s
}
