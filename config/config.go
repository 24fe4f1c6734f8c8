// Package config loads the optional application configuration file.
// It covers paths and presentation options, not game rules; rule
// tuning lives in the Lua file handled by the loader package.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration. Zero values fall back to
// the defaults from Default.
type Config struct {
	// SavePath is where the in-game save action writes.
	SavePath string `yaml:"save_path"`
	// ScoresPath is the SQLite database recording finished games.
	ScoresPath string `yaml:"scores_path"`
	// TuningPath optionally points at a Lua rule-tuning file.
	TuningPath string `yaml:"tuning_path"`
	// Plain selects the line-oriented interface over the full-screen one.
	Plain bool `yaml:"plain"`
	// Seed fixes the RNG seed; 0 means seed from the clock.
	Seed int64 `yaml:"seed"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	dir := filepath.Join(home, ".taipan")
	return &Config{
		SavePath:   filepath.Join(dir, "save.json"),
		ScoresPath: filepath.Join(dir, "scores.db"),
	}
}

// Load reads a YAML config file and overlays it on the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
