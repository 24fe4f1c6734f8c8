package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_FillsPaths(t *testing.T) {
	cfg := Default()
	if cfg.SavePath == "" || cfg.ScoresPath == "" {
		t.Error("default paths should not be empty")
	}
	if cfg.Plain {
		t.Error("plain mode should default to off")
	}
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
save_path: /tmp/game.json
plain: true
seed: 42
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SavePath != "/tmp/game.json" {
		t.Errorf("save path %q, want /tmp/game.json", cfg.SavePath)
	}
	if !cfg.Plain {
		t.Error("plain flag not read")
	}
	if cfg.Seed != 42 {
		t.Errorf("seed %d, want 42", cfg.Seed)
	}
	if cfg.ScoresPath == "" {
		t.Error("unset keys should keep their defaults")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n  - ["), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}
