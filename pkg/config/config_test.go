package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	defer os.Chdir(cwd)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	defaults := DefaultConfig()
	if cfg.Render != defaults.Render {
		t.Errorf("Render config %+v, want defaults %+v", cfg.Render, defaults.Render)
	}
	if cfg.Pi != defaults.Pi {
		t.Errorf("Pi config %+v, want defaults %+v", cfg.Pi, defaults.Pi)
	}
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for explicitly named missing config file")
	}
}

func TestLoad_PartialFileMergesWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raydemos.yaml")
	content := []byte("render:\n  width: 1920\n  height: 1080\npi:\n  samples: 500\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Render.Width != 1920 || cfg.Render.Height != 1080 {
		t.Errorf("Render size %dx%d, want 1920x1080", cfg.Render.Width, cfg.Render.Height)
	}
	if cfg.Pi.Samples != 500 {
		t.Errorf("Pi samples %d, want 500", cfg.Pi.Samples)
	}

	// Keys absent from the file keep their defaults
	defaults := DefaultConfig()
	if cfg.Render.Scene != defaults.Render.Scene {
		t.Errorf("Scene %q, want default %q", cfg.Render.Scene, defaults.Render.Scene)
	}
	if cfg.Pi.Seed != defaults.Pi.Seed {
		t.Errorf("Seed %d, want default %d", cfg.Pi.Seed, defaults.Pi.Seed)
	}
}
