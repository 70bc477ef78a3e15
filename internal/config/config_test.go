package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad_PartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".chef.toml")
	if err := os.WriteFile(path, []byte("no_color = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.NoColor {
		t.Error("NoColor = false, want true")
	}
	if cfg.MaxCallDepth != DefaultMaxCallDepth {
		t.Errorf("MaxCallDepth = %d, want default %d", cfg.MaxCallDepth, DefaultMaxCallDepth)
	}
	if cfg.DefaultRecipe != DefaultRecipePath {
		t.Errorf("DefaultRecipe = %q, want default %q", cfg.DefaultRecipe, DefaultRecipePath)
	}
}

func TestLoad_FullOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".chef.toml")
	content := "max_call_depth = 8\ndefault_recipe = \"dinner.chef\"\nno_color = true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxCallDepth != 8 {
		t.Errorf("MaxCallDepth = %d, want 8", cfg.MaxCallDepth)
	}
	if cfg.DefaultRecipe != "dinner.chef" {
		t.Errorf("DefaultRecipe = %q, want dinner.chef", cfg.DefaultRecipe)
	}
}
