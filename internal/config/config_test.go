package config

import (
	"os"
	"path/filepath"
	"testing"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	for _, k := range []string{"SPENT_STORAGE_BACKEND", "SPENT_DATA_DIR", "SPENT_CURRENCY", "SPENT_THEME", "SPENT_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	return dir
}

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Backend != "sqlite" || cfg.Storage.Slot != "expenses" || cfg.Display.Currency != "$" {
		t.Fatalf("defaults = %+v", cfg)
	}
	if got, want := cfg.ResolvedDataDir(), filepath.Join(dir, "data", "spent"); got != want {
		t.Fatalf("ResolvedDataDir = %q, want %q", got, want)
	}
	if Exists() {
		t.Fatal("Exists() = true with no file")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	isolate(t)

	cfg := DefaultConfig()
	cfg.Storage.Backend = "file"
	cfg.Display.Currency = "€"
	cfg.Appearance.Theme = "tokyo-night"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Storage.Backend != "file" || got.Display.Currency != "€" || got.Appearance.Theme != "tokyo-night" {
		t.Fatalf("loaded = %+v", got)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("SPENT_STORAGE_BACKEND", "memory")
	t.Setenv("SPENT_CURRENCY", "£")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Storage.Backend != "memory" || cfg.Display.Currency != "£" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoad_BadTOML(t *testing.T) {
	isolate(t)
	if err := os.MkdirAll(ConfigDir(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(), []byte("[storage\nbackend="), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Fatal("Load accepted malformed TOML")
	}
}
