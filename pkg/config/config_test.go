package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefaultConfig verifies the built-in defaults.
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.UI.Currency != "€" {
		t.Errorf("default currency = %q, want €", cfg.UI.Currency)
	}
	if cfg.Data.PollInterval != 2*time.Second {
		t.Errorf("default poll interval = %v, want 2s", cfg.Data.PollInterval)
	}
}

// TestLoadFromMissingFile verifies a missing file loads defaults without
// error.
func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.UI.Currency != "€" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

// TestSaveLoadRoundTrip verifies config survives a save/load cycle.
func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.UI.Currency = "$"
	cfg.UI.DefaultGroups = []string{"performance", "advertising"}
	cfg.UI.Headless = true
	cfg.Data.Path = "/var/lib/sb"
	cfg.Data.PollInterval = 5 * time.Second

	if err := SaveTo(cfg, path); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.UI.Currency != "$" || !loaded.UI.Headless {
		t.Errorf("UI config lost in round trip: %+v", loaded.UI)
	}
	if len(loaded.UI.DefaultGroups) != 2 {
		t.Errorf("default groups lost: %v", loaded.UI.DefaultGroups)
	}
	if loaded.Data.Path != "/var/lib/sb" || loaded.Data.PollInterval != 5*time.Second {
		t.Errorf("data config lost in round trip: %+v", loaded.Data)
	}
}

// TestLoadFromInvalidYAML verifies a parse error surfaces.
func TestLoadFromInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ui: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected parse error")
	}
}

// TestLoadNormalizesPollInterval verifies a non-positive interval falls
// back to the default.
func TestLoadNormalizesPollInterval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("data:\n  poll_interval: -3s\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Data.PollInterval != 2*time.Second {
		t.Errorf("poll interval = %v, want 2s fallback", cfg.Data.PollInterval)
	}
}

// TestExpandHome verifies tilde expansion on the data path.
func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandHome("~/metrics"); got != filepath.Join(home, "metrics") {
		t.Errorf("expandHome = %q", got)
	}
	if got := expandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute path should pass through, got %q", got)
	}
}
