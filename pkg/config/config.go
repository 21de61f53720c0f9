// Package config handles loading and saving sb configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config:  ~/.config/sb/config.yaml
//   - State:   ~/.local/state/sb/ (session view-state files)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// UIConfig holds UI preference settings.
type UIConfig struct {
	DefaultGroups []string `yaml:"default_groups,omitempty"` // column groups active on first run
	Currency      string   `yaml:"currency,omitempty"`       // currency symbol for money columns
	Headless      bool     `yaml:"headless,omitempty"`       // hide the group pill row
}

// DataConfig controls where sb looks for metrics snapshots.
type DataConfig struct {
	Path         string        `yaml:"path,omitempty"`          // snapshot file or directory
	PollInterval time.Duration `yaml:"poll_interval,omitempty"` // watcher fallback polling
}

// Config is the top-level configuration for sb.
type Config struct {
	UI   UIConfig   `yaml:"ui,omitempty"`
	Data DataConfig `yaml:"data,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			Currency: "€",
		},
		Data: DataConfig{
			PollInterval: 2 * time.Second,
		},
	}
}

// ConfigDir returns the XDG config directory for sb.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "sb")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "sb")
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file from the XDG config directory.
// Returns DefaultConfig if the file doesn't exist.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path.
// Returns DefaultConfig if the file doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Data.Path = expandHome(cfg.Data.Path)
	if cfg.Data.PollInterval <= 0 {
		cfg.Data.PollInterval = 2 * time.Second
	}

	return cfg, nil
}

// Save writes the config to the XDG config directory.
func Save(cfg Config) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
