// Package config loads and saves the spent TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all spent configuration.
type Config struct {
	Storage    StorageConfig    `toml:"storage"`
	Display    DisplayConfig    `toml:"display"`
	Appearance AppearanceConfig `toml:"appearance"`
	Log        LogConfig        `toml:"log"`
}

// StorageConfig selects where the expense list is persisted.
type StorageConfig struct {
	Backend string `toml:"backend"`        // sqlite, file or memory
	DataDir string `toml:"path,omitempty"` // defaults to DataDir()
	Slot    string `toml:"slot"`
}

// DisplayConfig holds formatting preferences.
type DisplayConfig struct {
	Currency string `toml:"currency"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"` // defaults to <data dir>/spent.log
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Backend: "sqlite",
			Slot:    "expenses",
		},
		Display: DisplayConfig{
			Currency: "$",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "spent")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "spent")
}

// DataDir returns the XDG-compliant default data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "spent")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "spent")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment overrides are applied last, after an optional .env file in the
// working directory has been loaded.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	_ = godotenv.Load() // .env is optional
	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv overrides config values from SPENT_* environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("SPENT_STORAGE_BACKEND"); v != "" {
		cfg.Storage.Backend = v
	}
	if v := os.Getenv("SPENT_DATA_DIR"); v != "" {
		cfg.Storage.DataDir = v
	}
	if v := os.Getenv("SPENT_CURRENCY"); v != "" {
		cfg.Display.Currency = v
	}
	if v := os.Getenv("SPENT_THEME"); v != "" {
		cfg.Appearance.Theme = v
	}
	if v := os.Getenv("SPENT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// ResolvedDataDir returns the configured data directory or the default.
func (c Config) ResolvedDataDir() string {
	if c.Storage.DataDir != "" {
		return c.Storage.DataDir
	}
	return DataDir()
}

// ResolvedLogFile returns the configured log file or <data dir>/spent.log.
func (c Config) ResolvedLogFile() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(c.ResolvedDataDir(), "spent.log")
}
