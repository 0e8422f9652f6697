package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Environment overrides
const (
	EnvDBPath   = "FOUNDRY_DB_PATH"
	EnvLogMode  = "FOUNDRY_LOG_MODE"
	EnvLogLevel = "FOUNDRY_LOG_LEVEL"
)

// Defaults applied when the file or a field is missing.
const (
	DefaultLogMode  = "dev"
	DefaultLogLevel = "warn"
)

// Config represents the flat foundry configuration
type Config struct {
	DBPath              string `json:"db_path,omitempty"`               // empty means ~/.foundry/foundry.db
	MaterialCatalogPath string `json:"material_catalog_path,omitempty"` // empty means the built-in catalog
	LogMode             string `json:"log_mode,omitempty"`              // "dev" or "prod"
	LogLevel            string `json:"log_level,omitempty"`
}

// DefaultDir returns ~/.foundry.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".foundry"), nil
}

// LoadConfig reads config.json from dir. A missing file is not an error and
// yields the defaults.
func LoadConfig(dir string) (*Config, error) {
	cfg := &Config{}

	path := filepath.Join(dir, "config.json")
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}

// Load reads the config from the default directory and applies environment
// overrides.
func Load() (*Config, error) {
	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	cfg, err := LoadConfig(dir)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.Getenv)
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables looked up with getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvDBPath); v != "" {
		c.DBPath = v
	}
	if v := getenv(EnvLogMode); v != "" {
		c.LogMode = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

func (c *Config) applyDefaults() {
	if c.LogMode == "" {
		c.LogMode = DefaultLogMode
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
