package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// FileName is the settings file kept in the user's home directory
const FileName = ".walletlist-config.json"

// Config represents the application configuration.
// Rows are never written here; they live only for the session.
type Config struct {
	Logger    bool   `json:"logger"`
	ImportDir string `json:"import_dir,omitempty"`
}

// DefaultPath returns the settings path in the user's home directory
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, FileName)
}

// Load reads the config from the specified path
func Load(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}

	return cfg
}

// Save writes the config to the specified path
func Save(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
