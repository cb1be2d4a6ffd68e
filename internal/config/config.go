package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the flat rota configuration
type Config struct {
	Version            string `json:"version"`
	DefaultOperationID string `json:"default_operation_id,omitempty"` // OP-XXX used for new segments
	ShowLabels         bool   `json:"show_labels,omitempty"`          // overlay operation names on bars
}

// LoadConfig reads .rota/config.json from the specified directory.
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".rota", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	rotaDir := filepath.Join(dir, ".rota")
	if err := os.MkdirAll(rotaDir, 0755); err != nil {
		return fmt.Errorf("failed to create .rota dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(rotaDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// LoadConfigOrDefault reads the config from the user's home directory,
// falling back to zero values when none exists yet.
func LoadConfigOrDefault() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		return &Config{}
	}
	cfg, err := LoadConfig(home)
	if err != nil {
		return &Config{}
	}
	return cfg
}
