package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level dinero.yaml configuration.
type Config struct {
	Stores StoresConfig `yaml:"stores"`
	Log    LogConfig    `yaml:"log"`
}

// StoresConfig locates the JSON stores and output directories.
type StoresConfig struct {
	Transactions string `yaml:"transactions"`
	Transfers    string `yaml:"transfers"`
	Receipts     string `yaml:"receipts"`
	Balances     string `yaml:"balances"`
}

// LogConfig controls the operations log.
type LogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Load reads a dinero.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Stores: StoresConfig{
			Transactions: "transactions.json",
			Transfers:    "transfers.json",
			Receipts:     "receipts",
			Balances:     "balances",
		},
		Log: LogConfig{
			Enabled: true,
			Path:    "logs/operations.csv",
		},
	}
}
