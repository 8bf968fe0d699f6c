package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	Service ServiceConfig `json:"service"`
	Display DisplayConfig `json:"display"`
}

// ServiceConfig holds the workout service connection settings
type ServiceConfig struct {
	BaseURL string `json:"base_url"`
	Token   string `json:"token"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	WeightUnit string `json:"weight_unit"` // "kg" or "lb"
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// TokenEnvVar overrides the configured API token when set
const TokenEnvVar = "GYMBUDDY_API_TOKEN"

// defaultToken is the placeholder token used when nothing is configured,
// matching the service's demo deployment.
const defaultToken = "demo-token"

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Service: ServiceConfig{
			BaseURL: "http://localhost:8000",
			Token:   defaultToken,
		},
		Display: DisplayConfig{
			WeightUnit: "kg",
		},
	}
}

// Load reads the configuration from ~/.gymbuddy/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Service.BaseURL == "" {
		cfg.Service.BaseURL = defaults.Service.BaseURL
	}
	if cfg.Service.Token == "" {
		cfg.Service.Token = defaults.Service.Token
	}
	if cfg.Display.WeightUnit == "" {
		cfg.Display.WeightUnit = defaults.Display.WeightUnit
	}

	// Environment wins over the file
	if token := os.Getenv(TokenEnvVar); token != "" {
		cfg.Service.Token = token
	}

	return &cfg, nil
}

// Save writes the configuration to ~/.gymbuddy/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates a default config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	return Save(&example)
}

// Validate checks if the config has required fields
func (c *Config) Validate() error {
	if c.Service.BaseURL == "" {
		return errors.New("service.base_url is required")
	}
	if c.Display.WeightUnit != "" && c.Display.WeightUnit != "kg" && c.Display.WeightUnit != "lb" {
		return fmt.Errorf("display.weight_unit must be \"kg\" or \"lb\", got %q", c.Display.WeightUnit)
	}
	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".gymbuddy", "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".gymbuddy"), nil
}
