// Package config loads the user configuration: key bindings and theme
// colors. A missing file or missing fields fall back to defaults.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	KeyMappings KeyMappings `yaml:"key_mappings"`
	Theme       Theme       `yaml:"theme"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		KeyMappings: DefaultKeyMappings(),
		Theme:       DefaultTheme(),
	}
}

// Load reads config from the user's config directory. A missing or
// unreadable file yields the default config; a present but malformed file
// is an error so typos do not silently revert keybindings.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes the config to the user's config directory.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// applyDefaults fills in any missing values.
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.Theme.applyDefaults()
}

func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tablero", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "tablero", "config.yaml"), nil
}
