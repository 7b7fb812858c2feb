// Package config loads optional defaults from ~/.config/tend/config.yaml.
// Everything here is best effort: a missing or malformed config file means
// built-in defaults, never a startup failure.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user defaults that flags and environment override.
type Config struct {
	// File is the default task file path.
	File string `yaml:"file,omitempty"`
	// Theme is the default theme name when the sidecar has none.
	Theme string `yaml:"theme,omitempty"`
}

// Path is the config file location, honoring XDG_CONFIG_HOME.
func Path() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tend", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "tend", "config.yaml")
}

// Load reads the config at path. Missing or invalid files yield a zero
// config.
func Load(path string) Config {
	var cfg Config
	if path == "" {
		return cfg
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}
	}
	return cfg
}
