// Package config handles configuration loading and shared data structures.
package config

import (
	_ "embed"
	"errors"
	"os"

	"github.com/woozymasta/astrotopo/internal/geo"

	"gopkg.in/yaml.v3"
)

// DefaultMaxSamples bounds a single path request when the config leaves it
// unset. The limit cannot be switched off: zero or negative values fall back
// to this default.
const DefaultMaxSamples = 10000

//go:embed default.yaml
var defaultConfig []byte

// Config represents the root configuration file structure.
type Config struct {
	Places     []geo.Place `yaml:"places" json:"places"`
	MaxSamples int         `yaml:"max_samples,omitempty" json:"max_samples,omitempty"`
}

// Load reads and parses the YAML configuration file from the specified path.
// An empty path yields the built-in configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return parse(data)
}

// Default returns the built-in configuration with the six standard places.
func Default() (*Config, error) {
	return parse(defaultConfig)
}

// Registry builds the immutable location registry from the configured places.
func (c *Config) Registry() (*geo.Registry, error) {
	if len(c.Places) == 0 {
		return nil, errors.New("no places configured")
	}

	return geo.NewRegistry(c.Places)
}

func parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.MaxSamples <= 0 {
		cfg.MaxSamples = DefaultMaxSamples
	}

	return &cfg, nil
}
