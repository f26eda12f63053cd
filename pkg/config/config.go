// Package config loads the checker's YAML run configuration.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the complete run configuration.
type Config struct {
	Checks    ChecksConfig    `yaml:"checks"`
	Discovery DiscoveryConfig `yaml:"discovery"`
}

// ChecksConfig tunes the rule engine.
type ChecksConfig struct {
	// LineLength enables the line-length rule. Off by default.
	LineLength bool `yaml:"line_length"`
	// MaxLineLength is the limit enforced when LineLength is on.
	MaxLineLength int `yaml:"max_line_length"`
	// Year overrides the calendar year expected in copyright banners.
	// Zero means the current year.
	Year int `yaml:"year,omitempty"`
}

// DiscoveryConfig tunes file discovery.
type DiscoveryConfig struct {
	// Workers is the number of files checked concurrently.
	Workers int `yaml:"workers"`
	// MaxFileSize is the largest file, in bytes, that gets checked.
	MaxFileSize int64 `yaml:"max_file_size"`
	// Include holds glob patterns candidate files must match.
	Include []string `yaml:"include,omitempty"`
	// ExcludeDirs holds directory basenames to skip.
	ExcludeDirs []string `yaml:"exclude_dirs,omitempty"`
	// CppPaths restricts C++ candidates to paths containing one of
	// these substrings.
	CppPaths []string `yaml:"cpp_paths,omitempty"`
	// SwiftPaths restricts Swift candidates the same way.
	SwiftPaths []string `yaml:"swift_paths,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// Load reads configuration from a YAML file. Unknown keys are
// rejected; defaults are applied to unset fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.setDefaults()
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Checks.MaxLineLength == 0 {
		c.Checks.MaxLineLength = 100
	}
	if c.Discovery.Workers == 0 {
		c.Discovery.Workers = 1
	}
	if c.Discovery.MaxFileSize == 0 {
		c.Discovery.MaxFileSize = 10 * 1024 * 1024
	}
}

// Validate rejects configurations the checker cannot honor.
func (c *Config) Validate() error {
	if c.Checks.LineLength && c.Checks.MaxLineLength < 1 {
		return fmt.Errorf("checks.max_line_length must be at least 1, got %d", c.Checks.MaxLineLength)
	}
	if c.Checks.Year < 0 {
		return fmt.Errorf("checks.year must not be negative, got %d", c.Checks.Year)
	}
	if c.Discovery.Workers < 1 {
		return fmt.Errorf("discovery.workers must be at least 1, got %d", c.Discovery.Workers)
	}
	if c.Discovery.MaxFileSize < 1 {
		return fmt.Errorf("discovery.max_file_size must be at least 1, got %d", c.Discovery.MaxFileSize)
	}
	return nil
}
