// Package config defines the goxmldom configuration file format and its
// discovery rules.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for goxmldom.
// The zero value is a valid configuration.
type Config struct {
	// StrictRoot requires documents to have exactly one top-level tag.
	StrictRoot bool `yaml:"strict_root"`

	// Jobs is the maximum number of concurrent workers for multi-file
	// commands. Zero means auto (one per CPU).
	Jobs int `yaml:"jobs"`

	// Ignore lists glob patterns for files and directories to skip.
	Ignore []string `yaml:"ignore"`

	// Format holds serialization settings.
	Format FormatConfig `yaml:"format"`
}

// FormatConfig controls XML output rendering.
type FormatConfig struct {
	// Indent is the number of spaces per nesting level. Zero renders
	// flat output with one construct per line.
	Indent int `yaml:"indent"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Format: FormatConfig{Indent: 2},
	}
}

// IndentString returns the indent unit as a string of spaces.
func (f FormatConfig) IndentString() string {
	if f.Indent <= 0 {
		return ""
	}
	s := make([]byte, f.Indent)
	for i := range s {
		s[i] = ' '
	}
	return string(s)
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must be >= 0, got %d", c.Jobs)
	}
	if c.Format.Indent < 0 || c.Format.Indent > 16 {
		return fmt.Errorf("format.indent must be in [0,16], got %d", c.Format.Indent)
	}
	return nil
}

// FromYAML parses a configuration from YAML bytes and validates it.
func FromYAML(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ToYAML serializes the configuration.
func (c *Config) ToYAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return out, nil
}
