// Package config provides configuration loading and management for the
// recmeta tool.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete recmeta tool configuration. The
// validation core itself is configuration-free; these settings drive
// the file-handling collaborator commands.
type Config struct {
	Output     OutputConfig   `yaml:"output"`
	Validation ValidateConfig `yaml:"validate"`
	Watch      WatchConfig    `yaml:"watch"`
}

// OutputConfig configures where exported documents are written.
type OutputConfig struct {
	// Dir is the directory exported metadata files are written to.
	Dir string `yaml:"dir"`
}

// ValidateConfig configures validation behaviour.
type ValidateConfig struct {
	// Strict treats warning-severity issues as export blockers.
	Strict bool `yaml:"strict"`
}

// WatchConfig configures the watch command.
type WatchConfig struct {
	// DebounceDelay is how long to wait for more changes before
	// revalidating a file.
	DebounceDelay time.Duration `yaml:"debounce_delay"`
	// Extensions lists file extensions treated as metadata documents.
	Extensions []string `yaml:"extensions"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Dir: ".",
		},
		Validation: ValidateConfig{
			Strict: false,
		},
		Watch: WatchConfig{
			DebounceDelay: 500 * time.Millisecond,
			Extensions:    []string{".yml", ".yaml"},
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}
	if c.Watch.DebounceDelay <= 0 {
		return fmt.Errorf("watch.debounce_delay must be positive")
	}
	if len(c.Watch.Extensions) == 0 {
		return fmt.Errorf("watch.extensions must not be empty")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence
// for non-zero values).
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Output.Dir != "" {
		c.Output.Dir = other.Output.Dir
	}

	if other.Validation.Strict {
		c.Validation.Strict = true
	}

	if other.Watch.DebounceDelay != 0 {
		c.Watch.DebounceDelay = other.Watch.DebounceDelay
	}
	if len(other.Watch.Extensions) > 0 {
		c.Watch.Extensions = other.Watch.Extensions
	}
}
