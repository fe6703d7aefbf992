// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	OutDir      string `json:"out_dir,omitempty"`      // Directory for exported artifacts
	Material    string `json:"material,omitempty"`     // Default material specification
	BracketType string `json:"bracket_type,omitempty"` // Default bracket type: "L" or "flat"
	Check       bool   `json:"check,omitempty"`        // Run compliance validation after generation
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed output
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.BracketType != "" &&
		!strings.EqualFold(c.BracketType, "L") && !strings.EqualFold(c.BracketType, "flat") {
		return fmt.Errorf("config error: 'bracket_type' must be \"L\" or \"flat\", got %q", c.BracketType)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.Material == "" {
		result.Material = defaults.Material
	}
	if result.BracketType == "" {
		result.BracketType = defaults.BracketType
	}
	if !result.Check {
		result.Check = defaults.Check
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
