// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-matcher/internal/matching"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags.
type Config struct {
	// Connections
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key

	// Matching
	Location  string `json:"location,omitempty" validate:"omitempty,min=1"`
	Mode      string `json:"mode,omitempty" validate:"omitempty,oneof=skills roles"`
	TopK      int    `json:"top_k,omitempty" validate:"omitempty,min=1"`
	TruncateN int    `json:"truncate_n,omitempty" validate:"omitempty,min=1"`

	// Provider probe
	ProbeURL        string `json:"probe_url,omitempty" validate:"omitempty,url"`
	ProbeTimeoutSec int    `json:"probe_timeout_sec,omitempty" validate:"omitempty,min=1"`

	// Server
	Port int `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

var validate = validator.New()

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
// Required fields are not checked here; those are enforced by CLI flag
// validation after merging.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			first := errs[0]
			return fmt.Errorf("config error: field %q failed %q validation", first.Field(), first.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Location == "" {
		result.Location = defaults.Location
	}
	if result.Mode == "" {
		result.Mode = defaults.Mode
	}
	if result.ProbeURL == "" {
		result.ProbeURL = defaults.ProbeURL
	}

	// Int fields: use default if zero
	if result.TopK == 0 {
		result.TopK = defaults.TopK
	}
	if result.TruncateN == 0 {
		result.TruncateN = defaults.TruncateN
	}
	if result.ProbeTimeoutSec == 0 {
		result.ProbeTimeoutSec = defaults.ProbeTimeoutSec
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// MatchConfig builds the pipeline configuration implied by Mode, applying
// TopK, TruncateN, and Location overrides when set.
func (c *Config) MatchConfig() (matching.Config, error) {
	var mc matching.Config
	switch c.Mode {
	case "", "skills":
		mc = matching.SkillsConfig()
	case "roles":
		mc = matching.RolesConfig()
	default:
		return matching.Config{}, fmt.Errorf("config error: unknown mode %q", c.Mode)
	}

	if c.TopK > 0 {
		mc.TopK = c.TopK
	}
	if c.TruncateN > 0 {
		mc.TruncateN = c.TruncateN
	}
	if c.Location != "" {
		mc.Location = c.Location
	}
	return mc, nil
}
