// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultStorePath is the local SQLite file used when no database URL is configured
	DefaultStorePath = "resume_builder.db"
	// DefaultPort is the HTTP port for the serve command
	DefaultPort = 8080
	// DefaultMissingLimit is how many missing keywords the report line lists before truncating
	DefaultMissingLimit = 12
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	JD       string `json:"jd,omitempty"`       // Path to job description text file
	JDURL    string `json:"jd_url,omitempty"`   // URL to fetch the job description from
	Document string `json:"document,omitempty"` // Path to resume document JSON

	// Storage
	StorePath   string `json:"store_path,omitempty"`   // SQLite file for saved documents
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL, overrides store_path

	// Server
	Port int `json:"port,omitempty"`

	// Report
	MissingLimit int `json:"missing_limit,omitempty"` // Missing keywords listed before "…"

	// Behavior
	UseBrowser bool `json:"use_browser,omitempty"` // Use headless browser for SPA job boards
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed report output
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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
// Required inputs are checked by each command after merging with flags.
func (c *Config) Validate() error {
	if c.JD != "" && c.JDURL != "" {
		return fmt.Errorf("config error: 'jd' and 'jd_url' are mutually exclusive")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535, got %d", c.Port)
	}
	if c.MissingLimit < 0 {
		return fmt.Errorf("config error: 'missing_limit' must be non-negative")
	}

	if c.JD != "" {
		if _, err := os.Stat(c.JD); os.IsNotExist(err) {
			return fmt.Errorf("config error: job description file not found: %s", c.JD)
		}
	}
	if c.Document != "" {
		if _, err := os.Stat(c.Document); os.IsNotExist(err) {
			return fmt.Errorf("config error: document file not found: %s", c.Document)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults,
// falling back to the package defaults for storage, port, and missing limit.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.JD == "" {
		result.JD = defaults.JD
	}
	if result.JDURL == "" {
		result.JDURL = defaults.JDURL
	}
	if result.Document == "" {
		result.Document = defaults.Document
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.StorePath == "" {
		result.StorePath = firstNonEmpty(defaults.StorePath, DefaultStorePath)
	}

	if result.Port == 0 {
		result.Port = defaults.Port
		if result.Port == 0 {
			result.Port = DefaultPort
		}
	}
	if result.MissingLimit == 0 {
		result.MissingLimit = defaults.MissingLimit
		if result.MissingLimit == 0 {
			result.MissingLimit = DefaultMissingLimit
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
