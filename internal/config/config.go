// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// DefaultTimeout is used when no timeout is configured.
const DefaultTimeout = "30s"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values come from the environment or CLI flags.
type Config struct {
	APIURL        string `json:"api_url,omitempty"`        // Job-portal API base URL
	Token         string `json:"token,omitempty"`          // Bearer token for credentialed requests
	SessionCookie string `json:"session_cookie,omitempty"` // Session cookie value for credentialed requests
	Timeout       string `json:"timeout,omitempty"`        // HTTP timeout, Go duration syntax
	Verbose       bool   `json:"verbose,omitempty"`        // Print detailed debug information
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
// A missing API URL is reported here since every command but resolve needs one.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("config error: 'api_url' is required")
	}
	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("config error: 'api_url' must be an absolute http(s) URL, got %q", c.APIURL)
	}

	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return fmt.Errorf("config error: invalid 'timeout': %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("config error: 'timeout' must be positive")
		}
	}

	return nil
}

// TimeoutDuration returns the configured timeout, falling back to DefaultTimeout.
func (c *Config) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultTimeout)
	}
	return d
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to layer CLI flags over the config file over the environment.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIURL == "" {
		result.APIURL = defaults.APIURL
	}
	if result.Token == "" {
		result.Token = defaults.Token
	}
	if result.SessionCookie == "" {
		result.SessionCookie = defaults.SessionCookie
	}
	if result.Timeout == "" {
		result.Timeout = defaults.Timeout
	}

	// Bool fields: cannot distinguish unset from false, so either source enables
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}
