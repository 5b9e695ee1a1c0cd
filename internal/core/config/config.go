// Package config handles configuration loading and validation for meditrack.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is where a locally running MediTrack backend listens.
const DefaultBaseURL = "http://localhost:8081/api"

// Config holds the application configuration.
type Config struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	ToastSeconds   int    `yaml:"toast_duration_seconds"`
	RefreshSeconds int    `yaml:"refresh_interval_seconds"`
	DataDir        string `yaml:"-"` // set by caller, not from config file
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:        DefaultBaseURL,
		TimeoutSeconds: 30,
		ToastSeconds:   5,
		RefreshSeconds: 30,
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided
// dataDir. The MEDITRACK_API_URL environment variable overrides base_url.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	if env := os.Getenv("MEDITRACK_API_URL"); env != "" {
		cfg.BaseURL = env
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = defaults.BaseURL
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if c.ToastSeconds == 0 {
		c.ToastSeconds = defaults.ToastSeconds
	}
	if c.RefreshSeconds == 0 {
		c.RefreshSeconds = defaults.RefreshSeconds
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url %q is not a valid URL", c.BaseURL)
	}

	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if c.TimeoutSeconds < 1 {
		return fmt.Errorf("timeout_seconds must be at least 1")
	}

	return nil
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ToastDuration returns how long a toast stays visible by default.
func (c *Config) ToastDuration() time.Duration {
	return time.Duration(c.ToastSeconds) * time.Second
}

// RefreshInterval returns how often the TUI dashboard refreshes.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshSeconds) * time.Second
}

// AuthFile returns the path to the persisted auth JSON file.
func (c *Config) AuthFile() string {
	return filepath.Join(c.DataDir, "auth.json")
}
