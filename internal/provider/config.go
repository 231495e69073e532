package provider

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Env maps environment variable names for provider configuration.
type Env struct {
	APIKey             string
	BaseURL            string
	DefaultModel       string
	DefaultTemperature string
	DefaultMaxTokens   string
	Timeout            string
}

// Config contains completion provider configuration. The API key is only
// ever sourced from the environment, never from config files.
type Config struct {
	BaseURL            string  `toml:"base_url"`
	DefaultModel       string  `toml:"default_model"`
	DefaultTemperature float64 `toml:"default_temperature"`
	DefaultMaxTokens   int     `toml:"default_max_tokens"`
	Timeout            string  `toml:"timeout"`

	apiKey string
}

// Configured reports whether a live credential is present.
func (c *Config) Configured() bool {
	return strings.TrimSpace(c.apiKey) != ""
}

// APIKey returns the configured credential.
func (c *Config) APIKey() string {
	return c.apiKey
}

// TimeoutDuration parses and returns the completion timeout ceiling.
func (c *Config) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates
// the provider configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	c.loadEnv(env)
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.DefaultModel != "" {
		c.DefaultModel = overlay.DefaultModel
	}
	if overlay.DefaultTemperature != 0 {
		c.DefaultTemperature = overlay.DefaultTemperature
	}
	if overlay.DefaultMaxTokens != 0 {
		c.DefaultMaxTokens = overlay.DefaultMaxTokens
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

func (c *Config) loadDefaults() {
	if c.DefaultModel == "" {
		c.DefaultModel = "gpt-3.5-turbo"
	}
	if c.DefaultTemperature == 0 {
		c.DefaultTemperature = 0.7
	}
	if c.DefaultMaxTokens == 0 {
		c.DefaultMaxTokens = 1000
	}
	if c.Timeout == "" {
		c.Timeout = "60s"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env == nil {
		return
	}
	if v := os.Getenv(env.APIKey); v != "" {
		c.apiKey = v
	}
	if v := os.Getenv(env.BaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(env.DefaultModel); v != "" {
		c.DefaultModel = v
	}
	if v := os.Getenv(env.DefaultTemperature); v != "" {
		if t, err := strconv.ParseFloat(v, 64); err == nil {
			c.DefaultTemperature = t
		}
	}
	if v := os.Getenv(env.DefaultMaxTokens); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.DefaultMaxTokens = n
		}
	}
	if v := os.Getenv(env.Timeout); v != "" {
		c.Timeout = v
	}
}

func (c *Config) validate() error {
	if !Accepts(c.DefaultModel) {
		return fmt.Errorf("unknown default_model: %s", c.DefaultModel)
	}
	if c.DefaultTemperature < 0 || c.DefaultTemperature > 2 {
		return fmt.Errorf("default_temperature must be within [0.0, 2.0]")
	}
	if c.DefaultMaxTokens <= 0 {
		return fmt.Errorf("default_max_tokens must be positive")
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}
