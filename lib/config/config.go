// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local development machines.
	Development Environment = "development"
	// Staging is for pre-production testing.
	Staging Environment = "staging"
	// Production is for production deployments.
	Production Environment = "production"
)

// EnvVar names the environment variable [Load] reads the config path
// from.
const EnvVar = "GHOPTS_CONFIG"

// Config is the ghopts configuration.
type Config struct {
	// Environment identifies the deployment type (development, staging, production).
	Environment Environment `yaml:"environment"`

	// API configures the GitHub REST endpoint and credentials.
	API APIConfig `yaml:"api"`

	// Defaults supplies the repository used when a command names none.
	Defaults DefaultsConfig `yaml:"defaults"`

	// EnvironmentOverrides contains per-environment overrides.
	// These are applied after the base config is loaded.
	Development *ConfigOverrides `yaml:"development,omitempty"`
	Staging     *ConfigOverrides `yaml:"staging,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	API      *APIConfig      `yaml:"api,omitempty"`
	Defaults *DefaultsConfig `yaml:"defaults,omitempty"`
}

// APIConfig configures access to the GitHub REST API.
type APIConfig struct {
	// BaseURL is the API root. Must be HTTPS.
	// Default: https://api.github.com
	BaseURL string `yaml:"base_url"`

	// TokenFile holds the access token, one line. The token itself never
	// appears in the config file. ${HOME} and ${VAR:-default} are expanded.
	// Default: ${HOME}/.config/ghopts/token
	TokenFile string `yaml:"token_file"`

	// UserAgent is sent with every request.
	// Default: ghopts
	UserAgent string `yaml:"user_agent"`

	// Timeout bounds each request, as a Go duration string.
	// Default: 30s
	Timeout string `yaml:"timeout"`
}

// DefaultsConfig names the repository commands act on by default.
type DefaultsConfig struct {
	Owner string `yaml:"owner"`
	Repo  string `yaml:"repo"`
}

// Default returns the default configuration.
// These defaults are used as a base before loading the config file.
func Default() *Config {
	return &Config{
		Environment: Development,
		API: APIConfig{
			BaseURL:   "https://api.github.com",
			TokenFile: "${HOME}/.config/ghopts/token",
			UserAgent: "ghopts",
			Timeout:   "30s",
		},
	}
}

// Load loads configuration from the GHOPTS_CONFIG environment variable.
// There are no fallbacks: if GHOPTS_CONFIG is not set, this fails.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvVar)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your ghopts.yaml config file, or use --config flag", EnvVar)
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path.
//
// Environment variables do not override config values. The only
// expansion performed is on token_file.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()

	return cfg, nil
}

// loadFile loads a single configuration file, merging into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// applyEnvironmentOverrides applies the section matching Environment.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
	}

	if overrides == nil {
		return
	}

	if overrides.API != nil {
		if overrides.API.BaseURL != "" {
			c.API.BaseURL = overrides.API.BaseURL
		}
		if overrides.API.TokenFile != "" {
			c.API.TokenFile = overrides.API.TokenFile
		}
		if overrides.API.UserAgent != "" {
			c.API.UserAgent = overrides.API.UserAgent
		}
		if overrides.API.Timeout != "" {
			c.API.Timeout = overrides.API.Timeout
		}
	}

	if overrides.Defaults != nil {
		if overrides.Defaults.Owner != "" {
			c.Defaults.Owner = overrides.Defaults.Owner
		}
		if overrides.Defaults.Repo != "" {
			c.Defaults.Repo = overrides.Defaults.Repo
		}
	}
}

func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}
	c.API.TokenFile = expandVars(c.API.TokenFile, vars)
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors. Every violation is
// reported, joined with errors.Join.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Staging && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}

	if c.API.BaseURL == "" {
		errs = append(errs, fmt.Errorf("api.base_url is required"))
	} else if !strings.HasPrefix(c.API.BaseURL, "https://") {
		errs = append(errs, fmt.Errorf("api.base_url must use https: %s", c.API.BaseURL))
	}

	if c.API.TokenFile == "" {
		errs = append(errs, fmt.Errorf("api.token_file is required"))
	}

	if _, err := c.RequestTimeout(); err != nil {
		errs = append(errs, err)
	}

	if (c.Defaults.Owner == "") != (c.Defaults.Repo == "") {
		errs = append(errs, fmt.Errorf("defaults.owner and defaults.repo must be set together"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// RequestTimeout parses API.Timeout. An empty timeout means no limit.
func (c *Config) RequestTimeout() (time.Duration, error) {
	if c.API.Timeout == "" {
		return 0, nil
	}
	timeout, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 0, fmt.Errorf("api.timeout: %w", err)
	}
	if timeout < 0 {
		return 0, fmt.Errorf("api.timeout must not be negative: %s", c.API.Timeout)
	}
	return timeout, nil
}

// Token reads the access token from API.TokenFile. Surrounding
// whitespace, including the trailing newline, is removed.
func (c *Config) Token() (string, error) {
	data, err := os.ReadFile(c.API.TokenFile)
	if err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("token file %s is empty", c.API.TokenFile)
	}
	return token, nil
}
