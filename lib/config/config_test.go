// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "ghopts.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return configPath
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Environment != Development {
		t.Errorf("expected environment=development, got %s", cfg.Environment)
	}

	if cfg.API.BaseURL != "https://api.github.com" {
		t.Errorf("expected base_url=https://api.github.com, got %s", cfg.API.BaseURL)
	}

	if cfg.API.UserAgent != "ghopts" {
		t.Errorf("expected user_agent=ghopts, got %s", cfg.API.UserAgent)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoad_RequiresConfigEnv(t *testing.T) {
	t.Setenv(EnvVar, "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when GHOPTS_CONFIG not set, got nil")
	}

	expectedMsg := "GHOPTS_CONFIG environment variable not set"
	if !strings.HasPrefix(err.Error(), expectedMsg) {
		t.Errorf("expected error message to start with %q, got %q", expectedMsg, err.Error())
	}
}

func TestLoad_WithConfigEnv(t *testing.T) {
	configPath := writeConfig(t, `
environment: staging
defaults:
  owner: bureau-foundation
  repo: ghopts
`)
	t.Setenv(EnvVar, configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Environment != Staging {
		t.Errorf("expected environment=staging, got %s", cfg.Environment)
	}
	if cfg.Defaults.Owner != "bureau-foundation" || cfg.Defaults.Repo != "ghopts" {
		t.Errorf("defaults = %+v", cfg.Defaults)
	}
}

func TestLoadFile(t *testing.T) {
	configPath := writeConfig(t, `
api:
  base_url: https://ghe.example.com/api/v3
  token_file: /etc/ghopts/token
  timeout: 5s
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.API.BaseURL != "https://ghe.example.com/api/v3" {
		t.Errorf("expected base_url from file, got %s", cfg.API.BaseURL)
	}
	if cfg.API.TokenFile != "/etc/ghopts/token" {
		t.Errorf("expected token_file from file, got %s", cfg.API.TokenFile)
	}
	// Unspecified fields keep their defaults.
	if cfg.API.UserAgent != "ghopts" {
		t.Errorf("expected default user_agent, got %s", cfg.API.UserAgent)
	}
	timeout, err := cfg.RequestTimeout()
	if err != nil || timeout != 5*time.Second {
		t.Errorf("RequestTimeout = %v, %v; want 5s", timeout, err)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	configPath := writeConfig(t, "api: [not, a, mapping]\n")
	_, err := LoadFile(configPath)
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
	if !strings.Contains(err.Error(), configPath) {
		t.Errorf("error %q does not name the file", err)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	configPath := writeConfig(t, `
environment: production

api:
  base_url: https://api.github.com
  user_agent: ghopts-dev

defaults:
  owner: octocat
  repo: sandbox

production:
  api:
    base_url: https://ghe.example.com/api/v3
  defaults:
    repo: hello-world
staging:
  api:
    user_agent: ghopts-staging
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.API.BaseURL != "https://ghe.example.com/api/v3" {
		t.Errorf("expected production base_url, got %s", cfg.API.BaseURL)
	}
	if cfg.API.UserAgent != "ghopts-dev" {
		t.Errorf("staging section applied in production: user_agent=%s", cfg.API.UserAgent)
	}
	if cfg.Defaults.Owner != "octocat" || cfg.Defaults.Repo != "hello-world" {
		t.Errorf("defaults = %+v, want octocat/hello-world", cfg.Defaults)
	}
}

func TestEnvVarsDoNotOverride(t *testing.T) {
	t.Setenv("GHOPTS_BASE_URL", "https://env.example.com")
	t.Setenv("GHOPTS_ENVIRONMENT", "staging")

	configPath := writeConfig(t, `
environment: development
api:
  base_url: https://file.example.com
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Environment != Development {
		t.Errorf("expected environment=development from file, got %s (env vars should not override)", cfg.Environment)
	}
	if cfg.API.BaseURL != "https://file.example.com" {
		t.Errorf("expected base_url from file, got %s (env vars should not override)", cfg.API.BaseURL)
	}
}

func TestTokenFileExpansion(t *testing.T) {
	t.Setenv("HOME", "/home/octocat")
	t.Setenv("GHOPTS_TOKEN_DIR", "")

	configPath := writeConfig(t, `
api:
  token_file: ${GHOPTS_TOKEN_DIR:-/run/secrets}/token
`)
	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.API.TokenFile != "/run/secrets/token" {
		t.Errorf("token_file = %q, want default applied", cfg.API.TokenFile)
	}

	configPath = writeConfig(t, `
api:
  token_file: ${HOME}/.config/ghopts/token
`)
	cfg, err = LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.API.TokenFile != "/home/octocat/.config/ghopts/token" {
		t.Errorf("token_file = %q", cfg.API.TokenFile)
	}
}

func TestExpandVars(t *testing.T) {
	tests := []struct {
		input    string
		vars     map[string]string
		expected string
	}{
		{
			input:    "${HOME}/token",
			vars:     map[string]string{"HOME": "/home/user"},
			expected: "/home/user/token",
		},
		{
			input:    "${GHOPTS_TEST_MISSING:-default}",
			vars:     map[string]string{},
			expected: "default",
		},
		{
			input:    "${PRESENT:-default}",
			vars:     map[string]string{"PRESENT": "value"},
			expected: "value",
		},
		{
			input:    "${A}/${B}",
			vars:     map[string]string{"A": "first", "B": "second"},
			expected: "first/second",
		},
		{
			input:    "no variables here",
			vars:     map[string]string{},
			expected: "no variables here",
		},
	}

	for _, tt := range tests {
		result := expandVars(tt.input, tt.vars)
		if result != tt.expected {
			t.Errorf("expandVars(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "valid default config",
			modify: func(c *Config) {},
		},
		{
			name: "invalid environment",
			modify: func(c *Config) {
				c.Environment = "invalid"
			},
			wantErr: "invalid environment: invalid",
		},
		{
			name: "plain http base url",
			modify: func(c *Config) {
				c.API.BaseURL = "http://api.github.com"
			},
			wantErr: "api.base_url must use https",
		},
		{
			name: "empty token file",
			modify: func(c *Config) {
				c.API.TokenFile = ""
			},
			wantErr: "api.token_file is required",
		},
		{
			name: "bad timeout",
			modify: func(c *Config) {
				c.API.Timeout = "soon"
			},
			wantErr: "api.timeout",
		},
		{
			name: "owner without repo",
			modify: func(c *Config) {
				c.Defaults.Owner = "octocat"
			},
			wantErr: "must be set together",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	cfg := Default()
	cfg.Environment = "lab"
	cfg.API.BaseURL = ""
	cfg.API.TokenFile = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"invalid environment", "api.base_url is required", "api.token_file is required"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}

func TestToken(t *testing.T) {
	dir := t.TempDir()
	tokenPath := filepath.Join(dir, "token")
	if err := os.WriteFile(tokenPath, []byte("  ghp_example\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	cfg.API.TokenFile = tokenPath
	token, err := cfg.Token()
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if token != "ghp_example" {
		t.Errorf("Token = %q, want ghp_example", token)
	}

	emptyPath := filepath.Join(dir, "empty")
	if err := os.WriteFile(emptyPath, []byte("\n"), 0600); err != nil {
		t.Fatal(err)
	}
	cfg.API.TokenFile = emptyPath
	if _, err := cfg.Token(); err == nil {
		t.Error("expected error for empty token file")
	}

	cfg.API.TokenFile = filepath.Join(dir, "missing")
	if _, err := cfg.Token(); err == nil {
		t.Error("expected error for missing token file")
	}
}
