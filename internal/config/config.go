// Package config loads glint's .glint.yaml configuration file.
package config

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigFileName is the name of the config file searched for in the
	// current directory and its ancestors.
	ConfigFileName = ".glint.yaml"
	// DefaultAPIKeyEnv is the environment variable holding the API token
	// when the config file does not name another one.
	DefaultAPIKeyEnv = "GLINT_API_KEY"
)

// Config holds the client configuration.
type Config struct {
	// Endpoint is the GraphQL endpoint URL.
	Endpoint string `yaml:"endpoint,omitempty"`
	// APIKeyEnv names the environment variable holding the API token.
	// The token itself never lives in the config file.
	APIKeyEnv string `yaml:"api_key_env,omitempty"`
	// DefaultTeam is used when a command's --team flag is omitted. It may
	// be a UUID, a team key, or a team name.
	DefaultTeam string `yaml:"default_team,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{APIKeyEnv: DefaultAPIKeyEnv}
}

// Load reads a config file. A missing file is not an error: defaults are
// returned so glint works with nothing but the token env var set.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.APIKeyEnv == "" {
		cfg.APIKeyEnv = DefaultAPIKeyEnv
	}
	return cfg, nil
}

// LoadFromDirectory searches dir and its ancestors for a config file and
// loads the first one found, falling back to defaults at the filesystem
// root.
func LoadFromDirectory(dir string) (*Config, error) {
	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}

// Token reads the API token from the configured environment variable.
func (c *Config) Token() (string, error) {
	env := cmp.Or(c.APIKeyEnv, DefaultAPIKeyEnv)
	token := os.Getenv(env)
	if token == "" {
		return "", fmt.Errorf("no API token: set %s", env)
	}
	return token, nil
}
