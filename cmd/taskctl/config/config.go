// Package config resolves where taskctl finds the taskhub server
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

const (
	defaultServerURL = "http://localhost:8080"
	envVarServerURL  = "TASKHUB_SERVER_URL"
	configFileName   = ".taskhub/config.yml"
)

type Config struct {
	ServerURL string `yaml:"server"`
}

// Load reads ~/.taskhub/config.yml when it exists. An absent file or home
// directory yields an empty Config; any other read or parse failure is
// returned.
func Load() (*Config, error) {
	cfg := &Config{}

	path, err := Path()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Path is the per-user config file location.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configFileName), nil
}

// GetServerURL returns the server URL with priority: env var > config file > default
func (c *Config) GetServerURL() string {
	if url := os.Getenv(envVarServerURL); url != "" {
		return url
	}
	if c.ServerURL != "" {
		return c.ServerURL
	}
	return defaultServerURL
}
