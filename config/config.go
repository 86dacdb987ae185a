// Package config loads server settings and default cipher keys
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"cipher-backend/crypto"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         string   `yaml:"port"`
	Mode         string   `yaml:"mode"`
	AllowOrigins []string `yaml:"allow_origins"`
}

// DefaultsConfig holds the keys cipherctl falls back to when --key is not given
type DefaultsConfig struct {
	HillKey     [][]int `yaml:"hill_key"`
	PlayfairKey string  `yaml:"playfair_key"`
	VigenereKey string  `yaml:"vigenere_key"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         "8080",
			Mode:         "debug",
			AllowOrigins: []string{"http://localhost:3000"},
		},
		Defaults: DefaultsConfig{
			HillKey:     [][]int{{3, 2}, {5, 7}},
			PlayfairKey: "KEYWORD",
			VigenereKey: "LEMON",
		},
	}
}

// Load starts from Default, applies the YAML file at path when path is
// non-empty, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %q: %w", path, err)
		}
	}

	cfg.Server.Port = getEnv("PORT", cfg.Server.Port)
	cfg.Server.Mode = getEnv("GIN_MODE", cfg.Server.Mode)
	if origins, ok := os.LookupEnv("CIPHER_ALLOW_ORIGINS"); ok {
		cfg.Server.AllowOrigins = splitList(origins)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the server settings and that default keys are usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Port) == "" {
		return errors.New("server port is required")
	}
	if len(c.Server.AllowOrigins) == 0 {
		return errors.New("at least one allowed origin is required")
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server mode %q must be debug, release or test", c.Server.Mode)
	}
	if len(c.Defaults.HillKey) > 0 {
		if _, err := crypto.NewHill(c.Defaults.HillKey); err != nil {
			return fmt.Errorf("default hill key: %w", err)
		}
	}
	if c.Defaults.VigenereKey != "" {
		if _, err := crypto.NewVigenere(c.Defaults.VigenereKey); err != nil {
			return fmt.Errorf("default vigenere key: %w", err)
		}
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
