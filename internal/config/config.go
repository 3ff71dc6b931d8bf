// Package config loads evaluator configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Logging LogConfig
	Eval    EvalConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// EvalConfig holds evaluation loop configuration.
type EvalConfig struct {
	// MaxLineBytes bounds a single request line on stdin.
	MaxLineBytes int `envconfig:"FIXCALC_MAX_LINE" default:"1048576"`
	// Strict stops the loop on the first failed tool call instead of
	// reporting the failure and continuing.
	Strict bool `envconfig:"FIXCALC_STRICT" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Eval: EvalConfig{
			MaxLineBytes: 1 << 20,
			Strict:       false,
		},
	}
}
