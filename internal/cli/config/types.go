// Package config loads CLI configuration from file, environment, and flags.
package config

import "fmt"

// Config holds the resolved CLI configuration.
type Config struct {
	// MaxDepth bounds term and formula nesting in the parser.
	MaxDepth int `koanf:"max_depth"`
	// LogLevel sets the slog level: debug, info, warn, or error.
	LogLevel string `koanf:"log_level"`
	// Verbose enables debug logging regardless of LogLevel.
	Verbose bool `koanf:"verbose"`
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive, got %d", c.MaxDepth)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}
