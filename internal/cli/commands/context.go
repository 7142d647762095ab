// Package commands implements the euclid CLI subcommands.
package commands

import (
	"context"
	"io"
	"log/slog"
	"math"

	"github.com/leapstack-labs/euclid/internal/cli/config"
	"github.com/leapstack-labs/euclid/pkg/parser"
)

type configKey struct{}
type loggerKey struct{}

// WithConfig stores the config in the context.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// ConfigFrom returns the config from the context, or a default config if
// none was stored.
func ConfigFrom(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	cfg, err := config.Load("", nil)
	if err != nil {
		return &config.Config{MaxDepth: parser.DefaultMaxDepth, LogLevel: "info"}
	}
	return cfg
}

// WithLogger stores the logger in the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// LoggerFrom returns the logger from the context, or a discard logger if
// none was stored.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
}
