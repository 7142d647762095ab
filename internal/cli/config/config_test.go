package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/euclid/pkg/parser"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, parser.DefaultMaxDepth, cfg.MaxDepth)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Verbose)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "euclid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_depth: 32\nlog_level: warn\n"), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 32, cfg.MaxDepth)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, path, GetConfigFileUsed())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "euclid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_depth: 32\n"), 0o644))

	t.Setenv("EUCLID_MAX_DEPTH", "128")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.MaxDepth)
}

func TestLoad_FlagsOverrideEverything(t *testing.T) {
	t.Setenv("EUCLID_MAX_DEPTH", "128")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("max-depth", parser.DefaultMaxDepth, "")
	require.NoError(t, flags.Set("max-depth", "16"))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.MaxDepth)
}

func TestLoad_UnchangedFlagsIgnored(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("max-depth", 999, "")

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, parser.DefaultMaxDepth, cfg.MaxDepth)
}

func TestLoad_VerboseImpliesDebug(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bool("verbose", false, "")
	require.NoError(t, flags.Set("verbose", "true"))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"non-positive depth", "max_depth: 0\n"},
		{"unknown log level", "log_level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "euclid.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			_, err := Load(path, nil)
			require.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{MaxDepth: 64, LogLevel: "info"}
	require.NoError(t, cfg.Validate())

	cfg.MaxDepth = -1
	require.Error(t, cfg.Validate())

	cfg = &Config{MaxDepth: 64, LogLevel: "silent"}
	require.Error(t, cfg.Validate())
}
