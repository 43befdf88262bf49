package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smallworld/builder"
	"github.com/katalvlaran/smallworld/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "smallworld.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "ring", cfg.Topology)
	assert.Equal(t, 10, cfg.Size)
	assert.Equal(t, " ", cfg.Delimiter)
	assert.Equal(t, "clean", cfg.Aggregation)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, `
topology: star
size: 25
seed: 7
aggregation: legacy
log_level: debug
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "star", cfg.Topology)
	assert.Equal(t, 25, cfg.Size)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "legacy", cfg.Aggregation)
	assert.Equal(t, " ", cfg.Delimiter, "absent keys keep defaults")

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	opts, err := cfg.MetricOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 2)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "topology: [unclosed"))
	require.Error(t, err)

	_, err = config.Load(writeFile(t, "colour: blue\n"))
	require.Error(t, err, "unknown keys are rejected")

	_, err = config.Load(writeFile(t, "size: 0\n"))
	require.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(writeFile(t, "topology: second-ring\nsize: 2\n"))
	require.ErrorIs(t, err, config.ErrInvalid)
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"Topology", func(c *config.Config) { c.Topology = "torus" }},
		{"Size", func(c *config.Config) { c.Size = -2 }},
		{"SecondRingTooSmall", func(c *config.Config) { c.Topology, c.Size = "second-ring", 2 }},
		{"StarTooSmall", func(c *config.Config) { c.Topology, c.Size = "star", 1 }},
		{"Delimiter", func(c *config.Config) { c.Delimiter = "" }},
		{"Aggregation", func(c *config.Config) { c.Aggregation = "median" }},
		{"Concurrency", func(c *config.Config) { c.Concurrency = -1 }},
		{"LogLevel", func(c *config.Config) { c.LogLevel = "chatty" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}
