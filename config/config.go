// Package config holds the run settings of the smallworld command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/smallworld/builder"
	"github.com/katalvlaran/smallworld/metrics"
)

// ErrInvalid is returned by Validate (wrapped) for an unusable setting.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds run settings. Zero-valued keys absent from a YAML file keep
// their Default values.
type Config struct {
	// Generator settings.
	Topology string `yaml:"topology"` // complete | grid | ring | second-ring | star
	Size     int    `yaml:"size"`
	Seed     int64  `yaml:"seed"` // star hub draw

	// Ingestion settings.
	Delimiter string `yaml:"delimiter"`

	// Metric settings.
	Aggregation string `yaml:"aggregation"` // clean | legacy
	Concurrency int    `yaml:"concurrency"` // 0 = GOMAXPROCS

	LogLevel string `yaml:"log_level"` // debug | info | warn | error
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Topology:    "ring",
		Size:        10,
		Seed:        1,
		Delimiter:   " ",
		Aggregation: metrics.AggregationClean.String(),
		Concurrency: 0,
		LogLevel:    "info",
	}
}

// Load reads a YAML file over Default and validates the result.
// An empty path returns Default unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := Parse(raw, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML into cfg, rejecting unknown keys, then validates it.
func Parse(raw []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return cfg.Validate()
}

// Validate checks every setting and returns the first problem found.
func (c *Config) Validate() error {
	if _, err := builder.ByName(c.Topology, c.Size); err != nil {
		return fmt.Errorf("%w: topology %q size %d: %w", ErrInvalid, c.Topology, c.Size, err)
	}
	if c.Delimiter == "" {
		return fmt.Errorf("%w: delimiter is empty", ErrInvalid)
	}
	if _, err := metrics.ParseAggregation(c.Aggregation); err != nil {
		return fmt.Errorf("%w: aggregation: %w", ErrInvalid, err)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("%w: concurrency must be ≥ 0, got %d", ErrInvalid, c.Concurrency)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalid, err)
	}

	return nil
}

// Level parses LogLevel into a slog.Level.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(c.LogLevel))

	return l, err
}

// MetricOptions translates the metric settings into metrics options.
func (c *Config) MetricOptions() ([]metrics.Option, error) {
	agg, err := metrics.ParseAggregation(c.Aggregation)
	if err != nil {
		return nil, err
	}

	return []metrics.Option{
		metrics.WithAggregation(agg),
		metrics.WithConcurrency(c.Concurrency),
	}, nil
}
