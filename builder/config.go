// SPDX-License-Identifier: MIT
// Package: smallworld/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • idFn    = LinearLabel   ("v0","v1","v2",...)
//   • rng     = nil           (Star refuses to run unless seeded)
//   • logger  = discards everything
//   • onHub   = nil           (no hub observer)

package builder

import (
	"io"
	"log/slog"
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy for linear topologies: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Structured logger for observable construction events (Star hub).
	logger *slog.Logger
	// Optional hook receiving the Star hub index.
	onHub func(hub int)
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   LinearLabel,
		rng:    nil,
		logger: discardLogger(),
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// discardLogger returns a logger that drops every record.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
