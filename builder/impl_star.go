// SPDX-License-Identifier: MIT
// Package: smallworld/builder
//
// impl_star.go - implementation of Star(s) constructor.
//
// Contract:
//   - s ≥ 2 (else ErrTooFewVertices); cfg.rng required (else ErrNeedRandSource).
//   - Adds vertices via cfg.idFn in ascending index order (0..s-1).
//   - Hub index drawn uniformly from [1, s-1] as 1 + rng.Intn(s-1).
//   - hub == 0 branch: spokes v0–v_i for i=1..s-1. The draw above never
//     produces 0; the branch is kept so an alternative draw stays well-defined.
//   - Otherwise two passes: outward spokes hub–v_(hub+1..s-1), then inward
//     spokes hub–v_(0..hub-1). Together the hub touches all s-1 other vertices.
//   - The hub is logged at Info level ("star hub selected", hub=<idx>) and
//     handed to the WithHubObserver callback, if any.
//
// Complexity:
//   - Time: O(s) vertices + O(s-1) edges.
//
// Determinism:
//   - Deterministic for a fixed cfg.rng seed.

package builder

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/smallworld/core"
)

// Star returns a Constructor that builds a star with a randomly chosen hub.
func Star(s int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, s, MinStarNodes); err != nil {
			return err
		}
		if err := validateRand(MethodStar, cfg); err != nil {
			return err
		}
		if err := addLinearVertices(MethodStar, g, cfg, s); err != nil {
			return err
		}

		hub := 1 + cfg.rng.Intn(s-1)

		if hub == 0 {
			for i := 0; i < s-1; i++ {
				if err := addLinearEdge(MethodStar, g, cfg, 0, i+1); err != nil {
					return err
				}
			}
		} else {
			// outward: hub+1 .. s-1
			for i := 0; i < s-hub-1; i++ {
				if err := addLinearEdge(MethodStar, g, cfg, hub, hub+i+1); err != nil {
					return err
				}
			}
			// inward: 0 .. hub-1
			for i := 0; i < hub; i++ {
				if err := addLinearEdge(MethodStar, g, cfg, hub, i); err != nil {
					return err
				}
			}
		}

		cfg.logger.LogAttrs(context.Background(), slog.LevelInfo, "star hub selected",
			slog.Int("hub", hub),
			slog.String("label", cfg.idFn(hub)),
			slog.Int("size", s),
		)
		if cfg.onHub != nil {
			cfg.onHub(hub)
		}

		return nil
	}
}
