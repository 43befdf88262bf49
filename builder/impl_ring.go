// SPDX-License-Identifier: MIT
// Package: smallworld/builder
//
// impl_ring.go - implementation of Ring(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits v_i–v_(i+1) for i=0..n-2, then closes with v_(n-1)–v_0.
//   • n == 1: one isolated vertex; the closing edge would be a self-loop and is skipped.
//   • n == 2: one edge; the closing edge collapses into it (idempotent AddEdge).
//   • n ≥ 3: n edges, every vertex has degree 2.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.

package builder

import "github.com/katalvlaran/smallworld/core"

// Ring returns a Constructor that builds an n-vertex cycle.
func Ring(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRing, n, MinRingNodes); err != nil {
			return err
		}
		if err := addLinearVertices(MethodRing, g, cfg, n); err != nil {
			return err
		}

		for i := 0; i < n-1; i++ {
			if err := addLinearEdge(MethodRing, g, cfg, i, i+1); err != nil {
				return err
			}
		}
		if n == 1 {
			return nil
		}

		// close the cycle
		return addLinearEdge(MethodRing, g, cfg, n-1, 0)
	}
}
