// SPDX-License-Identifier: MIT
// Package: smallworld/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits each unordered pair {i,j} with i<j exactly once.
//   • Result: n(n-1)/2 edges, every vertex has degree n-1.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges emission.
//   • Space: O(1) extra.

package builder

import "github.com/katalvlaran/smallworld/core"

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		if err := addLinearVertices(MethodComplete, g, cfg, n); err != nil {
			return err
		}

		// Lexicographic pair order (i,j), i<j.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addLinearEdge(MethodComplete, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
