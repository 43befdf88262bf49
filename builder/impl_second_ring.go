// SPDX-License-Identifier: MIT
// Package: smallworld/builder
//
// impl_second_ring.go - implementation of SecondLevelRing(h) constructor,
// the "augmented ring" small-world lattice.
//
// Contract:
//   • h ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..h-1).
//   • For i=0..h-3 emits the ring edge v_i–v_(i+1), then the chord v_i–v_(i+2).
//   • Seam closure, in this exact order:
//       v_(h-2)–v_(h-1), v_(h-1)–v_0, v_(h-2)–v_0, v_(h-1)–v_1.
//   • Shape: h=3 is the triangle, h=4 is K_4, h ≥ 5 is the square of the
//     cycle C_h (2h edges, every vertex has degree 4).
//
// Complexity:
//   • Time: O(h) vertices + O(h) edges.

package builder

import "github.com/katalvlaran/smallworld/core"

// SecondLevelRing returns a Constructor that builds a ring augmented with
// second-neighbor chords.
func SecondLevelRing(h int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodSecondLevelRing, h, MinSecondLevelRingNodes); err != nil {
			return err
		}
		if err := addLinearVertices(MethodSecondLevelRing, g, cfg, h); err != nil {
			return err
		}

		for i := 0; i < h-2; i++ {
			if err := addLinearEdge(MethodSecondLevelRing, g, cfg, i, i+1); err != nil {
				return err
			}
			if err := addLinearEdge(MethodSecondLevelRing, g, cfg, i, i+2); err != nil {
				return err
			}
		}

		seam := [4][2]int{
			{h - 2, h - 1},
			{h - 1, 0},
			{h - 2, 0},
			{h - 1, 1},
		}
		for _, e := range seam {
			if err := addLinearEdge(MethodSecondLevelRing, g, cfg, e[0], e[1]); err != nil {
				return err
			}
		}

		return nil
	}
}
