// SPDX-License-Identifier: MIT
// Package: smallworld/builder
//
// impl_grid.go - implementation of Grid(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Vertex IDs are GridLabel(r,c) = "r{r}c{c}" - fixed scheme, cfg.idFn is not used.
//   • Vertices are added row-major (r asc, then c asc).
//   • Edge emission, in this exact order:
//       1) for every cell (r,c) with r,c ≤ n-2: Right (r,c+1), then Down (r+1,c);
//       2) right-most column closure: (i,n-1)–(i+1,n-1) for i=0..n-2;
//       3) bottom-most row closure:   (n-1,i)–(n-1,i+1) for i=0..n-2.
//   • The closures complete the boundary links the interior loop cannot reach.
//     They do not wrap around: corners keep degree 2 and border cells degree 3,
//     interior cells have degree 4, and the grid has 2n(n-1) edges.
//
// Complexity:
//   • Time: O(n²) vertices + O(n²) edges.
//   • Space: O(1) extra (IDs are composed on the fly).

package builder

import (
	"fmt"

	"github.com/katalvlaran/smallworld/core"
)

// Grid returns a Constructor that builds an n×n lattice with boundary closure.
func Grid(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodGrid, n, MinGridDim); err != nil {
			return err
		}

		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				id := GridLabel(r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", MethodGrid, id, err)
				}
			}
		}

		// 1) interior: right and down links
		for r := 0; r < n-1; r++ {
			for c := 0; c < n-1; c++ {
				if err := addGridEdge(g, r, c, r, c+1); err != nil {
					return err
				}
				if err := addGridEdge(g, r, c, r+1, c); err != nil {
					return err
				}
			}
		}

		// 2) right-most column
		for i := 0; i < n-1; i++ {
			if err := addGridEdge(g, i, n-1, i+1, n-1); err != nil {
				return err
			}
		}

		// 3) bottom-most row
		for i := 0; i < n-1; i++ {
			if err := addGridEdge(g, n-1, i, n-1, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// addGridEdge connects two lattice cells with method context.
func addGridEdge(g *core.Graph, r1, c1, r2, c2 int) error {
	u, v := GridLabel(r1, c1), GridLabel(r2, c2)
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s–%s): %w", MethodGrid, u, v, err)
	}

	return nil
}
