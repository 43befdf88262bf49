// Package builder provides the LabelSpace: pure, deterministic naming of
// generator coordinates.
package builder

import (
	"fmt"
	"strconv"
)

// Label prefixes of the LabelSpace.
const (
	linearPrefix = "v"
	rowPrefix    = "r"
	colPrefix    = "c"
)

// IDFn generates a vertex identifier from its zero-based index.
// It must be a pure, deterministic function: given the same idx, it always returns the same string.
type IDFn func(idx int) string

// LinearLabel names the i-th vertex of a linear topology: 0→"v0", 12→"v12".
// Complexity: O(d) where d is the number of decimal digits in i.
// Panics if i < 0.
func LinearLabel(i int) string {
	if i < 0 {
		panic(fmt.Sprintf("LinearLabel: idx must be ≥ 0, got %d", i))
	}

	return linearPrefix + strconv.Itoa(i)
}

// GridLabel names the lattice cell (row, col): (2,3)→"r2c3".
// Panics if either coordinate is negative.
func GridLabel(row, col int) string {
	if row < 0 || col < 0 {
		panic(fmt.Sprintf("GridLabel: coordinates must be ≥ 0, got (%d,%d)", row, col))
	}

	return rowPrefix + strconv.Itoa(row) + colPrefix + strconv.Itoa(col)
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "n0", "n1", ...
// Panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb sets the linear ID scheme to SymbolNumberIDFn(prefix).
// Example: WithSymbNumb("n") → "n0","n1",...
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithDefaultIDs resets the linear ID scheme to LinearLabel.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(LinearLabel)
}
