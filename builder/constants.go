// Package builder defines shared constants used by graph builders, ensuring
// consistent validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodRing is the canonical name for the Ring constructor.
	MethodRing = "Ring"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodSecondLevelRing is the canonical name for the SecondLevelRing constructor.
	MethodSecondLevelRing = "SecondLevelRing"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinCompleteNodes is the smallest complete graph: K_1, one isolated vertex.
const MinCompleteNodes = 1

// MinRingNodes is the smallest ring. Sizes 1 and 2 are degenerate: one
// isolated vertex, and one edge whose closing edge collapses into it.
const MinRingNodes = 1

// MinGridDim is the smallest lattice side. A 1×1 grid is one isolated vertex.
const MinGridDim = 1

// MinSecondLevelRingNodes is the smallest augmented ring. The seam closure
// references v0, v1, v(h-2) and v(h-1); below three vertices those collapse
// into self-loops.
const MinSecondLevelRingNodes = 3

// MinStarNodes is the smallest star: one hub plus one leaf.
// The hub is drawn from [1, s-1], which is empty for s < 2.
const MinStarNodes = 2
