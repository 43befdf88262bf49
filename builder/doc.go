// Package builder provides the deterministic topology generators of
// smallworld together with the LabelSpace that names their vertices.
//
// The package offers the following key components:
//
//   - LabelSpace (pure functions, no state):
//     – LinearLabel(i):     "v{i}" for linear indices.
//     – GridLabel(r, c):    "r{r}c{c}" for lattice coordinates.
//     – SymbolNumberIDFn:   custom prefix + index, via WithSymbNumb/WithIDScheme.
//   - Orchestration:
//     – Constructor:        func(g *core.Graph, cfg builderConfig) error.
//     – BuildGraph:         fresh graph + resolved options + constructors in order.
//   - Topologies:
//     – Complete(n):        K_n.
//     – Ring(n):            cycle C_n (n=1,2 degenerate, see impl_ring.go).
//     – Grid(n):            n×n lattice with right-column / bottom-row closure.
//     – SecondLevelRing(h): ring plus skip-2 chords with explicit seam closure.
//     – Star(s):            random hub in [1, s-1] (requires WithSeed/WithRand).
//   - Configuration primitives:
//     – WithIDScheme, WithSeed, WithRand, WithLogger, WithHubObserver.
//
// Guarantees:
//
//   - Generators only add vertices and edges through the core.Graph contract.
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Sentinel runtime errors (ErrTooFewVertices, ErrNeedRandSource) wrapped
//     with the constructor name for easy filtering.
//
// Example:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.Star(10),
//	)
package builder
