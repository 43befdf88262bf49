// Package metrics computes graph-wide measurements over a core.Graph.
//
// Metrics:
//
//	AverageDegree(g)          // Σ deg(v) / V; undefined for V = 0
//	AverageLength(g, opts...) // mean BFS distance; undefined for V ≤ 1
//	Summarize(g, opts...)     // counts plus both averages
//
// AverageLength aggregations:
//
//   - AggregationClean (default): Σ d(u,v) / #pairs over ordered pairs u≠v
//     with v reachable from u. Unreachable pairs are left out; a graph with
//     no connected pair has no average length.
//   - AggregationLegacy: vertices in sorted order; vertex k sums the
//     distances to the k vertices before it, that sum is integer-divided by
//     V-1, and the grand total is divided by V(V-1)/2. This reproduces a
//     historical prefix-sum formula and is kept for comparison with older
//     results. Every visited pair must be connected (ErrDisconnected).
//
// Concurrency:
//
// One BFS runs per vertex through an errgroup bounded by WithConcurrency.
// The graph is only read, so it must not be mutated while a metric runs.
// WithContext cancels outstanding searches.
package metrics
