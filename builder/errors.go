// SPDX-License-Identifier: MIT
// Package: smallworld/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`, e.g.
//       fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewVertices)
//   • Validation order: size first (ErrTooFewVertices), then RNG presence
//     (ErrNeedRandSource).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than the
// allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor (Star) requires
// a non-nil *rand.Rand in the resolved builderConfig (WithSeed/WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that BuildGraph received an unusable
// constructor (nil).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownTopology indicates that ByName received a name outside Topologies().
var ErrUnknownTopology = errors.New("builder: unknown topology")
