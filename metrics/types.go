// Package metrics provides options and error definitions for the
// graph-wide measurements of smallworld.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
)

// Sentinel errors for metric computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("metrics: graph is nil")

	// ErrUndefinedMetric is returned when a metric has no value for the
	// given graph (empty graph, single vertex, no reachable pair).
	ErrUndefinedMetric = errors.New("metrics: metric undefined")

	// ErrDisconnected is returned by the legacy aggregation when a counted
	// pair has no path between its vertices.
	ErrDisconnected = errors.New("metrics: graph is disconnected")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("metrics: invalid option supplied")
)

// Aggregation selects how AverageLength folds per-source distances.
type Aggregation int

const (
	// AggregationClean averages the shortest distance over every ordered
	// pair (u,v), u≠v, with v reachable from u.
	AggregationClean Aggregation = iota

	// AggregationLegacy walks vertices in sorted order and, for the k-th
	// vertex, sums distances to the k vertices before it. Each partial sum is
	// integer-divided by V-1; the grand total is divided by the number of
	// pairs visited.
	AggregationLegacy
)

// String returns the lower-case name of a.
func (a Aggregation) String() string {
	switch a {
	case AggregationClean:
		return "clean"
	case AggregationLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("aggregation(%d)", int(a))
	}
}

// ParseAggregation maps "clean" or "legacy" to its Aggregation.
func ParseAggregation(s string) (Aggregation, error) {
	switch s {
	case "clean", "":
		return AggregationClean, nil
	case "legacy":
		return AggregationLegacy, nil
	default:
		return 0, fmt.Errorf("%w: unknown aggregation %q", ErrOptionViolation, s)
	}
}

// Option configures metric computation via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation
// when the metric is computed.
type Option func(*Options)

// Options holds the knobs of AverageLength and Summarize.
type Options struct {
	// Ctx allows cancellation and deadlines of the BFS fan-out.
	Ctx context.Context

	// Concurrency bounds the number of BFS runs in flight.
	Concurrency int

	// Aggregation selects the averaging rule.
	Aggregation Aggregation

	// Logger receives debug records about the computation.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with:
//   - Context.Background()
//   - Concurrency = GOMAXPROCS
//   - AggregationClean
//   - a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Concurrency: runtime.GOMAXPROCS(0),
		Aggregation: AggregationClean,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithConcurrency bounds the parallel BFS runs.
//
//	n > 0: at most n searches at once
//	n == 0: GOMAXPROCS
//	n < 0: invalid option → ErrOptionViolation
func WithConcurrency(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: concurrency cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Concurrency = runtime.GOMAXPROCS(0)
		default:
			o.Concurrency = n
		}
	}
}

// WithAggregation selects the averaging rule of AverageLength.
func WithAggregation(a Aggregation) Option {
	return func(o *Options) {
		switch a {
		case AggregationClean, AggregationLegacy:
			o.Aggregation = a
		default:
			o.err = fmt.Errorf("%w: unknown %s", ErrOptionViolation, a)
		}
	}
}

// WithLogger routes debug records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// resolve applies opts over the defaults.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
