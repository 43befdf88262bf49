package metrics

import (
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/smallworld/bfs"
	"github.com/katalvlaran/smallworld/core"
)

// sourceTotal is the contribution of one BFS source.
type sourceTotal struct {
	sum   int
	pairs int
}

// measureFn folds the PathFinder of order[k] into its sourceTotal.
type measureFn func(order []string, k int, pf *bfs.PathFinder) (sourceTotal, error)

// AverageLength returns the average shortest-path length of g.
//
// One BFS runs per vertex; runs are spread over at most Options.Concurrency
// goroutines and each writes only its own slot, so the result does not
// depend on scheduling.
//
// Errors:
//   - ErrGraphNil, ErrOptionViolation.
//   - ErrUndefinedMetric (wrapped) when V ≤ 1, or when the clean
//     aggregation finds no reachable pair.
//   - ErrDisconnected (wrapped) when the legacy aggregation meets an
//     unreachable pair.
//   - ctx.Err() on cancellation.
//
// Complexity: O(V·(V+E)) time, O(V+E) extra memory per running search.
func AverageLength(g *core.Graph, opts ...Option) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return 0, err
	}

	order := g.SortedVertices()
	n := len(order)
	if n <= 1 {
		return 0, fmt.Errorf("%w: average length needs at least 2 vertices, have %d", ErrUndefinedMetric, n)
	}

	measure := measureClean
	if o.Aggregation == AggregationLegacy {
		measure = measureLegacy
	}
	totals, err := fanOut(o, g, order, measure)
	if err != nil {
		return 0, err
	}

	var avg float64
	switch o.Aggregation {
	case AggregationLegacy:
		avg, err = legacyMean(totals, n)
	default:
		avg, err = cleanMean(totals)
	}
	if err != nil {
		return 0, err
	}
	o.Logger.LogAttrs(o.Ctx, slog.LevelDebug, "average length computed",
		slog.String("aggregation", o.Aggregation.String()),
		slog.Int("vertices", n),
		slog.Float64("value", avg),
	)

	return avg, nil
}

// fanOut runs one BFS per vertex of order and returns the per-source totals
// indexed like order.
func fanOut(o Options, g *core.Graph, order []string, measure measureFn) ([]sourceTotal, error) {
	totals := make([]sourceTotal, len(order))
	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Concurrency)

	for k := range order {
		if ctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			pf, err := bfs.NewPathFinder(g, order[k], bfs.WithContext(ctx))
			if err != nil {
				return err
			}
			t, err := measure(order, k, pf)
			if err != nil {
				return err
			}
			totals[k] = t

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	// a cancellation observed only by the loop above leaves slots unfilled
	if err := o.Ctx.Err(); err != nil {
		return nil, err
	}

	return totals, nil
}

// measureClean sums distances from order[k] to every other reached vertex.
func measureClean(order []string, k int, pf *bfs.PathFinder) (sourceTotal, error) {
	var t sourceTotal
	for _, v := range pf.Order() {
		if v == order[k] {
			continue
		}
		d, _ := pf.DistanceTo(v)
		t.sum += d
		t.pairs++
	}

	return t, nil
}

// measureLegacy sums distances from order[k] to order[0..k-1], stopping at
// the source itself.
func measureLegacy(order []string, k int, pf *bfs.PathFinder) (sourceTotal, error) {
	var t sourceTotal
	for _, v := range order {
		if v == order[k] {
			break
		}
		d, ok := pf.DistanceTo(v)
		if !ok {
			return t, fmt.Errorf("%w: no path between %q and %q", ErrDisconnected, order[k], v)
		}
		t.sum += d
		t.pairs++
	}

	return t, nil
}

// cleanMean divides the total distance by the number of reachable pairs.
func cleanMean(totals []sourceTotal) (float64, error) {
	var sum, pairs int
	for _, t := range totals {
		sum += t.sum
		pairs += t.pairs
	}
	if pairs == 0 {
		return 0, fmt.Errorf("%w: no pair of distinct vertices is connected", ErrUndefinedMetric)
	}

	return float64(sum) / float64(pairs), nil
}

// legacyMean integer-divides each partial sum by n-1 before adding it to the
// grand total, then divides by the number of pairs visited.
func legacyMean(totals []sourceTotal, n int) (float64, error) {
	var grand float64
	var pairs int
	for _, t := range totals {
		grand += float64(t.sum / (n - 1))
		pairs += t.pairs
	}
	if pairs == 0 {
		return 0, fmt.Errorf("%w: no pair visited", ErrUndefinedMetric)
	}

	return grand / float64(pairs), nil
}

