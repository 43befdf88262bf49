package metrics

import (
	"fmt"

	"github.com/katalvlaran/smallworld/core"
)

// AverageDegree returns the sum of vertex degrees divided by the vertex count.
// A self-loop contributes one to the degree of its vertex.
// Returns ErrGraphNil, or ErrUndefinedMetric (wrapped) for an empty graph.
// Complexity: O(V).
func AverageDegree(g *core.Graph) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}

	var sum, n int
	for v := range g.Vertices() {
		d, err := g.Degree(v)
		if err != nil {
			return 0, fmt.Errorf("metrics: degree of %q: %w", v, err)
		}
		sum += d
		n++
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: average degree of an empty graph", ErrUndefinedMetric)
	}

	return float64(sum) / float64(n), nil
}
