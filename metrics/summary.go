package metrics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/smallworld/core"
)

// Summary collects the graph-wide numbers reported by the CLI.
// A metric whose Defined flag is false has no value for this graph.
type Summary struct {
	Vertices int
	Edges    int

	AverageDegree        float64
	AverageDegreeDefined bool

	AverageLength        float64
	AverageLengthDefined bool
	Aggregation          Aggregation
}

// Summarize computes every metric of g. Undefined metrics are flagged in
// the Summary rather than returned as errors; any other failure (bad options,
// cancellation, ErrDisconnected under legacy aggregation) is returned.
func Summarize(g *core.Graph, opts ...Option) (*Summary, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	s := &Summary{
		Vertices:    g.VertexCount(),
		Edges:       g.EdgeCount(),
		Aggregation: o.Aggregation,
	}

	s.AverageDegree, err = AverageDegree(g)
	switch {
	case err == nil:
		s.AverageDegreeDefined = true
	case !errors.Is(err, ErrUndefinedMetric):
		return nil, err
	}

	s.AverageLength, err = AverageLength(g, opts...)
	switch {
	case err == nil:
		s.AverageLengthDefined = true
	case !errors.Is(err, ErrUndefinedMetric):
		return nil, err
	}

	return s, nil
}

// String renders s as "key: value" lines; undefined metrics print as "undefined".
func (s *Summary) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "vertices: %d\n", s.Vertices)
	fmt.Fprintf(&sb, "edges: %d\n", s.Edges)
	fmt.Fprintf(&sb, "average degree: %s\n", formatMetric(s.AverageDegree, s.AverageDegreeDefined))
	fmt.Fprintf(&sb, "average length (%s): %s\n", s.Aggregation, formatMetric(s.AverageLength, s.AverageLengthDefined))

	return sb.String()
}

func formatMetric(v float64, ok bool) string {
	if !ok {
		return "undefined"
	}

	return fmt.Sprintf("%.4f", v)
}
