package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/smallworld/core"
)

// WriteAdjacency writes the "<label>: <n1> <n2> ... " dump of g, one vertex
// per line in sorted order.
func WriteAdjacency(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	if _, err := io.WriteString(w, g.String()); err != nil {
		return fmt.Errorf("graphio: write adjacency: %w", err)
	}

	return nil
}

// WriteEdgePairs writes "u->v:" for every edge with u < v, sorted by (u, v).
// Self-loops are skipped.
func WriteEdgePairs(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}

	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		if e[0] == e[1] {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%s->%s:\n", e[0], e[1]); err != nil {
			return fmt.Errorf("graphio: write edge pairs: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("graphio: write edge pairs: %w", err)
	}

	return nil
}

// WriteEdgePairsFile creates (or truncates) filename and writes the edge-pair dump.
func WriteEdgePairsFile(filename string, g *core.Graph) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("graphio: %w", err)
	}
	if err := WriteEdgePairs(f, g); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
