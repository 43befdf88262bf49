package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/smallworld/core"
)

// maxLineBytes bounds a single input line; adjacency lines of hub vertices
// can be long.
const maxLineBytes = 4 << 20

// Read builds a graph from a delimited adjacency stream. Every line is split
// on delimiter (a literal string, not a pattern); an edge joins the first
// token to each following token. A line holding one token adds that vertex
// alone; blank lines are skipped. Trailing empty tokens are dropped, so
// "A,B," is the edge A–B and an adjacency dump ending in a space reads back.
// Other tokens are not trimmed: an empty token before a non-empty one is an
// empty label and fails with core.ErrEmptyVertexID.
func Read(r io.Reader, delimiter string) (*core.Graph, error) {
	if delimiter == "" {
		return nil, ErrEmptyDelimiter
	}

	g := core.NewGraph()
	err := scanLines(r, func(line string) error {
		names := trimTrailingEmpty(strings.Split(line, delimiter))
		if len(names) == 0 {
			return nil
		}
		if len(names) == 1 {
			return g.AddVertex(names[0])
		}
		for _, w := range names[1:] {
			if err := g.AddEdge(names[0], w); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return g, nil
}

// ReadFile opens filename and reads it with Read.
func ReadFile(filename, delimiter string) (*core.Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	return Read(f, delimiter)
}

// ReadEdgePairs parses the dump written by WriteEdgePairs: one "u->v:" per
// line. Blank lines are skipped; anything else fails with ErrMalformedLine.
func ReadEdgePairs(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	err := scanLines(r, func(line string) error {
		if line == "" {
			return nil
		}
		body, ok := strings.CutSuffix(line, ":")
		if !ok {
			return fmt.Errorf("%w: missing trailing ':' in %q", ErrMalformedLine, line)
		}
		u, v, ok := strings.Cut(body, "->")
		if !ok || u == "" || v == "" {
			return fmt.Errorf("%w: want \"u->v:\", got %q", ErrMalformedLine, line)
		}

		return g.AddEdge(u, v)
	})
	if err != nil {
		return nil, err
	}

	return g, nil
}

// trimTrailingEmpty drops the empty tokens at the end of names.
func trimTrailingEmpty(names []string) []string {
	for len(names) > 0 && names[len(names)-1] == "" {
		names = names[:len(names)-1]
	}

	return names
}

// scanLines feeds fn every line of r, prefixing fn errors with the line number.
func scanLines(r io.Reader, fn func(line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for n := 1; sc.Scan(); n++ {
		if err := fn(sc.Text()); err != nil {
			return fmt.Errorf("graphio: line %d: %w", n, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("graphio: read: %w", err)
	}

	return nil
}
