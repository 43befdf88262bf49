// File: view.go
// Role: Non-mutating graph views for display and debugging.

package core

import "strings"

// String renders the adjacency list, one vertex per line:
//
//	"<label>: <neighbor> <neighbor> ... \n"
//
// This is a display format, not a machine format. Vertices and neighbors are
// emitted in sorted order so output is stable between runs.
//
// Complexity: O(V·log V + E·log d).
func (g *Graph) String() string {
	var sb strings.Builder
	for _, v := range g.SortedVertices() {
		nbrs, err := g.NeighborIDs(v)
		if err != nil {
			// v was removed concurrently by Clear; skip it.
			continue
		}
		sb.WriteString(v)
		sb.WriteString(": ")
		for _, w := range nbrs {
			sb.WriteString(w)
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Edges returns every undirected edge once as a [2]string{u, v} with u <= v,
// sorted by (u, v). A self-loop appears as {v, v}.
// Complexity: O(E·log E).
func (g *Graph) Edges() [][2]string {
	var out [][2]string
	for _, u := range g.SortedVertices() {
		nbrs, err := g.NeighborIDs(u)
		if err != nil {
			continue
		}
		for _, w := range nbrs {
			if u <= w {
				out = append(out, [2]string{u, w})
			}
		}
	}

	return out
}
