// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() yields labels in map order (unspecified); SortedVertices() is
//     the stable enumeration surface for rendering and exports.
//
// Concurrency:
//   - All methods take g.mu; iterators snapshot under the read lock and yield
//     without holding it, so a consumer may mutate the graph mid-iteration.
package core

import (
	"iter"
	"sort"
)

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under the write lock, allocate an empty neighbor set if absent.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(id)

	return nil
}

// ensureVertex allocates an empty neighbor set for id. Caller holds g.mu.
func (g *Graph) ensureVertex(id string) {
	if _, exists := g.adjacency[id]; !exists {
		g.adjacency[id] = make(map[string]struct{})
	}
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.adjacency[id]

	return exists
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Degree returns the size of id's neighbor set. A self-loop contributes one.
//
// Errors:
//   - ErrVertexNotFound (wrapped) if id is absent.
//
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, vertexNotFound(id)
	}

	return len(nbrs), nil
}

// Vertices returns a lazy sequence over all vertex labels.
//
// The sequence is restartable: each range takes a fresh snapshot of the
// vertex set. Order follows the underlying map and is unspecified; callers
// that need a stable order use SortedVertices.
func (g *Graph) Vertices() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, id := range g.snapshotVertices() {
			if !yield(id) {
				return
			}
		}
	}
}

// SortedVertices returns all vertex labels sorted ascending.
// Complexity: O(V·log V).
func (g *Graph) SortedVertices() []string {
	ids := g.snapshotVertices()
	sort.Strings(ids)

	return ids
}

// snapshotVertices copies the vertex labels under the read lock.
func (g *Graph) snapshotVertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}

	return ids
}

// AdjacentTo returns a lazy sequence over id's neighbors in unspecified order.
// The vertex is validated eagerly; the neighbor snapshot is taken on each range.
//
// Errors:
//   - ErrVertexNotFound (wrapped) if id is absent.
func (g *Graph) AdjacentTo(id string) (iter.Seq[string], error) {
	if !g.HasVertex(id) {
		return nil, vertexNotFound(id)
	}

	return func(yield func(string) bool) {
		g.mu.RLock()
		nbrs := make([]string, 0, len(g.adjacency[id]))
		for w := range g.adjacency[id] {
			nbrs = append(nbrs, w)
		}
		g.mu.RUnlock()
		for _, w := range nbrs {
			if !yield(w) {
				return
			}
		}
	}, nil
}

// NeighborIDs returns the neighbors of id sorted ascending.
// A self-loop lists id itself once.
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	nbrs, ok := g.adjacency[id]
	if !ok {
		g.mu.RUnlock()
		return nil, vertexNotFound(id)
	}
	out := make([]string, 0, len(nbrs))
	for w := range nbrs {
		out = append(out, w)
	}
	g.mu.RUnlock()
	sort.Strings(out)

	return out, nil
}
