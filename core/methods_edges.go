// File: methods_edges.go
// Role: Edge lifecycle & membership.
//
// Invariants maintained here:
//   - Symmetry: every insertion and removal touches both neighbor sets.
//   - edgeCount changes only when membership actually changes.
package core

// AddEdge inserts the undirected edge v–w, creating missing endpoints.
//
// Implementation:
//   - Stage 1: Validate non-empty labels (ErrEmptyVertexID).
//   - Stage 2: Under the write lock, ensure both endpoints exist.
//   - Stage 3: If w is not yet in v's set, bump edgeCount and mirror the
//     membership into both sets (a self-loop writes one entry).
//
// Behavior highlights:
//   - Idempotent: a repeated AddEdge leaves sets and edgeCount unchanged.
//   - AddEdge(v,v) counts exactly one edge and makes v its own neighbor.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(v, w string) error {
	if v == "" || w == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(v)
	g.ensureVertex(w)
	if _, exists := g.adjacency[v][w]; exists {
		return nil // parallel edges collapse
	}
	g.edgeCount++
	g.adjacency[v][w] = struct{}{}
	g.adjacency[w][v] = struct{}{}

	return nil
}

// RemoveEdge deletes the undirected edge v–w if present.
// Removing an absent edge between existing vertices is a no-op.
//
// Errors:
//   - ErrVertexNotFound (wrapped) if either endpoint is absent.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(v, w string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.requireVertices(v, w); err != nil {
		return err
	}
	if _, exists := g.adjacency[v][w]; !exists {
		return nil
	}
	delete(g.adjacency[v], w)
	delete(g.adjacency[w], v)
	g.edgeCount--

	return nil
}

// HasEdge reports whether the edge v–w exists. By symmetry
// HasEdge(v,w) == HasEdge(w,v).
//
// Errors:
//   - ErrVertexNotFound (wrapped) if either endpoint is absent.
//
// Complexity: O(1).
func (g *Graph) HasEdge(v, w string) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.requireVertices(v, w); err != nil {
		return false, err
	}
	_, exists := g.adjacency[v][w]

	return exists, nil
}

// EdgeCount returns the number of distinct undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// requireVertices fails on the first absent label. Caller holds g.mu.
func (g *Graph) requireVertices(ids ...string) error {
	for _, id := range ids {
		if _, ok := g.adjacency[id]; !ok {
			return vertexNotFound(id)
		}
	}

	return nil
}
