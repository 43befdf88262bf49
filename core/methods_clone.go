// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: every neighbor set is reallocated,
// so mutating the clone never affects the source and vice versa.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		adjacency: make(map[string]map[string]struct{}, len(g.adjacency)),
		edgeCount: g.edgeCount,
	}
	var (
		id   string
		w    string
		nbrs map[string]struct{}
	)
	for id, nbrs = range g.adjacency {
		set := make(map[string]struct{}, len(nbrs))
		for w = range nbrs {
			set[w] = struct{}{}
		}
		clone.adjacency[id] = set
	}

	return clone
}

// Clear resets the graph to an empty state.
// Complexity: O(1) for map reallocation.
func (g *Graph) Clear() {
	g.mu.Lock()
	g.adjacency = make(map[string]map[string]struct{})
	g.edgeCount = 0
	g.mu.Unlock()
}
