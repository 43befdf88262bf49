// Package core provides the undirected, set-based Graph used by every other
// smallworld package.
//
// The Graph G = (V,E) stores, for every vertex label, the set of its
// neighbor labels plus a counter of distinct undirected edges:
//
//   - Undirected edges only: AddEdge(v,w) mirrors w into v's set and v into w's set.
//   - No parallel edges: adding an existing edge is a no-op (idempotent).
//   - Self-loops are legal: AddEdge(v,v) makes v its own neighbor and counts one edge.
//   - Endpoints are auto-created by AddEdge.
//   - A single sync.RWMutex guards the adjacency map and the edge counter, so a
//     graph that is no longer mutated can be read from many goroutines.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error               // O(1)
//	HasVertex(id string) bool                // O(1)
//
//	// Edge lifecycle
//	AddEdge(v, w string) error               // O(1)
//	RemoveEdge(v, w string) error            // O(1)
//	HasEdge(v, w string) (bool, error)       // O(1)
//
//	// Query
//	Degree(id string) (int, error)           // O(1), self-loop counts once
//	Vertices() iter.Seq[string]              // lazy, restartable, unspecified order
//	SortedVertices() []string                // O(V·log V)
//	AdjacentTo(id string) (iter.Seq[string], error)
//	NeighborIDs(id string) ([]string, error) // O(d·log d), sorted
//	VertexCount() int, EdgeCount() int       // O(1)
//
//	// Copy & display
//	Clone() *Graph                           // O(V+E), deep copy
//	String() string                          // "<label>: <n1> <n2> ... \n" per vertex
//	Edges() [][2]string                      // each edge once, u <= v, sorted
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex label
//	ErrVertexNotFound – operation referenced a vertex absent from the graph
//
// Both are sentinels; returned errors wrap them together with the offending
// label, so callers branch with errors.Is.
package core
