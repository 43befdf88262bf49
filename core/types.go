// Package core defines the central Graph type and its sentinel errors.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex label is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex label is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Graph is an undirected graph keyed by vertex label.
//
// adjacency[v] is the neighbor set of v. The symmetry invariant
// w ∈ adjacency[v] ⇔ v ∈ adjacency[w] holds after every exported call,
// and every label that appears inside a neighbor set is itself a key.
// edgeCount is the number of distinct undirected edges, self-loops included.
type Graph struct {
	mu sync.RWMutex // guards adjacency and edgeCount

	adjacency map[string]map[string]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string]map[string]struct{}),
	}
}

// vertexNotFound wraps ErrVertexNotFound with the missing label.
func vertexNotFound(id string) error {
	return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
}
