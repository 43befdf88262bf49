// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/smallworld/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// PathFinder is the outcome of one single-source breadth-first search.
// It is computed eagerly by NewPathFinder and never refreshed: mutate the
// graph afterwards and the distances describe the old topology.
type PathFinder struct {
	source string
	order  []string
	depth  map[string]int
	parent map[string]string
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *PathFinder
}

// NewPathFinder runs breadth-first search on g from source and returns the
// per-vertex distances.
// Returns ErrGraphNil, core.ErrVertexNotFound (wrapped) for a missing source,
// ErrOptionViolation for bad options, context errors on cancellation, or any
// OnVisit error.
func NewPathFinder(g *core.Graph, source string, opts ...Option) (*PathFinder, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("bfs: source %q: %w", source, core.ErrVertexNotFound)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &PathFinder{
			source: source,
			order:  make([]string, 0, n),
			depth:  make(map[string]int, n),
			parent: make(map[string]string, n),
		},
	}

	// Seed queue with source (no parent)
	w.enqueue(source, 0, "")
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// enqueue marks id visited at depth d, records its parent, and adds it to the queue.
// The depth map doubles as the visited set.
func (w *walker) enqueue(id string, d int, parent string) {
	w.res.depth[id] = d
	if d > 0 {
		w.res.parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.order = append(w.res.order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors enqueues each unseen neighbor of item in sorted order,
// honoring MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
	}
	for _, nbr := range neighbors {
		if _, seen := w.res.depth[nbr]; !seen {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}

	return nil
}

// Source returns the start vertex.
func (p *PathFinder) Source() string { return p.source }

// DistanceTo returns the number of edges on a shortest path from the source
// to v. The boolean is false when v was not reached; the distance is then 0
// and must not be used.
func (p *PathFinder) DistanceTo(v string) (int, bool) {
	d, ok := p.depth[v]
	return d, ok
}

// HasPathTo reports whether v was reached from the source.
func (p *PathFinder) HasPathTo(v string) bool {
	_, ok := p.depth[v]
	return ok
}

// Order returns a copy of the visit sequence.
func (p *PathFinder) Order() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)

	return out
}

// Reached returns the number of vertices reached, the source included.
func (p *PathFinder) Reached() int { return len(p.order) }

// PathTo reconstructs a shortest path from the source to dest, both included.
// Returns ErrNoPath (wrapped) if dest was not reached.
func (p *PathFinder) PathTo(dest string) ([]string, error) {
	if _, ok := p.depth[dest]; !ok {
		return nil, fmt.Errorf("%w from %q to %q", ErrNoPath, p.source, dest)
	}
	// build reversed path
	path := make([]string, 0, p.depth[dest]+1)
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := p.parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
