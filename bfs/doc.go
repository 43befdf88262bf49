// Package bfs provides the single-source breadth-first PathFinder over a
// core.Graph.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a source.
//   - NewPathFinder returns a PathFinder exposing:
//   - DistanceTo(v): shortest edge distance plus an explicit reached flag
//   - HasPathTo(v):  reachability
//   - PathTo(v):     one shortest path rebuilt from predecessor links
//   - Order():       visit sequence
//   - Unreached vertices are a normal outcome of disconnected graphs; they are
//     reported through the boolean of DistanceTo, never as distance 0.
//
// Determinism
//
//	Neighbors are expanded in core.NeighborIDs order (sorted), so the visit
//	sequence and the chosen predecessor of every vertex are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E·log d) (neighbor lists are sorted per dequeue)
//   - Memory: O(V)
//
// Usage
//
//	pf, err := bfs.NewPathFinder(g, "v0")
//	if err != nil {
//		// ErrGraphNil, core.ErrVertexNotFound, ErrOptionViolation, ctx or hook errors
//	}
//	if d, ok := pf.DistanceTo("v2"); ok {
//		fmt.Println(d)
//	}
//
// Options
//
//   - WithContext(ctx):  cancellation, checked once per dequeue.
//   - WithMaxDepth(d):   stop exploring beyond depth d (>0); 0 means no limit.
//   - WithOnVisit(fn):   hook during visit; returning an error aborts BFS.
package bfs
