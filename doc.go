// Package smallworld builds undirected graphs, measures their shortest-path
// structure, and reports small-world metrics.
//
// What is in the box:
//
//	core/     - set-based undirected Graph, thread-safe, self-loops allowed
//	bfs/      - PathFinder: single-source BFS distances and paths
//	builder/  - topologies: Complete, Ring, Grid, SecondLevelRing, Star
//	metrics/  - AverageDegree, AverageLength (parallel BFS), Summarize
//	graphio/  - delimited edge-list ingestion, adjacency and edge-pair dumps
//	config/   - run settings, defaults plus YAML file
//	cmd/smallworld - gen / load / export command line
//
// Quick example:
//
//	g, _ := builder.BuildGraph(nil, builder.SecondLevelRing(12))
//	avg, _ := metrics.AverageLength(g)
//
//	v0───v1───v2───v3 ...
//	  ╲_______╱ ╲_______╱
//
// is a ring whose vertices also link to their second neighbors.
//
//	go get github.com/katalvlaran/smallworld
package smallworld
