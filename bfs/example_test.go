package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/smallworld/bfs"
	"github.com/katalvlaran/smallworld/core"
)

// ExampleNewPathFinder_gridTraversal demonstrates BFS layering on a 3×3 grid.
// We expect to see the start at "0_0", then its 2 neighbors {"0_1","1_0"}, then the next frontier, etc.
func ExampleNewPathFinder_gridTraversal() {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				_ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1))
			}
			if i+1 < 3 {
				_ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j))
			}
		}
	}

	pf, err := bfs.NewPathFinder(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Visit order follows non-decreasing Manhattan distance.
	fmt.Println(pf.Order())
	d, _ := pf.DistanceTo("2_2")
	fmt.Println("distance to 2_2:", d)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
	// distance to 2_2: 4
}

// ExamplePathFinder_PathTo finds the fewest-hop route between two routers.
func ExamplePathFinder_PathTo() {
	g := core.NewGraph()
	links := [][2]string{
		{"R1", "R2"}, {"R2", "R3"},
		{"R1", "R4"}, {"R4", "R5"},
		{"R2", "R5"}, {"R5", "R6"},
	}
	for _, e := range links {
		_ = g.AddEdge(e[0], e[1])
	}
	_ = g.AddVertex("R7") // unplugged

	pf, _ := bfs.NewPathFinder(g, "R1")
	path, _ := pf.PathTo("R6")
	fmt.Println(path)
	_, ok := pf.DistanceTo("R7")
	fmt.Println("R7 reachable:", ok)
	// Output:
	// [R1 R2 R5 R6]
	// R7 reachable: false
}
