// File: builder_impl_test.go
// Package builder_test contains functional tests for all Constructor
// implementations in the builder package, verifying topology, counts,
// degrees and boundary behavior.
package builder_test

import (
	"bytes"
	"log/slog"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smallworld/builder"
	"github.com/katalvlaran/smallworld/core"
)

// degrees returns label → degree for every vertex of g.
func degrees(t *testing.T, g *core.Graph) map[string]int {
	t.Helper()
	out := make(map[string]int)
	for v := range g.Vertices() {
		d, err := g.Degree(v)
		require.NoError(t, err)
		out[v] = d
	}
	return out
}

// hasEdge fails the test if either endpoint is absent.
func hasEdge(t *testing.T, g *core.Graph, u, v string) bool {
	t.Helper()
	ok, err := g.HasEdge(u, v)
	require.NoError(t, err)
	return ok
}

// build runs a single constructor with optional builder options.
func build(t *testing.T, c builder.Constructor, opts ...builder.BuilderOption) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(opts, c)
	require.NoError(t, err)
	return g
}

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name:  "Complete(4)",
			ctor:  builder.Complete(4),
			wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for v, d := range degrees(t, g) {
					assert.Equal(t, 3, d, "degree of %s", v)
				}
			},
		},
		{
			name:  "Complete(1)",
			ctor:  builder.Complete(1),
			wantV: 1, wantE: 0,
		},
		{
			name:  "Ring(5)",
			ctor:  builder.Ring(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for v, d := range degrees(t, g) {
					assert.Equal(t, 2, d, "degree of %s", v)
				}
				assert.True(t, hasEdge(t, g, "v4", "v0"), "closing edge")
			},
		},
		{
			name:  "Ring(1)",
			ctor:  builder.Ring(1),
			wantV: 1, wantE: 0,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.False(t, hasEdge(t, g, "v0", "v0"), "no self-loop on a single-vertex ring")
			},
		},
		{
			name:  "Ring(2)",
			ctor:  builder.Ring(2),
			wantV: 2, wantE: 1,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, hasEdge(t, g, "v0", "v1"))
			},
		},
		{
			name:  "Grid(1)",
			ctor:  builder.Grid(1),
			wantV: 1, wantE: 0,
		},
		{
			name:  "Grid(3)",
			ctor:  builder.Grid(3),
			wantV: 9, wantE: 12,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				deg := degrees(t, g)
				for _, corner := range []string{"r0c0", "r0c2", "r2c0", "r2c2"} {
					assert.Equal(t, 2, deg[corner], "corner %s", corner)
				}
				for _, border := range []string{"r0c1", "r1c0", "r1c2", "r2c1"} {
					assert.Equal(t, 3, deg[border], "border %s", border)
				}
				assert.Equal(t, 4, deg["r1c1"])
				// closures along the last column and last row
				assert.True(t, hasEdge(t, g, "r1c2", "r2c2"))
				assert.True(t, hasEdge(t, g, "r2c1", "r2c2"))
				// no wraparound
				assert.False(t, hasEdge(t, g, "r0c0", "r0c2"))
				assert.False(t, hasEdge(t, g, "r0c0", "r2c0"))
			},
		},
		{
			name:  "Grid(5)",
			ctor:  builder.Grid(5),
			wantV: 25, wantE: 40,
		},
		{
			name:  "SecondLevelRing(3)",
			ctor:  builder.SecondLevelRing(3),
			wantV: 3, wantE: 3,
		},
		{
			name:  "SecondLevelRing(4)",
			ctor:  builder.SecondLevelRing(4),
			wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for v, d := range degrees(t, g) {
					assert.Equal(t, 3, d, "K4 degree of %s", v)
				}
			},
		},
		{
			name:  "SecondLevelRing(8)",
			ctor:  builder.SecondLevelRing(8),
			wantV: 8, wantE: 16,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for v, d := range degrees(t, g) {
					assert.Equal(t, 4, d, "degree of %s", v)
				}
				// seam closure edges
				for _, e := range [][2]string{{"v6", "v7"}, {"v7", "v0"}, {"v6", "v0"}, {"v7", "v1"}} {
					assert.True(t, hasEdge(t, g, e[0], e[1]), "seam %s–%s", e[0], e[1])
				}
				assert.False(t, hasEdge(t, g, "v0", "v3"))
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := build(t, tc.ctor)
			assert.Equal(t, tc.wantV, g.VertexCount(), "vertex count")
			assert.Equal(t, tc.wantE, g.EdgeCount(), "edge count")
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

// TestCompleteEdgeFormula checks n(n-1)/2 across sizes.
func TestCompleteEdgeFormula(t *testing.T) {
	for n := 1; n <= 12; n++ {
		g := build(t, builder.Complete(n))
		require.Equal(t, n*(n-1)/2, g.EdgeCount(), "K_%d", n)
		for v, d := range degrees(t, g) {
			require.Equal(t, n-1, d, "K_%d degree of %s", n, v)
		}
	}
}

// TestRingDegrees checks every ring with n ≥ 3 is 2-regular with n edges.
func TestRingDegrees(t *testing.T) {
	for n := 3; n <= 20; n++ {
		g := build(t, builder.Ring(n))
		require.Equal(t, n, g.EdgeCount(), "C_%d", n)
		for v, d := range degrees(t, g) {
			require.Equal(t, 2, d, "C_%d degree of %s", n, v)
		}
	}
}

// TestBuilders_TooFewVertices asserts size validation across constructors.
func TestBuilders_TooFewVertices(t *testing.T) {
	for name, ctor := range map[string]builder.Constructor{
		"Complete(0)":        builder.Complete(0),
		"Ring(0)":            builder.Ring(0),
		"Grid(0)":            builder.Grid(0),
		"SecondLevelRing(2)": builder.SecondLevelRing(2),
		"Star(1)":            builder.Star(1),
	} {
		_, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, ctor)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}
}

// TestBuildGraph_NilConstructor guards the orchestrator.
func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Ring(3), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

// TestBuildGraph_Composition applies two constructors onto one graph.
func TestBuildGraph_Composition(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Ring(4), builder.Grid(2))
	require.NoError(t, err)
	assert.Equal(t, 8, g.VertexCount())
	assert.Equal(t, 8, g.EdgeCount())
}

// TestStar_NeedsRand verifies that Star refuses to run without an RNG.
func TestStar_NeedsRand(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Star(5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

// TestStar_Seeded asserts exact edges for a given seed.
func TestStar_Seeded(t *testing.T) {
	const (
		size = 10
		seed = 42
	)
	wantHub := 1 + rand.New(rand.NewSource(seed)).Intn(size-1)

	var gotHub int
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	g := build(t, builder.Star(size),
		builder.WithSeed(seed),
		builder.WithLogger(logger),
		builder.WithHubObserver(func(h int) { gotHub = h }),
	)

	require.Equal(t, wantHub, gotHub)
	assert.Contains(t, logs.String(), "star hub selected")
	assert.Contains(t, logs.String(), "hub="+strconv.Itoa(wantHub))

	assert.Equal(t, size, g.VertexCount())
	assert.Equal(t, size-1, g.EdgeCount())
	hubLabel := builder.LinearLabel(wantHub)
	for v, d := range degrees(t, g) {
		if v == hubLabel {
			assert.Equal(t, size-1, d, "hub degree")
			continue
		}
		assert.Equal(t, 1, d, "leaf %s degree", v)
		assert.True(t, hasEdge(t, g, hubLabel, v), "spoke %s–%s", hubLabel, v)
	}
}

// TestStar_HubRange verifies hub ∈ [1, s-1] across many draws.
func TestStar_HubRange(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		var hub int
		g := build(t, builder.Star(2+i%7), builder.WithRand(r), builder.WithHubObserver(func(h int) { hub = h }))
		require.GreaterOrEqual(t, hub, 1)
		require.Less(t, hub, g.VertexCount())
	}
}

// TestStar_Reproducible verifies identical graphs for identical seeds.
func TestStar_Reproducible(t *testing.T) {
	a := build(t, builder.Star(30), builder.WithSeed(99))
	b := build(t, builder.Star(30), builder.WithSeed(99))
	assert.Equal(t, a.String(), b.String())
}

// TestIDScheme_Custom verifies linear constructors honor WithSymbNumb.
func TestIDScheme_Custom(t *testing.T) {
	g := build(t, builder.Ring(3), builder.WithSymbNumb("n"))
	assert.Equal(t, []string{"n0", "n1", "n2"}, g.SortedVertices())
}
