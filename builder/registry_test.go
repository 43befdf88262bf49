package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smallworld/builder"
)

func TestByName(t *testing.T) {
	assert.Equal(t, []string{"complete", "grid", "ring", "second-ring", "star"}, builder.Topologies())

	wantEdges := map[string]int{
		"complete":    10,
		"ring":        5,
		"grid":        40,
		"second-ring": 10,
		"star":        4,
	}
	for name, want := range wantEdges {
		ctor, err := builder.ByName(name, 5)
		require.NoError(t, err, name)
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(3)}, ctor)
		require.NoError(t, err, name)
		assert.Equal(t, want, g.EdgeCount(), name)
	}

	_, err := builder.ByName("RING", 3)
	require.NoError(t, err, "names are case-insensitive")

	for name, size := range map[string]int{
		"complete":    0,
		"ring":        0,
		"grid":        0,
		"second-ring": 2,
		"star":        1,
	} {
		_, err := builder.ByName(name, size)
		require.ErrorIs(t, err, builder.ErrTooFewVertices, "%s(%d)", name, size)
	}

	_, err = builder.ByName("torus", 3)
	require.ErrorIs(t, err, builder.ErrUnknownTopology)
	assert.Contains(t, err.Error(), "second-ring")
}
