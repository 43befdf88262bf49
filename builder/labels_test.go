package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/smallworld/builder"
)

// TestLabelSpace verifies the naming scheme with table-driven cases and
// panics on invalid coordinates.
func TestLabelSpace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  func() string
		want string
	}{
		{"Linear_zero", func() string { return builder.LinearLabel(0) }, "v0"},
		{"Linear_multi", func() string { return builder.LinearLabel(123) }, "v123"},
		{"Grid_origin", func() string { return builder.GridLabel(0, 0) }, "r0c0"},
		{"Grid_cell", func() string { return builder.GridLabel(2, 13) }, "r2c13"},
		{"SymbolNumber", func() string { return builder.SymbolNumberIDFn("n")(9) }, "n9"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.got())
		})
	}

	assert.Panics(t, func() { builder.LinearLabel(-1) })
	assert.Panics(t, func() { builder.GridLabel(-1, 0) })
	assert.Panics(t, func() { builder.GridLabel(0, -1) })
	assert.Panics(t, func() { builder.SymbolNumberIDFn("n")(-1) })
}

// TestLabelSpace_Injective spot-checks that distinct grid cells get distinct labels.
func TestLabelSpace_Injective(t *testing.T) {
	seen := make(map[string][2]int)
	for r := 0; r < 15; r++ {
		for c := 0; c < 15; c++ {
			l := builder.GridLabel(r, c)
			prev, dup := seen[l]
			assert.False(t, dup, "label %s reused by %v and (%d,%d)", l, prev, r, c)
			seen[l] = [2]int{r, c}
		}
	}
}
