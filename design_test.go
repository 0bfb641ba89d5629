package mirt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mirt"
)

// TestDimPairs pins the lexicographic pair ordering the design and
// Hessian layouts share.
func TestDimPairs(t *testing.T) {
	assert.Empty(t, mirt.DimPairs(1), "one dimension has no interaction pairs")
	assert.Equal(t, [][2]int{{0, 1}}, mirt.DimPairs(2))
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 2}}, mirt.DimPairs(3))
	assert.Len(t, mirt.DimPairs(5), 10, "C(5,2) pairs expected")
}

// TestBuildDesign_Columns verifies the fixed column contract:
// bias ∥ linear ∥ squared ∥ pairwise products, in pair-table order.
func TestBuildDesign_Columns(t *testing.T) {
	nodes := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		-1, 0.5, 2,
	})
	pairs := mirt.DimPairs(3)
	design := mirt.BuildDesign(nodes, pairs)

	rows, cols := design.Dims()
	require.Equal(t, 2, rows)
	require.Equal(t, 1+3+3+3, cols, "1 bias + D linear + D squared + C(D,2) pairwise")

	// Row 0: node (1, 2, 3).
	want := []float64{1, 1, 2, 3, 1, 4, 9, 2, 3, 6}
	for c, w := range want {
		assert.InDelta(t, w, design.At(0, c), 1e-15, "row 0 column %d", c)
	}
	// Row 1: node (-1, 0.5, 2).
	want = []float64{1, -1, 0.5, 2, 1, 0.25, 4, -0.5, -2, 1}
	for c, w := range want {
		assert.InDelta(t, w, design.At(1, c), 1e-15, "row 1 column %d", c)
	}
}

// TestBuildDesign_OneDim verifies the degenerate layout with no
// interaction columns.
func TestBuildDesign_OneDim(t *testing.T) {
	nodes := mat.NewDense(3, 1, []float64{-2, 0, 2})
	design := mirt.BuildDesign(nodes, mirt.DimPairs(1))

	_, cols := design.Dims()
	assert.Equal(t, 3, cols, "bias + linear + squared only")
	assert.Equal(t, 1.0, design.At(0, 0))
	assert.Equal(t, -2.0, design.At(0, 1))
	assert.Equal(t, 4.0, design.At(0, 2))
}

// TestFixedCounts pins the position-tied identifiability schedule.
func TestFixedCounts(t *testing.T) {
	assert.Equal(t, []int{0, 0, 0, 1, 2}, mirt.FixedCounts(3, 5),
		"last item fixes dim-1 dimensions, decreasing leftward to zero")
	assert.Equal(t, []int{0, 0, 0, 0}, mirt.FixedCounts(1, 4),
		"one dimension fixes nothing")
	assert.Equal(t, []int{0, 1}, mirt.FixedCounts(2, 2))
}

// TestZeroFixed verifies the triangular zero pattern: zeroing by the
// schedule equals zeroing the last i entries of row i for i = dim−1…1.
func TestZeroFixed(t *testing.T) {
	const dim, items = 3, 6
	slope := mat.NewDense(dim, items, nil)
	for d := 0; d < dim; d++ {
		for j := 0; j < items; j++ {
			slope.Set(d, j, 1)
		}
	}
	mirt.ZeroFixed(slope, mirt.FixedCounts(dim, items))

	for i := 1; i < dim; i++ {
		for j := 0; j < items; j++ {
			want := 1.0
			if j >= items-i {
				want = 0
			}
			assert.Equal(t, want, slope.At(i, j), "row %d item %d", i, j)
		}
	}
	for j := 0; j < items; j++ {
		assert.Equal(t, 1.0, slope.At(0, j), "row 0 is never fixed")
	}
}
