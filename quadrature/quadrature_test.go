package quadrature_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mirt/quadrature"
)

// TestRule_BadPoints verifies that a non-positive point count errors.
func TestRule_BadPoints(t *testing.T) {
	_, _, err := quadrature.Rule(0)
	assert.ErrorIs(t, err, quadrature.ErrBadPoints, "n=0 must error ErrBadPoints")

	_, _, err = quadrature.Rule(-3)
	assert.ErrorIs(t, err, quadrature.ErrBadPoints, "negative n must error ErrBadPoints")
}

// TestRule_OnePoint verifies the degenerate single-node rule.
func TestRule_OnePoint(t *testing.T) {
	nodes, weights, err := quadrature.Rule(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, nodes, "one-point rule sits at the mean")
	assert.Equal(t, []float64{1}, weights, "one-point rule carries full mass")
}

// TestRule_Moments checks that the rule reproduces standard-normal moments:
// Σw = 1, Σw·x = 0, Σw·x² = 1, Σw·x⁴ = 3 (exact for n ≥ 3).
func TestRule_Moments(t *testing.T) {
	for _, n := range []int{3, 7, 11, 31} {
		nodes, weights, err := quadrature.Rule(n)
		require.NoError(t, err, "rule n=%d", n)
		require.Len(t, nodes, n)
		require.Len(t, weights, n)

		var m0, m1, m2, m4 float64
		for i := range nodes {
			m0 += weights[i]
			m1 += weights[i] * nodes[i]
			m2 += weights[i] * nodes[i] * nodes[i]
			m4 += weights[i] * math.Pow(nodes[i], 4)
		}
		assert.InDelta(t, 1.0, m0, 1e-12, "weights must sum to 1 (n=%d)", n)
		assert.InDelta(t, 0.0, m1, 1e-10, "first moment must vanish (n=%d)", n)
		assert.InDelta(t, 1.0, m2, 1e-10, "second moment must be 1 (n=%d)", n)
		assert.InDelta(t, 3.0, m4, 1e-8, "fourth moment must be 3 (n=%d)", n)
	}
}

// TestRule_Symmetry verifies nodes come out ascending and sign-symmetric
// with mirrored weights.
func TestRule_Symmetry(t *testing.T) {
	const n = 11
	nodes, weights, err := quadrature.Rule(n)
	require.NoError(t, err)

	for i := 1; i < n; i++ {
		assert.Less(t, nodes[i-1], nodes[i], "nodes must be strictly ascending")
	}
	for i := 0; i < n/2; i++ {
		assert.InDelta(t, -nodes[n-1-i], nodes[i], 1e-10, "nodes must mirror around 0")
		assert.InDelta(t, weights[n-1-i], weights[i], 1e-12, "weights must mirror")
	}
}

// TestGrid_BadInputs exercises the fail-fast validation paths.
func TestGrid_BadInputs(t *testing.T) {
	_, err := quadrature.Grid(0, quadrature.DefaultOptions())
	assert.ErrorIs(t, err, quadrature.ErrBadDim, "dim=0 must error ErrBadDim")

	opts := quadrature.DefaultOptions()
	opts.PointsPerDim = -1
	_, err = quadrature.Grid(2, opts)
	assert.ErrorIs(t, err, quadrature.ErrBadPoints, "negative points must error")

	opts = quadrature.Options{PointsPerDim: 100, MaxNodes: 50}
	_, err = quadrature.Grid(3, opts)
	assert.ErrorIs(t, err, quadrature.ErrGridTooLarge, "oversized grid must be rejected")
}

// TestGrid_Shape verifies tensor dimensions and total weight.
func TestGrid_Shape(t *testing.T) {
	opts := quadrature.Options{PointsPerDim: 5}
	grid, err := quadrature.Grid(3, opts)
	require.NoError(t, err)

	rows, cols := grid.Nodes.Dims()
	assert.Equal(t, 125, rows, "5³ grid points expected")
	assert.Equal(t, 3, cols, "one column per trait axis")
	assert.Equal(t, 125, grid.Len())

	var sum float64
	for i := 0; i < grid.Weights.Len(); i++ {
		sum += grid.Weights.AtVec(i)
	}
	assert.InDelta(t, 1.0, sum, 1e-12, "product weights must sum to 1")
}

// TestGrid_Ordering pins the odometer ordering: the last axis varies
// fastest, so the first PointsPerDim rows share coordinates on axis 0.
func TestGrid_Ordering(t *testing.T) {
	opts := quadrature.Options{PointsPerDim: 3}
	grid, err := quadrature.Grid(2, opts)
	require.NoError(t, err)

	nodes1, _, err := quadrature.Rule(3)
	require.NoError(t, err)

	for row := 0; row < 3; row++ {
		assert.Equal(t, nodes1[0], grid.Nodes.At(row, 0), "axis 0 holds while axis 1 cycles")
		assert.Equal(t, nodes1[row], grid.Nodes.At(row, 1), "axis 1 cycles through the 1-D rule")
	}
	assert.Equal(t, nodes1[1], grid.Nodes.At(3, 0), "axis 0 advances after a full axis-1 cycle")
}

// TestGrid_OneDim verifies the dim=1 grid equals the 1-D rule itself.
func TestGrid_OneDim(t *testing.T) {
	opts := quadrature.Options{PointsPerDim: 7}
	grid, err := quadrature.Grid(1, opts)
	require.NoError(t, err)

	nodes1, weights1, err := quadrature.Rule(7)
	require.NoError(t, err)
	for i := 0; i < 7; i++ {
		assert.Equal(t, nodes1[i], grid.Nodes.At(i, 0))
		assert.Equal(t, weights1[i], grid.Weights.AtVec(i))
	}
}
