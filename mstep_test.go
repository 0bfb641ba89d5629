package mirt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mirt"
)

// hessRow builds a single-item Hessian-values matrix with entries
// 1, 2, 3, … so the layout contract can be pinned by exact values:
// columns are [bias ∥ dim linear ∥ dim squared ∥ pairwise].
func hessRow(dim, pairs int) *mat.Dense {
	cols := 1 + 2*dim + pairs
	vals := make([]float64, cols)
	for c := range vals {
		vals[c] = float64(c + 1)
	}

	return mat.NewDense(1, cols, vals)
}

// TestItemHessian_FullBlock pins every entry of an unconstrained dim=3
// block: bias cross-terms on row/column 0, squared-term curvature on the
// diagonal, pairwise curvature symmetric off-diagonal.
func TestItemHessian_FullBlock(t *testing.T) {
	pairs := mirt.DimPairs(3)
	hv := hessRow(3, len(pairs))

	hess := mirt.ItemHessian(hv, 0, 4, 3, pairs)

	want := mat.NewDense(4, 4, []float64{
		1, 2, 3, 4,
		2, 5, 8, 9,
		3, 8, 6, 10,
		4, 9, 10, 7,
	})
	assert.True(t, mat.EqualApprox(hess, want, 1e-15), "got:\n%v", mat.Formatted(hess))
}

// TestItemHessian_Symmetry checks hess[p,q] == hess[q,p] across block
// sizes and dimensions.
func TestItemHessian_Symmetry(t *testing.T) {
	for _, dim := range []int{1, 2, 3, 4} {
		pairs := mirt.DimPairs(dim)
		hv := hessRow(dim, len(pairs))
		for fix := 0; fix < dim; fix++ {
			paramSize := dim + 1 - fix
			hess := mirt.ItemHessian(hv, 0, paramSize, dim, pairs)
			r, c := hess.Dims()
			require.Equal(t, paramSize, r)
			require.Equal(t, paramSize, c)
			for p := 0; p < r; p++ {
				for q := 0; q < c; q++ {
					assert.Equal(t, hess.At(q, p), hess.At(p, q),
						"dim=%d fix=%d entry (%d,%d)", dim, fix, p, q)
				}
			}
		}
	}
}

// TestItemHessian_ConstrainedStopsFilling verifies the fill stop: for a
// constrained item the first pair reaching outside the active block ends
// pairwise filling entirely, leaving later slots zero.
func TestItemHessian_ConstrainedStopsFilling(t *testing.T) {
	pairs := mirt.DimPairs(3) // (0,1), (0,2), (1,2)
	hv := hessRow(3, len(pairs))

	// fix=1 → paramSize=3: only pair (0,1) fits; (0,2) stops the fill.
	hess := mirt.ItemHessian(hv, 0, 3, 3, pairs)

	assert.Equal(t, 8.0, hess.At(1, 2), "pair (0,1) curvature must be placed")
	assert.Equal(t, 8.0, hess.At(2, 1), "and mirrored")
	assert.Equal(t, 5.0, hess.At(1, 1), "squared-term diagonal")
	assert.Equal(t, 6.0, hess.At(2, 2), "squared-term diagonal")
	assert.Equal(t, []float64{1, 2, 3}, []float64{hess.At(0, 0), hess.At(0, 1), hess.At(0, 2)})
}

// TestItemHessian_ThresholdOnly covers the smallest block: every slope
// dimension fixed, a 1×1 bias-curvature system.
func TestItemHessian_ThresholdOnly(t *testing.T) {
	pairs := mirt.DimPairs(2)
	hv := hessRow(2, len(pairs))

	hess := mirt.ItemHessian(hv, 0, 1, 2, pairs)
	r, c := hess.Dims()
	assert.Equal(t, 1, r)
	assert.Equal(t, 1, c)
	assert.Equal(t, 1.0, hess.At(0, 0))
}
