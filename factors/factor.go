package factors

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Sentinel errors returned by the factor-extraction entry points.
var (
	// ErrBadDim indicates dim < 1 or dim greater than the item count.
	ErrBadDim = errors.New("factors: factor count must satisfy 1 <= dim <= items")

	// ErrTooFewRows indicates fewer than two observation rows, for which
	// no correlation is defined.
	ErrTooFewRows = errors.New("factors: need at least two observation rows")

	// ErrConstantColumn indicates an item column with zero variance; its
	// correlations are undefined and factoring cannot proceed.
	ErrConstantColumn = errors.New("factors: item column has zero variance")

	// ErrEigenFailed indicates the correlation eigendecomposition failed.
	ErrEigenFailed = errors.New("factors: eigendecomposition failed")
)

// Loadings extracts a dim-factor principal-axis loading matrix from an
// observations×items score matrix.
//
// Stage 1 (Validate): shape checks and a zero-variance scan (constant
// columns make the correlation matrix undefined).
// Stage 2 (Execute):  Pearson correlation matrix of the item columns,
// symmetric eigendecomposition, top-dim eigenpairs.
// Stage 3 (Finalize): loading[j,k] = v[j,k]·√max(λ_k, 0), column signs
// flipped so every column sums non-negative (deterministic orientation).
//
// The result is items×dim. Complexity: O(n·j² + j³) for n rows, j items.
func Loadings(scores mat.Matrix, dim int) (*mat.Dense, error) {
	rows, items := scores.Dims()
	if rows < 2 {
		return nil, ErrTooFewRows
	}
	if dim < 1 || dim > items {
		return nil, ErrBadDim
	}
	// Reject constant columns up front; CorrelationMatrix would emit NaN.
	for j := 0; j < items; j++ {
		first := scores.At(0, j)
		constant := true
		for i := 1; i < rows; i++ {
			if scores.At(i, j) != first {
				constant = false
				break
			}
		}
		if constant {
			return nil, ErrConstantColumn
		}
	}

	var corr mat.SymDense
	stat.CorrelationMatrix(&corr, scores, nil)

	var es mat.EigenSym
	if ok := es.Factorize(&corr, true); !ok {
		return nil, ErrEigenFailed
	}
	values := es.Values(nil) // ascending
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	// Largest dim eigenpairs sit at the tail of the ascending order.
	loadings := mat.NewDense(items, dim, nil)
	for k := 0; k < dim; k++ {
		col := items - 1 - k
		scale := math.Sqrt(math.Max(values[col], 0))
		var sum float64
		for j := 0; j < items; j++ {
			l := vecs.At(j, col) * scale
			loadings.Set(j, k, l)
			sum += l
		}
		// Deterministic orientation: eigenvectors are sign-ambiguous.
		if sum < 0 {
			for j := 0; j < items; j++ {
				loadings.Set(j, k, -loadings.At(j, k))
			}
		}
	}

	return loadings, nil
}
