package quadrature

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Rule computes the n-point probabilists' Gauss–Hermite rule (weight
// function exp(-x²/2)) by the Golub–Welsch method.
//
// Stage 1 (Validate): reject n < 1.
// Stage 2 (Prepare):  build the n×n symmetric Jacobi matrix of the
// probabilists' Hermite three-term recurrence — zero diagonal,
// off-diagonal entries √1, √2, …, √(n−1).
// Stage 3 (Execute):  eigendecompose it; eigenvalues are the nodes
// (ascending), squared first eigenvector components are the weights,
// already normalized so that Σw = 1 (a discrete standard normal).
//
// Complexity: O(n³) time via the dense symmetric eigensolver; n is small
// (≤ ~50) in every practical grid, so this is negligible.
func Rule(n int) (nodes, weights []float64, err error) {
	// Validate the point count.
	if n < 1 {
		return nil, nil, ErrBadPoints
	}
	// The one-point rule is the distribution mean with full mass.
	if n == 1 {
		return []float64{0}, []float64{1}, nil
	}

	// Jacobi matrix of the He recurrence: He_{k+1}(x) = x·He_k(x) − k·He_{k-1}(x).
	jacobi := mat.NewSymDense(n, nil)
	for k := 1; k < n; k++ {
		b := math.Sqrt(float64(k))
		jacobi.SetSym(k-1, k, b)
	}

	var es mat.EigenSym
	if ok := es.Factorize(jacobi, true); !ok {
		return nil, nil, ErrRuleFailed
	}
	nodes = es.Values(nil) // ascending eigenvalues

	var vecs mat.Dense
	es.VectorsTo(&vecs)
	weights = make([]float64, n)
	for i := 0; i < n; i++ {
		v := vecs.At(0, i) // first component of the i-th eigenvector
		weights[i] = v * v // m0-normalized weight; Σ over i is exactly 1
	}

	return nodes, weights, nil
}
