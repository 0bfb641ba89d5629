package mirt

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mirt/factors"
)

// minUniqueness floors 1−communality before the square root; principal
// loadings keep communalities below 1 analytically, but the guard keeps
// near-degenerate items from blowing the seed up.
const minUniqueness = 1e-4

// initialValues derives seed parameters from the score matrix itself:
// slopes from exploratory factor loadings, thresholds from the inverse
// logistic of the item means, both rescaled by the item uniqueness.
//
//	d_j    = √(1 − Σ_k loading[j,k]²)
//	slope  = loadingᵀ / d · 1.702
//	thresh = logit(mean_j) / d_j
//
// Items answered all-correct or all-wrong have no finite logit and fail
// with ErrDegenerateItem before any iteration.
func (e *Estimator) initialValues() (*mat.Dense, *mat.VecDense, error) {
	examinees, items := e.scores.Dims()

	means := make([]float64, items)
	for j := 0; j < items; j++ {
		var sum float64
		for n := 0; n < examinees; n++ {
			sum += e.scores.At(n, j)
		}
		means[j] = sum / float64(examinees)
		if means[j] == 0 || means[j] == 1 {
			return nil, nil, ErrDegenerateItem
		}
	}

	loadings, err := factors.Loadings(e.scores, e.dim)
	if err != nil {
		return nil, nil, err
	}

	slope := mat.NewDense(e.dim, items, nil)
	threshold := mat.NewVecDense(items, nil)
	for j := 0; j < items; j++ {
		var comm float64
		for k := 0; k < e.dim; k++ {
			comm += loadings.At(j, k) * loadings.At(j, k)
		}
		d := math.Sqrt(math.Max(1-comm, minUniqueness))
		for k := 0; k < e.dim; k++ {
			slope.Set(k, j, loadings.At(j, k)/d*logisticScale)
		}
		threshold.SetVec(j, math.Log(means[j]/(1-means[j]))/d)
	}

	return slope, threshold, nil
}
