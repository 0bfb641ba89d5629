package mirt

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mirt/factors"
)

// factorLoadings converts a converged dim×items slope matrix into an
// interpretable items×dim loading matrix:
//
//	d_j        = √(1 + Σ_k (slope[k,j]/1.702)²)
//	loading[j,k] = slope[k,j] / (d_j · 1.702)
//
// followed by varimax rotation. The scaling maps logistic-metric slopes
// back onto the normal-ogive factor metric; each row of the initial
// loadings has norm < 1 by construction.
func (e *Estimator) factorLoadings(slope *mat.Dense) (*mat.Dense, error) {
	dim, items := slope.Dims()

	initial := mat.NewDense(items, dim, nil)
	for j := 0; j < items; j++ {
		comm := 0.0
		for k := 0; k < dim; k++ {
			s := slope.At(k, j) / logisticScale
			comm += s * s
		}
		d := math.Sqrt(1 + comm)
		for k := 0; k < dim; k++ {
			initial.Set(j, k, slope.At(k, j)/(d*logisticScale))
		}
	}

	return factors.Varimax(initial, e.opts.Rotation)
}
