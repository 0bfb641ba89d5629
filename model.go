package mirt

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Probability evaluates the 2PL link at every quadrature node: for node
// row q and item j,
//
//	z[q,j] = Σ_d slope[d,j]·nodes[q,d] + threshold[j]
//	p[q,j] = 1 / (1 + exp(−z[q,j])).
//
// slope is dim×items, nodes is n×dim; the result is n×items. The 1.702
// normal-ogive constant does not enter the link — it appears only in the
// loading conversion.
func Probability(slope *mat.Dense, threshold *mat.VecDense, nodes *mat.Dense) *mat.Dense {
	n, _ := nodes.Dims()
	_, items := slope.Dims()

	p := mat.NewDense(n, items, nil)
	p.Mul(nodes, slope)
	for q := 0; q < n; q++ {
		for j := 0; j < items; j++ {
			p.Set(q, j, logistic(p.At(q, j)+threshold.AtVec(j)))
		}
	}

	return p
}

// logistic is the standard sigmoid, written to avoid overflow for large
// negative arguments.
func logistic(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	ez := math.Exp(z)

	return ez / (1 + ez)
}
