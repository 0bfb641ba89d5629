package mirt

import "gonum.org/v1/gonum/mat"

// buildDesign assembles the extended design matrix over the quadrature
// nodes: per row one node, columns
//
//	[ 1 ∥ θ₁..θ_D ∥ θ₁²..θ_D² ∥ θ_a·θ_b for each pair in table order ].
//
// The column order is a contract shared with the Hessian assembler; the
// bias/linear block mirrors the (threshold, slope) parameter layout and
// the squared/pairwise blocks hold the curvature columns it indexes into.
//
// Nodes never change within a run, so the result is built once and
// cached by the estimator. Complexity: O(nodes · (dim + pairs)).
func buildDesign(nodes *mat.Dense, pairs [][2]int) *mat.Dense {
	rows, dim := nodes.Dims()
	cols := 1 + 2*dim + len(pairs)
	design := mat.NewDense(rows, cols, nil)

	for q := 0; q < rows; q++ {
		design.Set(q, 0, 1)
		for d := 0; d < dim; d++ {
			v := nodes.At(q, d)
			design.Set(q, 1+d, v)
			design.Set(q, 1+dim+d, v*v)
		}
		for k, pr := range pairs {
			design.Set(q, 1+2*dim+k, nodes.At(q, pr[0])*nodes.At(q, pr[1]))
		}
	}

	return design
}
