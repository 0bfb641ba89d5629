package quadrature

import "gonum.org/v1/gonum/mat"

// Grid builds the dim-dimensional tensor-product integration grid.
//
// Stage 1 (Validate): dim ≥ 1, resolve PointsPerDim/MaxNodes defaults,
// reject grids larger than the cap before allocating.
// Stage 2 (Prepare):  compute the shared one-dimensional rule.
// Stage 3 (Execute):  enumerate all n^dim combinations in odometer order
// (last axis fastest), filling node coordinates and product weights.
//
// The row ordering is fixed and deterministic; downstream design matrices
// index rows of this grid and rely on it never changing for a given
// (dim, PointsPerDim).
//
// Complexity: O(n^dim · dim) time and memory for the node matrix.
func Grid(dim int, opts Options) (*TensorGrid, error) {
	// Validate dimension.
	if dim < 1 {
		return nil, ErrBadDim
	}
	// Resolve defaults.
	points := opts.PointsPerDim
	if points == 0 {
		points = DefaultPoints(dim)
	}
	if points < 1 {
		return nil, ErrBadPoints
	}
	maxNodes := opts.MaxNodes
	if maxNodes == 0 {
		maxNodes = MaxNodesDefault
	}

	// Total grid size with overflow-safe accumulation against the cap.
	total := 1
	for d := 0; d < dim; d++ {
		total *= points
		if total > maxNodes {
			return nil, ErrGridTooLarge
		}
	}

	nodes1, weights1, err := Rule(points)
	if err != nil {
		return nil, err
	}

	nodes := mat.NewDense(total, dim, nil)
	weights := mat.NewVecDense(total, nil)
	idx := make([]int, dim) // odometer over the per-axis point indices
	for row := 0; row < total; row++ {
		w := 1.0
		for d := 0; d < dim; d++ {
			nodes.Set(row, d, nodes1[idx[d]])
			w *= weights1[idx[d]]
		}
		weights.SetVec(row, w)

		// Advance the odometer, last axis fastest.
		for d := dim - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < points {
				break
			}
			idx[d] = 0
		}
	}

	return &TensorGrid{Dim: dim, Nodes: nodes, Weights: weights}, nil
}
