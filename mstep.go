package mirt

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// mStep performs one Newton–Raphson maximization pass over all items,
// mutating slope and threshold in place. It returns the maximum absolute
// slope delta and threshold delta of the pass, for the driver's
// convergence check.
//
// Stage 1 (Assemble): residual dp = right − full·p and curvature
// ddp = full·p·(1−p) per (node, item); Jacobian-all stacks the summed dp
// row (threshold gradient) over nodesᵀ·dp (slope gradients), giving
// (dim+1)×items; Hessian-values −(ddpᵀ·design) flattens the independent
// second-derivative entries per item against the cached design columns.
//
// Stage 2 (Solve): per item, last column first, extract the active
// (threshold + free slopes) block per the precomputed schedule and solve
// it densely. Items are independent given the schedule, so with
// Workers > 1 the solves fan out; every worker writes only its own
// item's column, threshold entry and delta slots.
//
// A singular item Hessian aborts the whole pass: parameters are fit
// jointly, so no per-item skipping. Complexity:
// O(nodes·items·(dim+pairs)) assembly + O(items·dim³) solves.
func (e *Estimator) mStep(exp expected, p *mat.Dense, slope *mat.Dense, threshold *mat.VecDense) (slopeDelta, thresholdDelta float64, err error) {
	nodes, items := p.Dims()
	dim := e.dim

	// Residual and curvature weights.
	dp := mat.NewDense(nodes, items, nil)
	ddp := mat.NewDense(nodes, items, nil)
	for q := 0; q < nodes; q++ {
		for j := 0; j < items; j++ {
			pv := p.At(q, j)
			fd := exp.full.At(q, j)
			dp.Set(q, j, exp.right.At(q, j)-fd*pv)
			ddp.Set(q, j, fd*pv*(1-pv))
		}
	}

	// Jacobian-all: threshold gradient row stacked over slope gradient rows.
	jacAll := mat.NewDense(dim+1, items, nil)
	for j := 0; j < items; j++ {
		var sum float64
		for q := 0; q < nodes; q++ {
			sum += dp.At(q, j)
		}
		jacAll.Set(0, j, sum)
	}
	var slopeJac mat.Dense
	slopeJac.Mul(e.grid.Nodes.T(), dp)
	for d := 0; d < dim; d++ {
		for j := 0; j < items; j++ {
			jacAll.Set(1+d, j, slopeJac.At(d, j))
		}
	}

	// Hessian-values: items × (1 + dim + dim + pairs) flattened curvature.
	hessVals := mat.NewDense(items, 1+2*dim+len(e.pairs), nil)
	hessVals.Mul(ddp.T(), e.design)
	hessVals.Scale(-1, hessVals)

	slopeTrack := make([]float64, items)
	thresholdTrack := make([]float64, items)

	solve := func(j int) error {
		return e.solveItem(j, jacAll, hessVals, slope, threshold, slopeTrack, thresholdTrack)
	}

	if e.opts.Workers > 1 {
		var g errgroup.Group
		g.SetLimit(e.opts.Workers)
		for j := items - 1; j >= 0; j-- {
			j := j
			g.Go(func() error { return solve(j) })
		}
		err = g.Wait()
	} else {
		for j := items - 1; j >= 0 && err == nil; j-- {
			err = solve(j)
		}
	}
	if err != nil {
		return 0, 0, err
	}

	for j := 0; j < items; j++ {
		slopeDelta = math.Max(slopeDelta, slopeTrack[j])
		thresholdDelta = math.Max(thresholdDelta, thresholdTrack[j])
	}

	return slopeDelta, thresholdDelta, nil
}

// solveItem extracts and solves one item's active Newton block, applies
// the update to the item's threshold entry and free slope rows, and
// records the absolute delta magnitudes for convergence checking.
func (e *Estimator) solveItem(j int, jacAll, hessVals *mat.Dense, slope *mat.Dense, threshold *mat.VecDense, slopeTrack, thresholdTrack []float64) error {
	paramSize := e.dim + 1 - e.schedule[j]

	jac := mat.NewVecDense(paramSize, nil)
	for r := 0; r < paramSize; r++ {
		jac.SetVec(r, jacAll.At(r, j))
	}
	hess := itemHessian(hessVals, j, paramSize, e.dim, e.pairs)

	delta := mat.NewVecDense(paramSize, nil)
	if err := delta.SolveVec(hess, jac); err != nil {
		return fmt.Errorf("MStep item %d: %w", j, ErrSingularHessian)
	}

	threshold.SetVec(j, threshold.AtVec(j)-delta.AtVec(0))
	thresholdTrack[j] = math.Abs(delta.AtVec(0))
	for r := 1; r < paramSize; r++ {
		slope.Set(r-1, j, slope.At(r-1, j)-delta.AtVec(r))
		slopeTrack[j] = math.Max(slopeTrack[j], math.Abs(delta.AtVec(r)))
	}

	return nil
}

// itemHessian assembles the symmetric active Hessian block of one item
// from its flattened curvature row.
//
// Layout contract (mirrors buildDesign): column 0 is the bias block, so
// hessVals[j][0..paramSize) fills row/column 0 (threshold cross-terms);
// the squared-term columns at offset dim fill the diagonal; the pairwise
// columns at offset 2·dim+1 fill the symmetric off-diagonal slots.
//
// Pairs are consumed in table order and filling stops at the first pair
// whose column index falls outside the active block — those entries
// belong to dimensions fixed to zero for this item and are never read.
// The stop (rather than skip-and-continue) is preserved deliberately for
// compatibility with the established estimator behavior.
func itemHessian(hessVals *mat.Dense, j, paramSize, dim int, pairs [][2]int) *mat.Dense {
	hess := mat.NewDense(paramSize, paramSize, nil)
	for c := 0; c < paramSize; c++ {
		hess.Set(0, c, hessVals.At(j, c))
	}
	for r := 1; r < paramSize; r++ {
		hess.Set(r, 0, hessVals.At(j, r))
		hess.Set(r, r, hessVals.At(j, dim+r))
	}
	for k, pr := range pairs {
		if pr[1]+1 >= paramSize {
			break
		}
		v := hessVals.At(j, 2*dim+1+k)
		hess.Set(pr[0]+1, pr[1]+1, v)
		hess.Set(pr[1]+1, pr[0]+1, v)
	}

	return hess
}
