package mirt

import (
	"context"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mirt/quadrature"
)

// Estimator owns one EM fit configuration: the score matrix, the latent
// dimensionality, the immutable quadrature grid, the interaction-pair
// table, the cached design matrix and the identifiability schedule.
// Construct with NewEstimator; a constructed estimator is safe for
// repeated Fit calls, each starting from the same seed.
type Estimator struct {
	scores *mat.Dense
	dim    int
	opts   Options

	grid     *quadrature.TensorGrid
	pairs    [][2]int
	design   *mat.Dense
	schedule []int

	seedSlope     *mat.Dense
	seedThreshold *mat.VecDense
}

// NewEstimator validates the inputs and prepares every run-constant
// structure: grid, pair table, design matrix, constraint schedule and
// seed parameters (factor-analytic unless supplied via Options).
//
// Stage 1 (Validate): score shape and binary coding, 1 ≤ dim ≤ items,
// option ranges, seed shapes (both-or-neither).
// Stage 2 (Prepare):  quadrature grid, pair table, design matrix,
// schedule.
// Stage 3 (Seed):     copy supplied seeds or derive initial values, then
// impose the identifiability zero pattern.
//
// All shape and configuration errors surface here, before any iteration.
func NewEstimator(scores mat.Matrix, dim int, opts Options) (*Estimator, error) {
	if scores == nil {
		return nil, ErrNilScores
	}
	examinees, items := scores.Dims()
	if examinees == 0 || items == 0 {
		return nil, ErrNilScores
	}
	if dim < 1 || dim > items {
		return nil, ErrBadDim
	}
	if opts.MaxIter < 1 || opts.Tol <= 0 || opts.Workers < 0 {
		return nil, ErrBadOptions
	}

	// Own a dense copy; the caller's matrix stays untouched and the hot
	// loops get flat row-major access.
	owned := mat.NewDense(examinees, items, nil)
	for n := 0; n < examinees; n++ {
		for j := 0; j < items; j++ {
			v := scores.At(n, j)
			if v != 0 && v != 1 {
				return nil, ErrNonBinaryScore
			}
			owned.Set(n, j, v)
		}
	}

	grid, err := quadrature.Grid(dim, opts.Quadrature)
	if err != nil {
		return nil, err
	}

	e := &Estimator{
		scores:   owned,
		dim:      dim,
		opts:     opts,
		grid:     grid,
		pairs:    dimPairs(dim),
		schedule: fixedCounts(dim, items),
	}
	e.design = buildDesign(grid.Nodes, e.pairs)

	switch {
	case opts.InitSlope != nil && opts.InitThreshold != nil:
		sr, sc := opts.InitSlope.Dims()
		if sr != dim || sc != items || opts.InitThreshold.Len() != items {
			return nil, ErrSeedShape
		}
		e.seedSlope = mat.DenseCopyOf(opts.InitSlope)
		e.seedThreshold = mat.VecDenseCopyOf(opts.InitThreshold)
	case opts.InitSlope == nil && opts.InitThreshold == nil:
		if e.seedSlope, e.seedThreshold, err = e.initialValues(); err != nil {
			return nil, err
		}
	default:
		return nil, ErrSeedShape
	}
	zeroFixed(e.seedSlope, e.schedule)

	return e, nil
}

// Fit runs the EM loop to convergence or the iteration cap.
//
// Per iteration: model probabilities at all nodes → E-step pseudo-counts
// → M-step Newton pass → convergence check on the maximum absolute slope
// and threshold deltas. The context is consulted at each iteration
// boundary, the only cancellation point the strictly sequential loop
// has.
//
// Hitting MaxIter is a soft outcome: the Result carries MaxIterExceeded
// and the largest remaining delta, and the estimate is still returned.
// Hard failures are context cancellation and a singular item Hessian.
func (e *Estimator) Fit(ctx context.Context) (*Result, error) {
	slope := mat.DenseCopyOf(e.seedSlope)
	threshold := mat.VecDenseCopyOf(e.seedThreshold)

	var (
		slopeDelta, thresholdDelta float64
		loglik                     float64
		iters                      int
	)
	status := MaxIterExceeded

	for iter := 1; iter <= e.opts.MaxIter; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p := Probability(slope, threshold, e.grid.Nodes)
		exp := e.eStep(p, e.grid.Weights)
		loglik = exp.loglik

		var err error
		slopeDelta, thresholdDelta, err = e.mStep(exp, p, slope, threshold)
		if err != nil {
			return nil, err
		}

		iters = iter
		if slopeDelta < e.opts.Tol && thresholdDelta < e.opts.Tol {
			status = Converged
			break
		}
	}

	loadings, err := e.factorLoadings(slope)
	if err != nil {
		return nil, err
	}

	return &Result{
		Slope:      slope,
		Threshold:  threshold,
		Loadings:   loadings,
		Status:     status,
		Iterations: iters,
		MaxDelta:   math.Max(slopeDelta, thresholdDelta),
		LogLik:     loglik,
	}, nil
}
