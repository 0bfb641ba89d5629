// Package mirt fits compensatory multidimensional 2PL item response
// models (full-information item factor analysis) to binary score
// matrices by marginal maximum likelihood EM with a per-item
// Newton–Raphson M-step.
//
// 🚀 How the estimator works
//
//	E-step — model probabilities at every quadrature node feed
//	  posterior-weighted pseudo-counts (expected exposures and expected
//	  correct responses per node×item) and the marginal log-likelihood.
//	M-step — per item, one Newton–Raphson step on (threshold, free
//	  slopes): the gradient and the independent entries of the Hessian
//	  are built from the pseudo-counts and an extended design matrix over
//	  the nodes (bias ∥ linear ∥ squared ∥ pairwise-interaction columns),
//	  then the active block for the item is extracted and solved densely.
//
// Identifiability: a D-dimensional slope model carries a D(D−1)/2
// rotational indeterminacy. The estimator removes it by fixing a
// triangular pattern of trailing slopes to zero — the highest-indexed
// item has D−1 fixed dimensions, the count decreasing by one per item
// down to zero. The schedule is computed once and consulted by the
// seeder, the M-step block extraction and the solve ordering alike.
//
// ✨ Design points
//
//   - Typed outcomes – Fit returns a Result whose Status is Converged or
//     MaxIterExceeded with the last maximum parameter delta; only shape
//     errors, degenerate items and singular item Hessians are errors
//   - Fail-fast validation – shape and option errors surface at
//     construction, before any iteration
//   - Deterministic – fixed schedules and seeded sources give
//     reproducible fits; parallel solves change nothing but wall time
//   - gonum-powered – dense linear algebra on a battle-tested stack
//
// Supporting subpackages:
//
//	quadrature/ — Gauss–Hermite rules and multidimensional tensor grids
//	factors/    — principal-axis loadings & GPForth varimax rotation
//
// Typical use:
//
//	est, err := mirt.NewEstimator(scores, 2, mirt.DefaultOptions())
//	if err != nil { ... }
//	res, err := est.Fit(context.Background())
//	if err != nil { ... }
//	if res.Status == mirt.MaxIterExceeded {
//	    log.Printf("no convergence, last delta %g", res.MaxDelta)
//	}
//	use(res.Slope, res.Threshold, res.Loadings)
//
//	go get github.com/katalvlaran/mirt
package mirt
