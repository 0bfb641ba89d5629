// Package quadrature builds the numerical-integration grids used to
// marginalize item response models over a standard-normal latent trait.
//
// 🚀 What does it provide?
//
//	• Rule(n)      — one-dimensional probabilists' Gauss–Hermite nodes and
//	  weights, derived by the Golub–Welsch method: eigendecompose the
//	  symmetric tridiagonal Jacobi matrix of the Hermite recurrence and read
//	  nodes from eigenvalues, weights from first eigenvector components.
//	  Weights are normalized to sum to one, so the rule is a discrete N(0,1).
//	• Grid(dim, opts) — the tensor product of a one-dimensional rule over
//	  dim trait axes: one row per node point, product weights.
//
// The grid is immutable after construction and safe to share across
// goroutines; estimators cache it for the whole EM run.
//
// Accuracy/size trade-off: an n-point rule integrates polynomials up to
// degree 2n−1 exactly, but the tensor grid grows as n^dim, so the default
// points-per-dimension shrinks as dim grows (see DefaultOptions).
//
// Example:
//
//	grid, err := quadrature.Grid(2, quadrature.DefaultOptions())
//	// grid.Nodes is (n² × 2), grid.Weights sums to 1.
package quadrature
