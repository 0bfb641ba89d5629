// Package factors provides the exploratory factor-analysis helpers that
// bracket a MIRT fit: principal-axis loadings to seed the estimator, and
// GPForth-style orthogonal varimax rotation to make converged loadings
// interpretable.
//
// 🚀 What does it provide?
//
//	• Loadings(scores, dim) — Pearson correlation matrix of the item
//	  columns, top-dim eigenpairs, loading = eigenvector·√eigenvalue,
//	  with a deterministic sign convention (non-negative column sums).
//	• Varimax(a, opts)      — orthogonal rotation by gradient projection:
//	  take a varimax-gradient step on the rotation matrix and project back
//	  onto the orthogonal group via SVD, with a halving line search.
//
// Both functions treat their inputs as read-only and allocate fresh
// results, so callers may share matrices freely.
//
// Rotation preserves row norms (communalities) exactly; tests pin that
// invariant rather than any particular rotated orientation, which is only
// defined up to column permutation and reflection.
package factors
