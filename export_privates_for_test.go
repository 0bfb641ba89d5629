// Export of private helpers for white-box assertions from mirt_test.
// Test-only file; nothing here ships in the package API.
package mirt

import "gonum.org/v1/gonum/mat"

var (
	DimPairs    = dimPairs
	BuildDesign = buildDesign
	FixedCounts = fixedCounts
	ZeroFixed   = zeroFixed
	ItemHessian = itemHessian
)

// SeedSlope exposes the post-constraint seed for invariant tests.
func (e *Estimator) SeedSlope() *mat.Dense { return e.seedSlope }

// Schedule exposes the per-item fixed-dimension table.
func (e *Estimator) Schedule() []int { return e.schedule }
