package mirt

import "gonum.org/v1/gonum/mat"

// fixedCounts computes the per-item identifiability schedule: how many
// trailing slope dimensions are fixed to exactly zero for each item.
// The highest-indexed item carries dim−1 fixed dimensions, the count
// decreasing by one per item leftward with a floor of zero:
//
//	fix[j] = max(0, dim − (items − j)).
//
// Tying the schedule to item position (rather than any data-driven rule)
// is deliberate and preserved for compatibility with established fits.
// The table is computed once and consulted by the seeder, the M-step and
// the solve ordering; none of them re-derive it.
func fixedCounts(dim, items int) []int {
	counts := make([]int, items)
	for j := 0; j < items; j++ {
		if f := dim - (items - j); f > 0 {
			counts[j] = f
		}
	}

	return counts
}

// zeroFixed imposes the triangular zero pattern on a dim×items slope
// matrix in place: for item j, the trailing counts[j] dimension rows are
// set to exactly zero. Equivalent to zeroing the last i entries of row i
// for i = dim−1 … 1, which removes the D(D−1)/2-parameter rotational
// indeterminacy of the multidimensional model.
//
// Applied to the seed before the first iteration; afterwards the Newton
// solver never touches the fixed entries, so the invariant holds at
// every iteration by construction.
func zeroFixed(slope *mat.Dense, counts []int) {
	dim, items := slope.Dims()
	for j := 0; j < items; j++ {
		for d := dim - counts[j]; d < dim; d++ {
			slope.Set(d, j, 0)
		}
	}
}
