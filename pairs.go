package mirt

// dimPairs lists every unordered pair of dimension indices (a < b) in
// lexicographic order. The ordering is load-bearing: the design-matrix
// builder lays interaction columns out in this order and the Hessian
// assembler indexes them back by position, so both always consult the
// same table, computed once per estimator.
//
// Length is C(dim, 2); empty for dim = 1.
func dimPairs(dim int) [][2]int {
	pairs := make([][2]int, 0, dim*(dim-1)/2)
	for a := 0; a < dim; a++ {
		for b := a + 1; b < dim; b++ {
			pairs = append(pairs, [2]int{a, b})
		}
	}

	return pairs
}
