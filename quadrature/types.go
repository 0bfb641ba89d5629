// Package quadrature: options, result types and sentinel errors.
package quadrature

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by the quadrature constructors.
var (
	// ErrBadDim indicates a non-positive latent dimension count.
	ErrBadDim = errors.New("quadrature: dimension must be >= 1")

	// ErrBadPoints indicates a non-positive points-per-dimension count.
	ErrBadPoints = errors.New("quadrature: points per dimension must be >= 1")

	// ErrGridTooLarge indicates the tensor grid would exceed Options.MaxNodes.
	ErrGridTooLarge = errors.New("quadrature: tensor grid exceeds MaxNodes")

	// ErrRuleFailed indicates the Jacobi-matrix eigendecomposition did not
	// converge; with the sizes used here this signals a toolchain problem,
	// not bad user input, but it is still surfaced rather than panicked.
	ErrRuleFailed = errors.New("quadrature: Gauss-Hermite eigendecomposition failed")
)

// MaxNodesDefault caps the total tensor-grid size unless overridden.
const MaxNodesDefault = 50000

// Options configures grid construction.
//
// Fields:
//   - PointsPerDim — nodes per trait axis. Zero selects a dimension-aware
//     default (see DefaultPoints).
//   - MaxNodes     — upper bound on total grid size; Grid fails with
//     ErrGridTooLarge rather than allocate past it. Zero means
//     MaxNodesDefault.
type Options struct {
	PointsPerDim int
	MaxNodes     int
}

// DefaultOptions returns the recommended grid configuration:
// automatic points-per-dimension and the default node cap.
func DefaultOptions() Options {
	return Options{PointsPerDim: 0, MaxNodes: MaxNodesDefault}
}

// DefaultPoints returns the points-per-dimension used when
// Options.PointsPerDim is zero. The schedule keeps the tensor grid small
// enough for EM inner loops while retaining enough accuracy for the
// marginal likelihood:
//
//	dim 1 → 31, dim 2 → 11, dim 3 → 7, dim 4 → 5, dim ≥ 5 → 3.
func DefaultPoints(dim int) int {
	switch {
	case dim <= 1:
		return 31
	case dim == 2:
		return 11
	case dim == 3:
		return 7
	case dim == 4:
		return 5
	default:
		return 3
	}
}

// TensorGrid is an immutable integration grid over a dim-dimensional
// standard-normal latent space.
//
// Nodes has one row per grid point and dim columns; Weights holds the
// matching product weights and sums to one. Neither is mutated after
// construction.
type TensorGrid struct {
	Dim     int
	Nodes   *mat.Dense
	Weights *mat.VecDense
}

// Len returns the number of grid points.
func (g *TensorGrid) Len() int {
	r, _ := g.Nodes.Dims()

	return r
}
