// Package mirt: options, result types and sentinel errors.
package mirt

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mirt/factors"
	"github.com/katalvlaran/mirt/quadrature"
)

// Sentinel errors returned by the estimator.
var (
	// ErrNilScores indicates a nil or empty score matrix.
	ErrNilScores = errors.New("mirt: score matrix is nil or empty")

	// ErrNonBinaryScore indicates a score entry outside {0, 1}.
	ErrNonBinaryScore = errors.New("mirt: scores must be binary 0/1")

	// ErrBadDim indicates latent_dim < 1 or latent_dim > item count.
	ErrBadDim = errors.New("mirt: latent dimension must satisfy 1 <= dim <= items")

	// ErrBadOptions indicates MaxIter < 1, Tol <= 0 or Workers < 0.
	ErrBadOptions = errors.New("mirt: options out of range")

	// ErrSeedShape indicates seed matrices inconsistent with dim/items,
	// or only one of the slope/threshold pair supplied.
	ErrSeedShape = errors.New("mirt: seed matrices inconsistent with model shape")

	// ErrDegenerateItem indicates an item answered all-correct or
	// all-wrong; its threshold seed is unbounded and the fit cannot start.
	ErrDegenerateItem = errors.New("mirt: item has no response variance")

	// ErrSingularHessian indicates a per-item Newton system could not be
	// solved; the whole M-step aborts since parameters are fit jointly.
	ErrSingularHessian = errors.New("mirt: singular item Hessian")
)

// logisticScale is the classic scaling constant that aligns the logistic
// link with the normal ogive; it enters only the loading conversion.
const logisticScale = 1.702

// Status reports how an EM run ended.
type Status int

const (
	// Converged: both the slope and threshold delta maxima fell below Tol.
	Converged Status = iota

	// MaxIterExceeded: the iteration cap was reached first. The returned
	// estimate is the best available, not a failure.
	MaxIterExceeded
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Converged:
		return "Converged"
	case MaxIterExceeded:
		return "MaxIterExceeded"
	default:
		return "Unknown"
	}
}

// Options configures an EM fit.
//
// Fields:
//   - MaxIter    — iteration cap; reaching it yields MaxIterExceeded, not
//     an error.
//   - Tol        — convergence threshold on the maximum absolute Newton
//     delta, applied to slopes and thresholds separately.
//   - Workers    — per-item Newton solves fanned out per M-step; 0 or 1
//     runs sequentially. Results are identical either way: the
//     constraint schedule is a pure function of item position.
//   - Quadrature — integration-grid configuration (points per dimension,
//     node cap).
//   - Rotation   — varimax options for the final loading conversion.
//   - InitSlope / InitThreshold — optional seeds (dim×items and items).
//     Supply both or neither; the identifiability zero pattern is imposed
//     on the seed before the first iteration.
type Options struct {
	MaxIter    int
	Tol        float64
	Workers    int
	Quadrature quadrature.Options
	Rotation   factors.RotateOptions

	InitSlope     *mat.Dense
	InitThreshold *mat.VecDense
}

// DefaultOptions returns the recommended fit configuration:
// MaxIter 1000, Tol 1e-4, sequential solves, default grid and rotation.
func DefaultOptions() Options {
	return Options{
		MaxIter:    1000,
		Tol:        1e-4,
		Workers:    1,
		Quadrature: quadrature.DefaultOptions(),
		Rotation:   factors.DefaultRotateOptions(),
	}
}

// Result is the outcome of a fit.
//
// Slope is dim×items, Threshold has one entry per item, Loadings is the
// items×dim varimax-rotated loading matrix derived from Slope. MaxDelta
// is the largest absolute parameter update of the final iteration;
// LogLik is the marginal log-likelihood from the final E-step.
type Result struct {
	Slope     *mat.Dense
	Threshold *mat.VecDense
	Loadings  *mat.Dense

	Status     Status
	Iterations int
	MaxDelta   float64
	LogLik     float64
}
