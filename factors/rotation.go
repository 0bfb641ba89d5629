package factors

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by the rotation entry points.
var (
	// ErrBadRotateOptions indicates MaxIter < 1 or Tol <= 0.
	ErrBadRotateOptions = errors.New("factors: rotation options out of range")

	// ErrSVDFailed indicates the orthogonality-projection SVD failed.
	ErrSVDFailed = errors.New("factors: SVD projection failed")
)

// RotateOptions configures the gradient-projection rotation loop.
//
// Fields:
//   - MaxIter — maximum projection iterations; rotation that runs out of
//     iterations returns its best orientation (rotation is cosmetic, the
//     criterion landscape is benign for small factor counts).
//   - Tol     — stopping threshold on the Frobenius norm of the projected
//     gradient.
type RotateOptions struct {
	MaxIter int
	Tol     float64
}

// DefaultRotateOptions returns the recommended rotation configuration.
func DefaultRotateOptions() RotateOptions {
	return RotateOptions{MaxIter: 500, Tol: 1e-6}
}

// Varimax rotates an items×dim loading matrix to the varimax criterion
// with the orthogonal gradient-projection (GPForth) scheme: step the
// rotation matrix along the negative criterion gradient, project back to
// the orthogonal group via SVD, halve the step until the criterion
// decreases sufficiently.
//
// dim = 1 has no rotational freedom; a copy of the input is returned.
// Row norms (communalities) are preserved exactly by every orthogonal T.
//
// Complexity: O(MaxIter · (j·dim² + dim³)) for j items.
func Varimax(a mat.Matrix, opts RotateOptions) (*mat.Dense, error) {
	if opts.MaxIter < 1 || opts.Tol <= 0 {
		return nil, ErrBadRotateOptions
	}
	items, dim := a.Dims()
	if items < 1 || dim < 1 {
		return nil, ErrBadDim
	}
	if dim == 1 {
		out := mat.NewDense(items, 1, nil)
		out.Copy(a)

		return out, nil
	}

	// T starts at the identity; L tracks A·T throughout.
	rot := identity(dim)
	loads := mat.NewDense(items, dim, nil)
	loads.Mul(a, rot)
	crit, critGrad := varimaxCriterion(loads)

	// G = Aᵀ·Gq, the criterion gradient pulled back to T.
	grad := mat.NewDense(dim, dim, nil)
	grad.Mul(a.T(), critGrad)

	step := 1.0
	for iter := 0; iter < opts.MaxIter; iter++ {
		// Project the gradient onto the tangent space of the orthogonal group.
		m := mat.NewDense(dim, dim, nil)
		m.Mul(rot.T(), grad)
		skew := mat.NewDense(dim, dim, nil)
		for i := 0; i < dim; i++ {
			for j := 0; j < dim; j++ {
				skew.Set(i, j, (m.At(i, j)+m.At(j, i))/2)
			}
		}
		proj := mat.NewDense(dim, dim, nil)
		proj.Mul(rot, skew)
		proj.Sub(grad, proj)

		norm := mat.Norm(proj, 2)
		if norm < opts.Tol {
			break
		}

		step *= 2
		var (
			nextRot  *mat.Dense
			nextCrit float64
			nextGq   *mat.Dense
		)
		for half := 0; half < 20; half++ {
			trial := mat.NewDense(dim, dim, nil)
			trial.Scale(step, proj)
			trial.Sub(rot, trial)
			projected, err := projectOrthogonal(trial)
			if err != nil {
				return nil, err
			}
			loads.Mul(a, projected)
			c, gq := varimaxCriterion(loads)
			if c < crit-0.5*norm*norm*step {
				nextRot, nextCrit, nextGq = projected, c, gq
				break
			}
			step /= 2
		}
		if nextRot == nil {
			// Line search exhausted: the current orientation is locally optimal.
			break
		}
		rot, crit = nextRot, nextCrit
		grad.Mul(a.T(), nextGq)
	}

	out := mat.NewDense(items, dim, nil)
	out.Mul(a, rot)
	orientColumns(out)

	return out, nil
}

// varimaxCriterion evaluates the (minimization-form) varimax criterion and
// its gradient with respect to the rotated loadings L.
//
//	QL = L² − colmean(L²);  f = −Σ QL² / 4;  Gq = −L ∘ QL.
func varimaxCriterion(loads *mat.Dense) (float64, *mat.Dense) {
	items, dim := loads.Dims()
	sq := mat.NewDense(items, dim, nil)
	colMean := make([]float64, dim)
	for k := 0; k < dim; k++ {
		for j := 0; j < items; j++ {
			v := loads.At(j, k)
			sq.Set(j, k, v*v)
			colMean[k] += v * v
		}
		colMean[k] /= float64(items)
	}

	var crit float64
	grad := mat.NewDense(items, dim, nil)
	for k := 0; k < dim; k++ {
		for j := 0; j < items; j++ {
			ql := sq.At(j, k) - colMean[k]
			crit -= ql * ql / 4
			grad.Set(j, k, -loads.At(j, k)*ql)
		}
	}

	return crit, grad
}

// projectOrthogonal maps a square matrix to its nearest orthogonal matrix
// (in Frobenius norm) via the SVD polar factor U·Vᵀ.
func projectOrthogonal(x *mat.Dense) (*mat.Dense, error) {
	var svd mat.SVD
	if ok := svd.Factorize(x, mat.SVDThin); !ok {
		return nil, ErrSVDFailed
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	n, _ := x.Dims()
	out := mat.NewDense(n, n, nil)
	out.Mul(&u, v.T())

	return out, nil
}

// orientColumns flips loading columns in place so each sums non-negative,
// removing reflection ambiguity for deterministic output.
func orientColumns(loads *mat.Dense) {
	items, dim := loads.Dims()
	for k := 0; k < dim; k++ {
		var sum float64
		for j := 0; j < items; j++ {
			sum += loads.At(j, k)
		}
		if sum < 0 {
			for j := 0; j < items; j++ {
				loads.Set(j, k, -loads.At(j, k))
			}
		}
	}
}

// identity returns the n×n identity matrix as a Dense.
func identity(n int) *mat.Dense {
	id := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		id.Set(i, i, 1)
	}

	return id
}
