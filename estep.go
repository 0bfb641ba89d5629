package mirt

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// expected holds one E-step's posterior pseudo-counts. full[q,j] is the
// expected weighted exposure of item j at node q, right[q,j] the expected
// weighted correct-response count; loglik is the marginal log-likelihood
// of the score matrix under the current parameters. The counts live for
// exactly one EM iteration.
type expected struct {
	full   *mat.Dense
	right  *mat.Dense
	loglik float64
}

// eStep computes posterior-weighted sufficient statistics from the
// node×item probability matrix and the node weights.
//
// Per examinee n the node log-likelihood is
//
//	ℓ[n,q] = Σ_j x[n,j]·log p[q,j] + (1−x[n,j])·log(1−p[q,j]),
//
// the posterior over nodes is softmax(log w + ℓ[n,·]), and pseudo-counts
// accumulate posteriors (full) and posterior-weighted correct responses
// (right). Everything runs in log domain with log-sum-exp: raw Bernoulli
// products underflow beyond a few dozen items.
//
// With complete data full's columns are identical; the matrix is still
// materialized per (node, item) to keep the block-assembly contract
// uniform. Complexity: O(examinees · nodes · items).
func (e *Estimator) eStep(p *mat.Dense, weights *mat.VecDense) expected {
	nodes, items := p.Dims()
	examinees, _ := e.scores.Dims()

	// Element logs, shared across examinees.
	logP := make([]float64, nodes*items)
	logQ := make([]float64, nodes*items)
	logW := make([]float64, nodes)
	for q := 0; q < nodes; q++ {
		logW[q] = math.Log(weights.AtVec(q))
		for j := 0; j < items; j++ {
			v := p.At(q, j)
			logP[q*items+j] = math.Log(math.Max(v, minProb))
			logQ[q*items+j] = math.Log(math.Max(1-v, minProb))
		}
	}

	full := mat.NewDense(nodes, items, nil)
	right := mat.NewDense(nodes, items, nil)
	post := make([]float64, nodes)
	var loglik float64

	for n := 0; n < examinees; n++ {
		// Joint log density of examinee n at each node.
		maxLog := math.Inf(-1)
		for q := 0; q < nodes; q++ {
			acc := logW[q]
			for j := 0; j < items; j++ {
				if e.scores.At(n, j) == 1 {
					acc += logP[q*items+j]
				} else {
					acc += logQ[q*items+j]
				}
			}
			post[q] = acc
			if acc > maxLog {
				maxLog = acc
			}
		}

		// Normalize via log-sum-exp.
		var sum float64
		for q := 0; q < nodes; q++ {
			post[q] = math.Exp(post[q] - maxLog)
			sum += post[q]
		}
		loglik += maxLog + math.Log(sum)

		for q := 0; q < nodes; q++ {
			w := post[q] / sum
			for j := 0; j < items; j++ {
				full.Set(q, j, full.At(q, j)+w)
				if e.scores.At(n, j) == 1 {
					right.Set(q, j, right.At(q, j)+w)
				}
			}
		}
	}

	return expected{full: full, right: right, loglik: loglik}
}

// minProb floors probabilities before taking logs; the link cannot reach
// exact 0/1 unless |z| exceeds ~745, but the floor keeps the E-step
// finite even then.
const minProb = 1e-300
