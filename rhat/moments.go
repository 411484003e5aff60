package rhat

import (
	"github.com/katalvlaran/mcmcdiag/chain"
)

// Moments holds the variance decomposition of a chain set — everything
// R-hat and MCSE need. Values are computed fresh on every call; the
// input chains are never mutated.
type Moments struct {
	// W is the within-chain variance: the mean of the per-chain
	// unbiased sample variances.
	W float64
	// B is the between-chain variance: L times the sample variance of
	// the per-chain means around the grand mean.
	B float64
	// VarHat is the pooled marginal-posterior variance estimate,
	// ((L−1)/L)·W + B/L. It overestimates the target variance before
	// convergence, which is exactly what R-hat exploits.
	VarHat float64
	// GrandMean is the mean of the per-chain means.
	GrandMean float64
}

// ComputeMoments computes per-chain means and unbiased variances for a
// set of N chains of length L, then the aggregate quantities W, B,
// VarHat and the grand mean.
//
// Errors:
//   - chain.ErrInsufficientChains — N < 2 (B needs a variance across chains).
//   - chain.ErrInsufficientLength — L < 2 (per-chain variance undefined).
//   - chain.ErrUnequalLengths, chain.ErrNonFiniteDraw — malformed input.
func ComputeMoments(chains chain.ChainSet) (Moments, error) {
	if err := chain.Validate(chains, 2, 2); err != nil {
		return Moments{}, err
	}

	l := float64(len(chains[0]))
	means := make([]float64, len(chains))
	vars := make([]float64, len(chains))
	for i, c := range chains {
		m, err := chain.Mean(c)
		if err != nil {
			return Moments{}, err
		}
		v, err := chain.SampleVariance(c)
		if err != nil {
			return Moments{}, err
		}
		means[i], vars[i] = m, v
	}

	w, err := chain.Mean(vars)
	if err != nil {
		return Moments{}, err
	}
	meanVar, err := chain.SampleVariance(means)
	if err != nil {
		return Moments{}, err
	}
	grand, err := chain.Mean(means)
	if err != nil {
		return Moments{}, err
	}

	b := l * meanVar

	return Moments{
		W:         w,
		B:         b,
		VarHat:    (l-1)/l*w + b/l,
		GrandMean: grand,
	}, nil
}
