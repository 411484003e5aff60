package rhat

import (
	"math"

	"github.com/katalvlaran/mcmcdiag/chain"
)

// RHat — potential scale reduction factor.
//
// Algorithm Outline:
//  1. Per chain n: mean θ̄ₙ and unbiased variance s²ₙ (divisor L−1).
//  2. W    = mean(s²ₙ)
//     B    = L · Var(θ̄ₙ)                 (sample variance of the means)
//     var̂ = ((L−1)/L)·W + B/L
//  3. R̂   = sqrt(var̂ / W)
//
// Equivalently R̂ = sqrt((B/W + L − 1)/L), the form used by the Stan
// v2.24.0 reference implementation; the two are algebraically identical.
//
// The result is always ≥ 0. A value near 1.0 indicates convergence;
// how far above 1 is tolerable is caller policy.
//
// Errors:
//   - chain.ErrInsufficientChains  — fewer than 2 chains.
//   - chain.ErrInsufficientLength  — chains shorter than 2 draws.
//   - chain.ErrUnequalLengths, chain.ErrNonFiniteDraw — malformed input.
//   - chain.ErrDegenerateVariance  — W = 0 (every chain perfectly
//     constant): R-hat is undefined, never silently NaN or Inf.
func RHat(chains chain.ChainSet) (float64, error) {
	m, err := ComputeMoments(chains)
	if err != nil {
		return 0, err
	}
	if m.W == 0 {
		return 0, chain.ErrDegenerateVariance
	}

	return math.Sqrt(m.VarHat / m.W), nil
}

// SplitRHat computes R-hat over the split chain set: every chain is
// halved first (odd middle draw dropped), so 2N chains of length
// floor(L/2) enter the R-hat formula. Splitting detects
// non-stationarity within a single chain — a chain whose first and
// second halves disagree inflates B exactly like two divergent chains
// would.
//
// Preconditions tighten accordingly: N ≥ 2 chains of length ≥ 4, so
// each half still has the 2 draws a variance needs.
//
// Errors: as RHat, plus propagated split failures.
func SplitRHat(chains chain.ChainSet) (float64, error) {
	if err := chain.Validate(chains, 2, 4); err != nil {
		return 0, err
	}
	split, err := chain.SplitSet(chains)
	if err != nil {
		return 0, err
	}

	return RHat(split)
}
