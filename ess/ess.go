package ess

import (
	"math"

	"github.com/katalvlaran/mcmcdiag/chain"
)

// identicalTol bounds how far apart two draws may sit and still count
// as "the same value" for the all-constant guard (Stan uses 1e-10).
const identicalTol = 1e-10

// EffectiveSampleSize estimates the number of independent draws the
// chain set is worth.
//
// Algorithm Outline (Stan v2.24.0 / Geyer's initial monotone sequence):
//  1. Per chain: lag autocovariances γ_t (divisor L) for t = 0..L−1.
//  2. var⁺ = ((L−1)/L)·mean(γ₀·L/(L−1)) [+ Var(chain means) if N > 1].
//  3. Combined autocorrelations ρ̂_t = 1 − (W − mean_c γ_t) / var⁺,
//     walked in lag pairs; stop at the first pair with
//     ρ̂_even + ρ̂_odd ≤ 0 (initial positive sequence). The walk leaves
//     the last pair of lags out as a bias term that reduces variance
//     for antithetic chains.
//  4. Enforce monotone non-increase over the retained pair sums
//     (initial monotone sequence), averaging any pair that rises.
//  5. τ̂ = −1 + 2·Σ ρ̂ + bias term; ESS = N·L / τ̂, capped at N·L.
//
// Works for a single chain (N = 1); the between-chain term simply
// drops out of var⁺.
//
// Errors:
//   - chain.ErrInsufficientChains       — empty chain set.
//   - chain.ErrInsufficientLength       — fewer than 4 draws per chain.
//   - chain.ErrUnequalLengths           — chains of differing length.
//   - chain.ErrNonFiniteDraw            — NaN or ±Inf draw.
//   - chain.ErrDegenerateVariance       — every draw identical (within 1e-10).
//   - chain.ErrDegenerateAutocorrelation — τ̂ ≤ 0; no floor is substituted,
//     the caller learns the diagnostic is unavailable.
func EffectiveSampleSize(chains chain.ChainSet) (float64, error) {
	if err := chain.Validate(chains, 1, 4); err != nil {
		return 0, err
	}
	numChains := len(chains)
	numDraws := len(chains[0])

	// All-constant input has no autocorrelation structure to estimate.
	// The comparison runs across chain boundaries, so N distinct flat
	// chains are caught as well once combined with zero within-variance.
	prev := chains[0][0]
	allSame := true
	for _, c := range chains {
		for _, v := range c {
			if math.Abs(v-prev) >= identicalTol {
				allSame = false
			}
			prev = v
		}
	}
	if allSame {
		return 0, chain.ErrDegenerateVariance
	}

	chainAcov := make([][]float64, numChains)
	chainMean := make([]float64, numChains)
	chainVar := make([]float64, numChains)
	for i, c := range chains {
		acov, err := Autocovariance(c, numDraws-1)
		if err != nil {
			return 0, err
		}
		m, err := chain.Mean(c)
		if err != nil {
			return 0, err
		}
		chainAcov[i] = acov
		chainMean[i] = m
		chainVar[i] = acov[0] * float64(numDraws) / float64(numDraws-1)
	}

	meanVar := mean(chainVar)
	varPlus := meanVar * float64(numDraws-1) / float64(numDraws)
	if numChains > 1 {
		v, err := chain.SampleVariance(chainMean)
		if err != nil {
			return 0, err
		}
		varPlus += v
	}

	// Geyer's initial positive sequence over paired lags. The walk stops
	// at num_draws-4 so the final lag pair stays available as the bias
	// term below.
	rhoHat := make([]float64, numDraws)
	acovLag := make([]float64, numChains)
	for i := range chainAcov {
		acovLag[i] = chainAcov[i][1]
	}
	rhoHatEven := 1.0
	rhoHat[0] = rhoHatEven
	rhoHatOdd := 1.0 - (meanVar-mean(acovLag))/varPlus
	rhoHat[1] = rhoHatOdd

	s := 1
	for s < numDraws-4 && rhoHatEven+rhoHatOdd > 0 {
		for i := range chainAcov {
			acovLag[i] = chainAcov[i][s+1]
		}
		rhoHatEven = 1.0 - (meanVar-mean(acovLag))/varPlus
		for i := range chainAcov {
			acovLag[i] = chainAcov[i][s+2]
		}
		rhoHatOdd = 1.0 - (meanVar-mean(acovLag))/varPlus
		if rhoHatEven+rhoHatOdd >= 0 {
			rhoHat[s+1] = rhoHatEven
			rhoHat[s+2] = rhoHatOdd
		}
		s += 2
	}
	maxS := s

	// Even-lag bias term: reduces estimator variance for antithetic chains.
	if rhoHatEven > 0 {
		rhoHat[maxS+1] = rhoHatEven
	}

	// Initial monotone sequence: no retained pair sum may exceed the
	// previous one; rising pairs are averaged down.
	for s := 1; maxS >= 3 && s <= maxS-3; s += 2 {
		if rhoHat[s+1]+rhoHat[s+2] > rhoHat[s-1]+rhoHat[s] {
			rhoHat[s+1] = (rhoHat[s-1] + rhoHat[s]) / 2
			rhoHat[s+2] = rhoHat[s+1]
		}
	}

	numTotal := float64(numChains) * float64(numDraws)
	var sum float64
	for _, r := range rhoHat[:maxS] {
		sum += r
	}
	tauHat := -1.0 + 2.0*sum + rhoHat[maxS+1]
	if tauHat <= 0 {
		return 0, chain.ErrDegenerateAutocorrelation
	}

	result := numTotal / tauHat
	if result > numTotal {
		result = numTotal
	}

	return result, nil
}

// SplitEffectiveSampleSize computes ESS over the split chain set: each
// chain halved (odd middle draw dropped) before estimation, so a chain
// whose halves disagree deflates the estimate the same way split R-hat
// inflates. Requires L ≥ 8 so each half keeps the 4 draws ESS needs.
//
// Errors: as EffectiveSampleSize, plus propagated split failures.
func SplitEffectiveSampleSize(chains chain.ChainSet) (float64, error) {
	split, err := chain.SplitSet(chains)
	if err != nil {
		return 0, err
	}

	return EffectiveSampleSize(split)
}

// mean of a non-empty slice. Callers in this package guarantee
// len(xs) ≥ 1; the exported, error-returning variant lives in chain.
func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}
