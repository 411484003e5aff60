package ess

import (
	"math"

	"github.com/katalvlaran/mcmcdiag/chain"
	"github.com/katalvlaran/mcmcdiag/rhat"
)

// MCSE computes the Monte Carlo standard error of the posterior-mean
// estimate:
//
//	MCSE = sqrt(var̂) / sqrt(ESS)
//
// var̂ is the same pooled variance estimate R-hat uses
// (rhat.ComputeMoments), so the identity
// MCSE(chains) == sqrt(VarHat)/sqrt(EffectiveSampleSize(chains)) holds
// exactly, not approximately. Because var̂ needs the between-chain
// term, MCSE requires at least 2 chains.
//
// Any ESS or moments failure propagates unchanged — never a derived NaN.
func MCSE(chains chain.ChainSet) (float64, error) {
	essVal, err := EffectiveSampleSize(chains)
	if err != nil {
		return 0, err
	}
	m, err := rhat.ComputeMoments(chains)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(m.VarHat) / math.Sqrt(essVal), nil
}

// SplitMCSE computes MCSE over the split chain set, pairing with
// SplitEffectiveSampleSize the way MCSE pairs with EffectiveSampleSize.
func SplitMCSE(chains chain.ChainSet) (float64, error) {
	split, err := chain.SplitSet(chains)
	if err != nil {
		return 0, err
	}

	return MCSE(split)
}
