// Package mcmcdiag is an in-memory toolkit for judging the quality of
// Markov Chain Monte Carlo sampler output — convergence and precision
// diagnostics over plain numeric chains.
//
// 🚀 What is mcmcdiag?
//
//	A sampler-agnostic library that consumes raw chains of scalar draws
//	(from Stan, PyMC, Turing.jl, your own Metropolis loop, …) and answers
//	two questions about them:
//		• Did the chains converge to the same distribution?   → rhat
//		• How much information do the correlated draws carry? → ess, mcse
//
// ✨ Why choose mcmcdiag?
//
//   - Reference numerics — R-hat, split R-hat, ESS and MCSE follow the
//     Stan v2.24.0 formulas exactly (divisor conventions included)
//   - Explicit failures — degenerate inputs return sentinel errors,
//     never a silent NaN or Inf
//   - Pure functions — no shared state, no caching; safe to call
//     concurrently on shared read-only chain sets
//   - Pure Go — no cgo, tiny dependency surface
//
// Everything is organized under three subpackages:
//
//	chain/ — chain & chain-set data model, validation, chain splitting
//	rhat/  — within/between-chain variance decomposition, (split) R-hat
//	ess/   — autocovariance, effective sample size, Monte Carlo std error
//
// Quick example:
//
//	chains := [][]float64{draws1, draws2, draws3, draws4}
//	r, err := rhat.SplitRHat(chains)   // ≈ 1.0 once converged
//	n, err := ess.EffectiveSampleSize(chains)
//	se, err := ess.MCSE(chains)        // = sd_hat / sqrt(n)
//
// Dive into each package's doc.go for formulas, edge-case policy and
// worked examples.
//
//	go get github.com/katalvlaran/mcmcdiag
package mcmcdiag
