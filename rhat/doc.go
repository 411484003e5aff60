// Package rhat computes the Gelman–Rubin potential scale reduction
// factor (R-hat) and its split-chain variant for MCMC output.
//
// 🚀 What is R-hat?
//
//	R-hat compares how much the chains disagree with each other
//	(between-chain variance B) against how noisy each chain is on its
//	own (within-chain variance W). Once every chain explores the same
//	distribution the two agree and R-hat settles near 1.0; values
//	noticeably above 1 mean the chains have not converged. The split
//	variant halves every chain first, so a single chain that drifts
//	between its own halves is caught too.
//
// ✨ Key properties:
//
//   - Stan v2.24.0 formulas, divisor conventions included:
//     W = mean(s²ₙ), B = L·Var(θ̄ₙ), var̂ = ((L−1)/L)·W + B/L,
//     R̂ = sqrt(var̂ / W)
//   - Degenerate inputs (W = 0) fail with a sentinel error — callers can
//     always tell "undefined" apart from "computed as 1.0"
//   - Pure functions over read-only chain sets; nothing cached
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mcmcdiag/rhat"
//
//	r, err := rhat.SplitRHat(chains) // chains: [][]float64, N≥2, L≥4
//	if err != nil { … }              // see chain package sentinels
//	fmt.Printf("R-hat = %.3f\n", r)
//
// The interpretation threshold (1.01? 1.1?) is caller policy; the
// package only computes the value.
//
// Complexity: O(N·L) time, O(N) extra memory.
package rhat
