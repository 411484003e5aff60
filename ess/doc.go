// Package ess estimates how much independent information autocorrelated
// MCMC draws actually carry: effective sample size (ESS) and the Monte
// Carlo standard error (MCSE) derived from it.
//
// 🚀 What is ESS?
//
//	Successive MCMC draws are correlated, so 4000 draws are usually
//	"worth" far fewer independent samples. ESS divides the total draw
//	count by the integrated autocorrelation time τ — the number of
//	correlated draws equivalent to one independent draw. MCSE then
//	turns ESS into an error bar: sd̂ / sqrt(ESS).
//
// ✨ Key properties:
//
//   - Stan v2.24.0 semantics throughout: chain-averaged lag
//     autocovariance, Geyer's initial positive sequence, the initial
//     monotone adjustment, the even-lag bias term, τ = −1 + 2·Σρ̂
//   - ESS ≤ N·L always — correlated draws never report more
//     information than the raw draw count
//   - Degenerate inputs (all-constant chains, non-positive τ) fail
//     with sentinel errors instead of returning Inf or NaN
//   - Split variants catch within-chain non-stationarity, mirroring
//     split R-hat
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mcmcdiag/ess"
//
//	n, err := ess.EffectiveSampleSize(chains) // chains: [][]float64, L≥4
//	se, err := ess.MCSE(chains)               // needs N≥2 (pooled variance)
//
// Complexity: O(N·L²) time worst case (direct-summation autocovariance
// over all lags), O(N·L) memory.
package ess
