// Package chain defines the data model shared by every diagnostic in
// mcmcdiag: chains of scalar draws, sets of chains, their validation
// rules, and the split-in-half transform used by split R-hat and split
// ESS.
//
// 🚀 What is a chain?
//
//	One MCMC sampler run produces an ordered sequence of draws for a
//	parameter — a Chain. Several independent runs of the same sampler
//	targeting the same parameter form a ChainSet. Draw order matters
//	(autocovariance depends on it); chains within a set are otherwise
//	exchangeable.
//
// ✨ Key pieces:
//
//   - Chain / ChainSet — plain []float64 / [][]float64 aliases, so
//     callers pass sampler output directly with no conversions
//   - Validate — one place for every input rule: minimum chain count,
//     minimum length, equal lengths, finite draws
//   - Split / SplitSet — halve chains for the split diagnostics,
//     dropping the odd middle draw (Stan convention)
//   - Mean / SampleVariance — the two summary statistics every
//     diagnostic is built from, with the exact divisor conventions
//     (Σ/n and Σ/(n−1)) the formulas require
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mcmcdiag/chain"
//
//	if err := chain.Validate(chains, 2, 4); err != nil { … }
//	split, err := chain.SplitSet(chains) // 2N chains of length L/2
//
// All functions are pure: inputs are never mutated, outputs never alias
// caller storage, and every failure is a sentinel error from errors.go.
package chain
