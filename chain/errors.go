package chain

import "errors"

// Sentinel errors for the whole diagnostic taxonomy. They live here,
// in the data-model package, so rhat and ess report failures from one
// shared vocabulary and callers match them with errors.Is.
var (
	// ErrInsufficientChains indicates fewer chains than the requested
	// diagnostic requires (e.g. R-hat needs at least two).
	ErrInsufficientChains = errors.New("chain: not enough chains for the requested diagnostic")

	// ErrInsufficientLength indicates a chain shorter than the minimum
	// needed for the requested statistic (splitting needs 2 draws,
	// variance needs 2, ESS needs 4).
	ErrInsufficientLength = errors.New("chain: chain too short for the requested diagnostic")

	// ErrUnequalLengths indicates chains of differing lengths within one
	// set. Sets are never silently truncated to the shortest chain.
	ErrUnequalLengths = errors.New("chain: all chains in a set must have equal length")

	// ErrNonFiniteDraw indicates a NaN or ±Inf draw value.
	ErrNonFiniteDraw = errors.New("chain: draws must be finite")

	// ErrDegenerateVariance indicates zero within-chain variance
	// (all draws identical), which leaves R-hat and ESS undefined.
	ErrDegenerateVariance = errors.New("chain: zero variance leaves the diagnostic undefined")

	// ErrDegenerateAutocorrelation indicates a non-positive integrated
	// autocorrelation time, which leaves ESS undefined.
	ErrDegenerateAutocorrelation = errors.New("chain: non-positive autocorrelation time leaves ESS undefined")
)
