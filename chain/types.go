package chain

import (
	"fmt"
	"math"
)

// Chain is an ordered sequence of scalar draws from one sampler run.
// Position is significant: lag statistics depend on it.
type Chain = []float64

// ChainSet is a collection of chains for the same parameter, one per
// independent sampler run. Diagnostics require all chains in a set to
// have equal length.
type ChainSet = [][]float64

// Validate checks a ChainSet against the shared input rules:
//
//   - at least minChains chains (ErrInsufficientChains),
//   - every chain at least minLen draws long (ErrInsufficientLength),
//   - all chains of equal length (ErrUnequalLengths),
//   - every draw finite (ErrNonFiniteDraw).
//
// It is the single gate every diagnostic passes its input through, so
// all failure detection happens up front and no partial results leak.
// Complexity: O(N·L).
func Validate(chains ChainSet, minChains, minLen int) error {
	if len(chains) < minChains {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientChains, len(chains), minChains)
	}
	want := 0
	if len(chains) > 0 {
		want = len(chains[0])
	}
	for i, c := range chains {
		if len(c) < minLen {
			return fmt.Errorf("%w: chain %d has %d draws, need %d", ErrInsufficientLength, i, len(c), minLen)
		}
		if len(c) != want {
			return fmt.Errorf("%w: chain %d has %d draws, chain 0 has %d", ErrUnequalLengths, i, len(c), want)
		}
		for j, v := range c {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: chain %d draw %d = %v", ErrNonFiniteDraw, i, j, v)
			}
		}
	}

	return nil
}
