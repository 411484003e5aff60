package chain

// Split halves a single chain for the split diagnostics.
//
// Contract:
//
//	first  = c[0 : L/2)
//	second = c[L − L/2 : L)
//
// When L is odd the middle draw belongs to neither half, so both halves
// always have exactly floor(L/2) draws (Stan convention: with N total
// draws, the (N+1)/2-th draw is ignored).
//
// Both halves are fresh slices; mutating them never touches c.
//
// Errors:
//   - ErrInsufficientLength — L < 2 (a zero-length half would make every
//     downstream variance statistic undefined).
func Split(c Chain) (first, second Chain, err error) {
	if len(c) < 2 {
		return nil, nil, ErrInsufficientLength
	}
	half := len(c) / 2
	first = append(Chain(nil), c[:half]...)
	second = append(Chain(nil), c[len(c)-half:]...)

	return first, second, nil
}

// SplitSet splits every chain in the set, producing 2N chains of length
// floor(L/2). Output order is deterministic and per-chain interleaved:
// chain 0 first half, chain 0 second half, chain 1 first half, and so
// on. No diagnostic depends on that order, only on count and contents.
//
// The set is validated first (≥1 chain, length ≥2, equal lengths,
// finite draws); validation errors propagate unchanged.
func SplitSet(chains ChainSet) (ChainSet, error) {
	if err := Validate(chains, 1, 2); err != nil {
		return nil, err
	}
	split := make(ChainSet, 0, 2*len(chains))
	for _, c := range chains {
		first, second, err := Split(c)
		if err != nil {
			return nil, err
		}
		split = append(split, first, second)
	}

	return split, nil
}
