package chain

// Mean returns the arithmetic mean of values.
//
// Errors:
//   - ErrInsufficientLength — values is empty.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrInsufficientLength
	}
	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values)), nil
}

// SampleVariance returns the unbiased sample variance of values,
// Σ(x−x̄)² / (n−1). The n−1 divisor (Bessel's correction) is part of
// the diagnostic contract: within-chain variance W and the
// between-chain term B are both built from it.
//
// Errors:
//   - ErrInsufficientLength — fewer than 2 values.
func SampleVariance(values []float64) (float64, error) {
	if len(values) < 2 {
		return 0, ErrInsufficientLength
	}
	xbar, err := Mean(values)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, v := range values {
		d := v - xbar
		sum += d * d
	}

	return sum / float64(len(values)-1), nil
}
