package ess

import (
	"errors"

	"github.com/katalvlaran/mcmcdiag/chain"
)

// ErrInvalidLag indicates a requested lag bound outside [0, L−1].
var ErrInvalidLag = errors.New("ess: maxLag must be in [0, len(chain)-1]")

// Autocovariance computes the lag-t autocovariance of a single chain
// for t = 0..maxLag by direct summation:
//
//	γ_t = (1/L) · Σ_{i=0}^{L−t−1} (θ_i − θ̄)(θ_{i+t} − θ̄)
//
// The divisor is L at every lag (Stan convention), so γ_0 is the
// biased variance of the chain; the ESS formulas below rescale it
// where the unbiased estimate is needed. Direct summation is used
// rather than an FFT: it reproduces the Stan reference values exactly
// within float tolerance, and the Geyer truncation keeps the useful
// lag range short in practice.
//
// Errors:
//   - chain.ErrInsufficientLength — empty chain.
//   - chain.ErrNonFiniteDraw      — NaN or ±Inf draw.
//   - ErrInvalidLag               — maxLag outside [0, L−1].
func Autocovariance(c chain.Chain, maxLag int) ([]float64, error) {
	if err := chain.Validate(chain.ChainSet{c}, 1, 1); err != nil {
		return nil, err
	}
	l := len(c)
	if maxLag < 0 || maxLag >= l {
		return nil, ErrInvalidLag
	}

	m, err := chain.Mean(c)
	if err != nil {
		return nil, err
	}
	centered := make([]float64, l)
	for i, v := range c {
		centered[i] = v - m
	}

	acov := make([]float64, maxLag+1)
	for t := 0; t <= maxLag; t++ {
		var sum float64
		for i := 0; i+t < l; i++ {
			sum += centered[i] * centered[i+t]
		}
		acov[t] = sum / float64(l)
	}

	return acov, nil
}
