package ess_test

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// normalChains draws n chains of l iid Normal(0, 1) values from one
// fixed-seed source, so each test consumes a deterministic stream.
func normalChains(seed uint64, n, l int) [][]float64 {
	src := rand.NewSource(seed)
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	chains := make([][]float64, n)
	for i := range chains {
		c := make([]float64, l)
		for j := range c {
			c[j] = dist.Rand()
		}
		chains[i] = c
	}

	return chains
}

// ar1Chains draws n chains of length l from a stationary AR(1) process
// x_t = phi·x_{t−1} + ε_t with ε ~ Normal(0, 1), initialized from the
// stationary distribution so no burn-in is needed.
func ar1Chains(seed uint64, n int, phi float64, l int) [][]float64 {
	src := rand.NewSource(seed)
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	chains := make([][]float64, n)
	for i := range chains {
		c := make([]float64, l)
		x := dist.Rand() / math.Sqrt(1-phi*phi)
		for j := range c {
			x = phi*x + dist.Rand()
			c[j] = x
		}
		chains[i] = c
	}

	return chains
}
