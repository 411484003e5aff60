package rhat_test

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// normalChains draws len(mus) chains of l iid Normal(muᵢ, sigma) values
// from one fixed-seed source, so each test consumes a deterministic
// stream and stays reproducible run to run.
func normalChains(seed uint64, mus []float64, sigma float64, l int) [][]float64 {
	src := rand.NewSource(seed)
	chains := make([][]float64, len(mus))
	for i, mu := range mus {
		dist := distuv.Normal{Mu: mu, Sigma: sigma, Src: src}
		c := make([]float64, l)
		for j := range c {
			c[j] = dist.Rand()
		}
		chains[i] = c
	}

	return chains
}
