package chain_test

import (
	"fmt"

	"github.com/katalvlaran/mcmcdiag/chain"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSplit
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Split a 5-draw chain for the split diagnostics. The middle draw (3)
//	belongs to neither half, so both halves keep exactly floor(5/2)=2 draws.
//
// Complexity: O(L) time, O(L) memory.
func ExampleSplit() {
	first, second, err := chain.Split([]float64{1, 2, 3, 4, 5})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("first: ", first)
	fmt.Println("second:", second)
	// Output:
	// first:  [1 2]
	// second: [4 5]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSplitSet
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Split two sampler runs into the 4 half-chains consumed by split R-hat.
//	Output order is per-chain interleaved and deterministic.
func ExampleSplitSet() {
	split, err := chain.SplitSet([][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, half := range split {
		fmt.Println(half)
	}
	// Output:
	// [1 2]
	// [3 4]
	// [5 6]
	// [7 8]
}
