// SPDX-License-Identifier: MIT
// Package: erdos/selection

package selection

import "github.com/katalvlaran/erdos/randomstate"

// sampleReservoir is Algorithm R: fill the reservoir with 0..k-1, then for each
// later index t draw j in [0, t]; j < k replaces slot j with t. Each t ends up
// kept with probability k/(t+1) at its step, which yields a uniform k-subset.
//
// An empty reservoir draws nothing.
//
// Complexity: O(k) memory, N-k draws.
func sampleReservoir(rs *randomstate.State, population uint64, k int) []uint64 {
	out := make([]uint64, k)
	if k == 0 {
		return out
	}
	for i := range out {
		out[i] = uint64(i)
	}

	size := uint64(k)
	var j uint64
	for t := size; t < population; t++ {
		j = rs.Interval(t)
		if j < size {
			out[j] = t
		}
	}
	return out
}
