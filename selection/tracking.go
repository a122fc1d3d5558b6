// SPDX-License-Identifier: MIT
// Package: erdos/selection

package selection

import "github.com/katalvlaran/erdos/randomstate"

// sampleTracking draws from the whole population and rejects repeats until k
// distinct values are kept. Expected draws are N·(H_N - H_{N-k}), close to k
// while k ≪ N and unbounded-looking as k → N, so Auto never sends the dense
// regime here.
//
// Complexity: O(k) memory.
func sampleTracking(rs *randomstate.State, population uint64, k int) []uint64 {
	out := make([]uint64, k)
	drawn := make(map[uint64]struct{}, k)

	var v uint64
	for i := 0; i < k; i++ {
		v = rs.Intn(population)
		for {
			if _, seen := drawn[v]; !seen {
				break
			}
			v = rs.Intn(population)
		}
		drawn[v] = struct{}{}
		out[i] = v
	}
	return out
}
