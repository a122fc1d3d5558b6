// SPDX-License-Identifier: MIT
// Package: erdos/selection
//
// pool.go - strategies that materialize the whole population.

package selection

import (
	"fmt"
	"math"

	"github.com/katalvlaran/erdos/randomstate"
)

// newPool returns [0, population) as a slice.
func newPool(population uint64) ([]uint64, error) {
	if population > math.MaxInt {
		return nil, fmt.Errorf("N=%d: %w", population, ErrPopulationTooLarge)
	}
	pool := make([]uint64, population)
	for i := range pool {
		pool[i] = uint64(i)
	}
	return pool, nil
}

// samplePool performs k swap-from-end removals: draw j in the live prefix
// [0, N-i), emit pool[j], then move the last live value into slot j.
//
// Complexity: O(N) time and memory for the pool, O(k) draws.
func samplePool(rs *randomstate.State, population uint64, k int) ([]uint64, error) {
	pool, err := newPool(population)
	if err != nil {
		return nil, err
	}

	out := make([]uint64, k)
	var live, j uint64
	for i := 0; i < k; i++ {
		live = population - uint64(i)
		j = rs.Intn(live)
		out[i] = pool[j]
		pool[j] = pool[live-1]
	}
	return out, nil
}

// sampleShuffle permutes the full pool and keeps the first k values.
// It spends N-1 draws regardless of k, which is why Auto only uses it in the
// dense band.
func sampleShuffle(rs *randomstate.State, population uint64, k int) ([]uint64, error) {
	pool, err := newPool(population)
	if err != nil {
		return nil, err
	}
	rs.Shuffle(pool)
	return pool[:k:k], nil
}
