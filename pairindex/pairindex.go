// SPDX-License-Identifier: MIT
// Package: erdos/pairindex
//
// pairindex.go - triangular-number arithmetic on uint64.
//
// Overflow policy:
//   - Triangular reports overflow instead of wrapping;
//   - Count caps N at math.MaxInt64 so indices also fit int64 outputs;
//   - PairOf never overflows for e < Count(n) because its correction step
//     treats an overflowing T(k) as "greater than e".

package pairindex

import (
	"fmt"
	"math"
	"math/bits"
)

// Pair is an unordered vertex pair stored as Row > Col.
type Pair struct {
	Row, Col uint64
}

// Triangular returns T(k) = k(k-1)/2, the number of pairs among k vertices.
// ok is false when the result does not fit in a uint64.
func Triangular(k uint64) (t uint64, ok bool) {
	if k == 0 {
		return 0, true
	}
	hi, lo := bits.Mul64(k, k-1)
	if hi > 1 {
		return 0, false
	}
	// k(k-1) is even, so the 65-bit product halves exactly.
	return hi<<63 | lo>>1, true
}

// Count returns N = n(n-1)/2 for a vertex count n.
func Count(n int) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("n=%d: %w", n, ErrNegative)
	}
	t, ok := Triangular(uint64(n))
	if !ok || t > math.MaxInt64 {
		return 0, fmt.Errorf("n=%d: %w", n, ErrOverflow)
	}
	return t, nil
}

// PairOf maps a linear index to its vertex pair.
//
// The row estimate solves t(t+1)/2 = e+1, i.e. row = ceil(sqrt(2(e+1)+1/4) - 1/2),
// in float64. For large e the square root can land on an adjacent integer, so
// the estimate is corrected until T(row) ≤ e < T(row+1).
//
// Complexity: O(1); the correction loop runs at most a couple of steps.
func PairOf(e uint64) Pair {
	row := uint64(math.Ceil(math.Sqrt(2*(float64(e)+1)+0.25) - 0.5))
	if row < 1 {
		row = 1
	}

	var (
		t  uint64
		ok bool
	)
	for {
		t, ok = Triangular(row)
		if ok && t <= e {
			break
		}
		row--
	}
	for {
		next, okNext := Triangular(row + 1)
		if !okNext || next > e {
			break
		}
		row++
		t = next
	}
	return Pair{Row: row, Col: e - t}
}

// IndexOf maps a pair back to its linear index: T(row) + col.
func IndexOf(p Pair) (uint64, error) {
	if p.Row <= p.Col {
		return 0, fmt.Errorf("(%d,%d): %w", p.Row, p.Col, ErrNotLowerTriangular)
	}
	t, ok := Triangular(p.Row)
	if !ok || t > math.MaxUint64-p.Col {
		return 0, fmt.Errorf("(%d,%d): %w", p.Row, p.Col, ErrOverflow)
	}
	return t + p.Col, nil
}
