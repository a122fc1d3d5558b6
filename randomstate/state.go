// SPDX-License-Identifier: MIT
// Package: erdos/randomstate
//
// state.go - the stateful generator handed to sampling strategies.
//
// Bounded draws use masked rejection: take the smallest all-ones mask covering
// max, draw words and keep the first one ≤ max. It is slower than Lemire's
// multiply-shift on average but it is the exact scheme numpy uses for randint
// and permutation, so integer seeds reproduce numpy-based results.
//
// Word width policy:
//   - max ≤ 2^32-1 consumes one Uint32 per attempt;
//   - larger max consumes one 64-bit word per attempt (Uint64 if the source has
//     it, otherwise two Uint32 draws, high word first).

package randomstate

import (
	"math"
	"math/bits"
)

// State is a single reusable pseudo-random stream.
// It is not safe for concurrent use unless built around a goroutine-safe Source.
type State struct {
	src   Source
	src64 Source64 // nil when src cannot produce 64-bit words natively
}

// New wraps src into a State. Panics on nil or typed-nil src (programmer error).
func New(src Source) *State {
	if IsNilSource(src) {
		panic("randomstate: New(nil)")
	}
	s := &State{src: src}
	if s64, ok := src.(Source64); ok {
		s.src64 = s64
	}
	return s
}

// FromSeed returns a State over a fresh MT19937 seeded with init_genrand(seed).
func FromSeed(seed uint32) *State {
	return New(NewMT19937(seed))
}

// Source returns the underlying generator.
func (s *State) Source() Source { return s.src }

// Uint32 draws one 32-bit word.
func (s *State) Uint32() uint32 { return s.src.Uint32() }

// Uint64 draws one 64-bit word.
func (s *State) Uint64() uint64 {
	if s.src64 != nil {
		return s.src64.Uint64()
	}
	hi := uint64(s.src.Uint32())
	lo := uint64(s.src.Uint32())
	return hi<<32 | lo
}

// Interval returns a uniform integer in the closed range [0, bound].
// bound == 0 returns 0 without consuming the stream.
//
// Complexity: expected < 2 attempts per call (mask covers fewer than 2·(bound+1) values).
func (s *State) Interval(bound uint64) uint64 {
	if bound == 0 {
		return 0
	}
	mask := uint64(math.MaxUint64) >> bits.LeadingZeros64(bound)

	var v uint64
	if bound <= math.MaxUint32 {
		for {
			v = uint64(s.src.Uint32()) & mask
			if v <= bound {
				return v
			}
		}
	}
	for {
		v = s.Uint64() & mask
		if v <= bound {
			return v
		}
	}
}

// Intn returns a uniform integer in [0, n). n == 0 returns 0 without a draw;
// callers validate n ≥ 1 before asking.
func (s *State) Intn(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	return s.Interval(n - 1)
}

// Shuffle permutes a in place with Fisher–Yates, walking from the last slot
// down to index 1 and swapping with Interval(i).
//
// Complexity: O(len(a)) time, O(1) extra space.
func (s *State) Shuffle(a []uint64) {
	var j uint64
	for i := len(a) - 1; i > 0; i-- {
		j = s.Interval(uint64(i))
		a[i], a[j] = a[j], a[i]
	}
}
