// SPDX-License-Identifier: MIT
// Package: erdos/randomstate
//
// derive.go - independent sub-streams for parallel work.
//
// A single stream forces samples to be drawn one after the other. To run samples
// concurrently, derive one child state per sample up-front from the parent:
// every Split consumes exactly one 64-bit word of the parent, mixes it with the
// stream id and seeds a fresh MT19937 through init_by_array. The children are
// deterministic for a given parent state and split order.

package randomstate

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with the SplitMix64 finalizer.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Split returns a new State over an MT19937 seeded from one parent draw and
// the stream id. The parent advances by one 64-bit word.
//
// Call during setup, never from several goroutines on the same parent.
func (s *State) Split(stream uint64) *State {
	parent := int64(s.Uint64())
	mix := uint64(DeriveSeed(parent, stream))

	mt := &MT19937{}
	mt.SeedArray([]uint32{uint32(mix), uint32(mix >> 32), uint32(stream), uint32(stream >> 32)})
	return New(mt)
}
