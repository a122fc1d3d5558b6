// SPDX-License-Identifier: MIT
// Package: erdos/randomstate

package randomstate

// Source is a uniform 32-bit generator. Every draw made by this module is
// expressed in terms of Uint32 so that the consumed stream is well defined.
type Source interface {
	Uint32() uint32
}

// Source64 is a Source that can also produce a 64-bit word directly.
// *math/rand.Rand and *MT19937 both implement it.
type Source64 interface {
	Source
	Uint64() uint64
}
