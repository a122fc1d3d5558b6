// SPDX-License-Identifier: MIT
// Package: erdos/randomstate
//
// mt19937.go - Mersenne Twister (Matsumoto & Nishimura, 1998).
//
// Seeding follows numpy's legacy RandomState:
//   - an integer seed s ∈ [0, 2^32-1] uses init_genrand(s);
//   - an array seed uses init_by_array(key).
//
// Uint64 concatenates two consecutive 32-bit outputs, high word first, which is
// what numpy's legacy bit generator does for 64-bit bounded draws.

package randomstate

const (
	mtN         = 624
	mtM         = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff

	// mtArraySeedBase is the init_genrand seed used before mixing an array key.
	mtArraySeedBase = 19650218
)

// MT19937 is a 32-bit Mersenne Twister. The zero value is not usable; build one
// with NewMT19937 or NewMT19937Array.
type MT19937 struct {
	mt  [mtN]uint32
	pos int
}

// NewMT19937 returns a generator seeded with init_genrand(seed).
func NewMT19937(seed uint32) *MT19937 {
	m := &MT19937{}
	m.Seed(seed)
	return m
}

// NewMT19937Array returns a generator seeded with init_by_array(key).
// An empty key is rejected with ErrEmptySeed.
func NewMT19937Array(key []uint32) (*MT19937, error) {
	if len(key) == 0 {
		return nil, ErrEmptySeed
	}
	m := &MT19937{}
	m.SeedArray(key)
	return m, nil
}

// Seed resets the state with init_genrand(seed).
func (m *MT19937) Seed(seed uint32) {
	m.mt[0] = seed
	for i := 1; i < mtN; i++ {
		prev := m.mt[i-1]
		m.mt[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	m.pos = mtN
}

// SeedArray resets the state with init_by_array(key). key must be non-empty.
func (m *MT19937) SeedArray(key []uint32) {
	m.Seed(mtArraySeedBase)

	i, j := 1, 0
	k := mtN
	if len(key) > k {
		k = len(key)
	}
	for ; k > 0; k-- {
		prev := m.mt[i-1]
		m.mt[i] = (m.mt[i] ^ ((prev ^ (prev >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= mtN {
			m.mt[0] = m.mt[mtN-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = mtN - 1; k > 0; k-- {
		prev := m.mt[i-1]
		m.mt[i] = (m.mt[i] ^ ((prev ^ (prev >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= mtN {
			m.mt[0] = m.mt[mtN-1]
			i = 1
		}
	}
	m.mt[0] = mtUpperMask
	m.pos = mtN
}

// twist regenerates the whole block of mtN words.
func (m *MT19937) twist() {
	var y uint32
	for i := 0; i < mtN; i++ {
		y = (m.mt[i] & mtUpperMask) | (m.mt[(i+1)%mtN] & mtLowerMask)
		next := m.mt[(i+mtM)%mtN] ^ (y >> 1)
		if y&1 != 0 {
			next ^= mtMatrixA
		}
		m.mt[i] = next
	}
	m.pos = 0
}

// Uint32 returns the next tempered 32-bit output.
func (m *MT19937) Uint32() uint32 {
	if m.pos >= mtN {
		m.twist()
	}
	y := m.mt[m.pos]
	m.pos++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Uint64 returns two consecutive outputs as hi<<32 | lo.
func (m *MT19937) Uint64() uint64 {
	hi := uint64(m.Uint32())
	lo := uint64(m.Uint32())
	return hi<<32 | lo
}
