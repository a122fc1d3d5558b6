// SPDX-License-Identifier: MIT
package randomstate_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/erdos/randomstate"
)

func TestResolve_AcceptedForms(t *testing.T) {
	t.Parallel()

	want := randomstate.NewMT19937(42).Uint32()

	seeds := []any{42, int8(42), int16(42), int32(42), int64(42), uint(42), uint8(42), uint16(42), uint32(42), uint64(42)}
	for _, seed := range seeds {
		s, err := randomstate.Resolve(seed)
		require.NoError(t, err, "%T", seed)
		require.Equal(t, want, s.Uint32(), "%T", seed)
	}

	// Handles keep their stream position.
	mt := randomstate.NewMT19937(42)
	s, err := randomstate.Resolve(mt)
	require.NoError(t, err)
	require.Equal(t, want, s.Uint32())

	st := randomstate.FromSeed(3)
	got, err := randomstate.Resolve(st)
	require.NoError(t, err)
	require.Same(t, st, got)

	r := rand.New(rand.NewSource(3))
	s, err = randomstate.Resolve(r)
	require.NoError(t, err)
	require.Equal(t, rand.New(rand.NewSource(3)).Uint32(), s.Uint32())

	arr, err := randomstate.Resolve([]uint32{12345})
	require.NoError(t, err)
	require.Equal(t, uint32(1789368711), arr.Uint32())

	def, err := randomstate.Resolve(nil)
	require.NoError(t, err)
	require.Same(t, randomstate.Default(), def)
}

func TestResolve_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    any
	}{
		{"negative", -1},
		{"negative int64", int64(-7)},
		{"too large", int64(1) << 32},
		{"too large uint64", uint64(1) << 40},
		{"float", 1.5},
		{"string", "1337"},
		{"empty array", []uint32{}},
		{"nil mt", (*randomstate.MT19937)(nil)},
		{"nil rand", (*rand.Rand)(nil)},
		{"nil custom source", (*countingSource)(nil)},
		{"int slice", []int{1, 2}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s, err := randomstate.Resolve(tc.v)
			require.ErrorIs(t, err, randomstate.ErrConfiguration)
			require.Nil(t, s)
		})
	}
}

// TestDefault_ConcurrentUse hammers the shared default state from goroutines;
// run with -race to catch unguarded access.
func TestDefault_ConcurrentUse(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := randomstate.Default()
			for i := 0; i < 1000; i++ {
				_ = s.Intn(17)
			}
		}()
	}
	wg.Wait()
}

func TestIsNilSource(t *testing.T) {
	t.Parallel()

	require.True(t, randomstate.IsNilSource(nil))
	require.True(t, randomstate.IsNilSource((*rand.Rand)(nil)))
	require.True(t, randomstate.IsNilSource((*randomstate.MT19937)(nil)))
	require.True(t, randomstate.IsNilSource((*countingSource)(nil)))
	require.False(t, randomstate.IsNilSource(randomstate.NewMT19937(1)))
	require.False(t, randomstate.IsNilSource(rand.New(rand.NewSource(1))))
}
