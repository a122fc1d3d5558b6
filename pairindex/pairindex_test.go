// SPDX-License-Identifier: MIT
package pairindex_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/erdos/pairindex"
)

// walkPair is the slow reference: subtract row lengths 1,2,3,... until the
// remainder fits in the current row.
func walkPair(e uint64) pairindex.Pair {
	k := uint64(1)
	for e >= k {
		e -= k
		k++
	}
	return pairindex.Pair{Row: k, Col: e}
}

func TestTriangular(t *testing.T) {
	t.Parallel()

	tests := []struct {
		k    uint64
		want uint64
		ok   bool
	}{
		{0, 0, true},
		{1, 0, true},
		{2, 1, true},
		{5, 10, true},
		{1 << 32, 9223372034707292160, true},
		{6074000999, 18446744064889498501, true},
		{6074001001, 0, false},
		{1 << 33, 0, false},
		{math.MaxUint64, 0, false},
	}
	for _, tc := range tests {
		got, ok := pairindex.Triangular(tc.k)
		require.Equal(t, tc.ok, ok, "k=%d", tc.k)
		require.Equal(t, tc.want, got, "k=%d", tc.k)
	}
}

func TestCount(t *testing.T) {
	t.Parallel()

	n, err := pairindex.Count(5)
	require.NoError(t, err)
	require.Equal(t, uint64(10), n)

	n, err = pairindex.Count(0)
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = pairindex.Count(1 << 32)
	require.NoError(t, err)
	require.Equal(t, uint64(9223372034707292160), n)

	_, err = pairindex.Count(1<<32 + 1)
	require.ErrorIs(t, err, pairindex.ErrOverflow)

	_, err = pairindex.Count(-3)
	require.ErrorIs(t, err, pairindex.ErrNegative)
}

// TestPairOf_MatchesWalk exhausts the first rows against the reference walk.
func TestPairOf_MatchesWalk(t *testing.T) {
	t.Parallel()

	for e := uint64(0); e < 20000; e++ {
		require.Equal(t, walkPair(e), pairindex.PairOf(e), "e=%d", e)
	}
}

// TestPairOf_SmallTable pins the enumeration order.
func TestPairOf_SmallTable(t *testing.T) {
	t.Parallel()

	want := []pairindex.Pair{
		{1, 0},
		{2, 0}, {2, 1},
		{3, 0}, {3, 1}, {3, 2},
		{4, 0}, {4, 1}, {4, 2}, {4, 3},
	}
	for e, p := range want {
		require.Equal(t, p, pairindex.PairOf(uint64(e)))
	}
}

// TestRoundTrip_Boundaries covers e = 0, e = N-1 and row starts/ends at sizes
// where a float64-only estimate lands on the wrong row (e.g. T(2^31)).
func TestRoundTrip_Boundaries(t *testing.T) {
	t.Parallel()

	rows := []uint64{1, 2, 3, 44721, 44722, 1 << 16, 1 << 31, 2147495993, 3000000000, 4000000000, 1<<32 - 1}
	for _, r := range rows {
		start, ok := pairindex.Triangular(r)
		require.True(t, ok)
		candidates := []uint64{start, start + r - 1}
		if start > 0 {
			candidates = append(candidates, start-1)
		}
		if r > 1 {
			candidates = append(candidates, start+1)
		}
		for _, e := range candidates {
			p := pairindex.PairOf(e)
			require.Greater(t, p.Row, p.Col, "e=%d", e)
			back, err := pairindex.IndexOf(p)
			require.NoError(t, err)
			require.Equal(t, e, back, "e=%d p=%+v", e, p)
		}
		// The first index of row r really lands on row r.
		require.Equal(t, pairindex.Pair{Row: r, Col: 0}, pairindex.PairOf(start))
	}

	for _, n := range []int{2, 5, 50_000, 1 << 20, 1_000_000_007 / 7, 1 << 32} {
		count, err := pairindex.Count(n)
		require.NoError(t, err)
		require.Equal(t, pairindex.Pair{Row: 1, Col: 0}, pairindex.PairOf(0))
		last := pairindex.PairOf(count - 1)
		require.Equal(t, pairindex.Pair{Row: uint64(n) - 1, Col: uint64(n) - 2}, last, "n=%d", n)
		back, err := pairindex.IndexOf(last)
		require.NoError(t, err)
		require.Equal(t, count-1, back)
	}
}

// TestRoundTrip_LargeStride samples indices across N > 10^9 with a fixed stride.
func TestRoundTrip_LargeStride(t *testing.T) {
	t.Parallel()

	count, err := pairindex.Count(3_000_000)
	require.NoError(t, err)
	require.Greater(t, count, uint64(1_000_000_000))

	const stride = 1_000_003
	for e := uint64(0); e < count; e += count / stride {
		back, err := pairindex.IndexOf(pairindex.PairOf(e))
		require.NoError(t, err)
		require.Equal(t, e, back)
	}
}

func TestIndexOf_Errors(t *testing.T) {
	t.Parallel()

	_, err := pairindex.IndexOf(pairindex.Pair{Row: 2, Col: 2})
	require.ErrorIs(t, err, pairindex.ErrNotLowerTriangular)

	_, err = pairindex.IndexOf(pairindex.Pair{Row: 0, Col: 1})
	require.ErrorIs(t, err, pairindex.ErrNotLowerTriangular)

	_, err = pairindex.IndexOf(pairindex.Pair{Row: 1 << 40, Col: 0})
	require.ErrorIs(t, err, pairindex.ErrOverflow)
}
