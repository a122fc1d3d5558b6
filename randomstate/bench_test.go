// SPDX-License-Identifier: MIT
package randomstate_test

import (
	"testing"

	"github.com/katalvlaran/erdos/randomstate"
)

func BenchmarkMT19937_Uint32(b *testing.B) {
	m := randomstate.NewMT19937(1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Uint32()
	}
}

func BenchmarkState_Interval32(b *testing.B) {
	s := randomstate.FromSeed(1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.Interval(1_000_003)
	}
}

func BenchmarkState_Interval64(b *testing.B) {
	s := randomstate.FromSeed(1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.Interval(1<<40 + 7)
	}
}
