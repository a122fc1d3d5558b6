// Package randomstate normalizes a seed or an existing generator handle into a
// single stateful uniform source with a bounded-integer draw primitive.
//
// What lives here:
//   - Source / Source64: the minimal generator surface (Uint32, optionally Uint64).
//   - MT19937: a Mersenne Twister seeded exactly like numpy's legacy RandomState,
//     so that integer seeds reproduce the streams researchers already know.
//   - State: the one generator threaded through a sampling call. It exposes
//     Interval (uniform in [0,max]), Intn (uniform in [0,n)) and Shuffle, all
//     using masked rejection so that the consumed stream is bit-compatible with
//     numpy's randint / permutation.
//   - Resolve: turns nil | integer seed | []uint32 | *State | *MT19937 | Source
//     into a *State, or fails with ErrConfiguration.
//   - DeriveSeed / Split: SplitMix64-style derivation of independent sub-streams.
//
// Determinism:
//   - Same seed and same sequence of operations ⇒ bit-identical output.
//   - Resolve(nil) returns the process-wide default state. It is seeded once from
//     the clock and guarded by a mutex, so it is the only non-reproducible path.
//
// Concurrency:
//   - A *State built from a seed or a caller source is NOT goroutine-safe.
//     Give each goroutine its own state (see Split).
package randomstate
