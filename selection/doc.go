// Package selection draws k distinct integers from [0, N) uniformly at random
// without replacement: every one of the C(N,k) subsets is equally likely.
//
// Strategies (Method):
//   - Pool:      materialize [0,N), then k swap-from-end removals (partial
//     Fisher–Yates). O(N) time and memory.
//   - Reservoir: stream 0..N-1 through a k-slot reservoir (Algorithm R).
//     O(k) memory, O(N) time.
//   - Tracking:  draw from [0,N) and reject values already kept in a set.
//     O(k) memory, expected O(k) draws while k ≪ N.
//   - Auto:      pick one of the above (or a full pool shuffle) from the
//     density k/N under a Policy. Thresholds tune speed only; every branch is
//     exactly uniform.
//
// Randomness:
//   - All draws go through one *randomstate.State, consumed strictly in order.
//     Sampling twice from the same state continues the stream, which is how
//     multi-sample batches stay a deterministic function of the seed.
//   - Bounded draws match numpy's randint, so with an integer seed the results
//     agree with scikit-learn's sample_without_replacement.
//
// Output order:
//   - Pool / Tracking / shuffle: draw order.
//   - Reservoir: slot order of the final reservoir.
package selection
