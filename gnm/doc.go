// Package gnm samples the Erdős–Rényi G(n,m) model: uniformly random simple
// graphs on n vertices with exactly m edges, in batches of independent samples.
//
// How a batch is built:
//
//	options ─▶ Request (validated) ─▶ randomstate.State
//	   └─ for each sample k: selection.Sample(N=n(n-1)/2, m) ─▶ pairindex.PairOf ─▶ output
//
// Outputs:
//   - EdgeArray[T]: shape (2, m, samples). Axis 0 is row/column, axis 1 the
//     edge in draw order, axis 2 the sample. Every pair has row > column.
//   - Adjacency[T]: one COO matrix per sample, shape n×n, holding (row,col,1)
//     and (col,row,1) for each edge; the diagonal is always empty.
//
// Both outputs describe the same edge sets for the same seed.
//
// Element type:
//   - T is any Go integer type. n(n-1)/2 must be representable in T, otherwise
//     the call fails with ErrOverflowRisk before any sampling work.
//
// Randomness and reproducibility:
//   - WithSeed / WithRandomState / WithSource select the stream (see package
//     randomstate). One stream is consumed sample after sample, so a batch is a
//     deterministic function of (n, m, samples, seed, method).
//   - Integer seeds reproduce numpy/scikit-learn based G(n,m) samplers exactly.
//   - WithWorkers(w ≥ 2) derives one sub-stream per sample and runs samples
//     concurrently; results stay deterministic and do not depend on w, but they
//     differ from the single-stream results.
//
// Errors:
//   - ErrInvalidParameter, ErrOverflowRisk, ErrUnknownOutput, ErrConfiguration;
//     all are returned before the first draw, never logged, never partial.
package gnm
