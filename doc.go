// Package erdos generates batches of Erdős–Rényi G(n,m) random graphs: simple
// undirected graphs on n vertices with exactly m edges, each drawn uniformly
// from all C(n(n-1)/2, m) possibilities.
//
// The module is split into small packages that can be used on their own:
//
//	randomstate/ - numpy-compatible MT19937, bounded draws, seed resolution,
//	               per-sample stream splitting
//	selection/   - k-of-N sampling without replacement (pool, reservoir,
//	               tracking, auto)
//	pairindex/   - bijection between edge indices and lower-triangle pairs
//	gnm/         - public API: options, validation, EdgeArray and COO
//	               Adjacency outputs, gonum views
//
// Quick start:
//
//	arr, err := gnm.SampleEdgeArray[int64](1000, 5000, gnm.WithSamples(8), gnm.WithSeed(1337))
//	if err != nil { ... }
//	g := arr.Graph(0) // *simple.UndirectedGraph
//
// Integer seeds reproduce numpy/scikit-learn based samplers bit for bit.
package erdos
