// Package pairindex enumerates the unordered vertex pairs of the complete graph
// K_n as linear indices and maps between the two forms.
//
// Enumeration (strict lower triangle, row-major):
//
//	index(row, col) = row·(row-1)/2 + col,   0 ≤ col < row < n
//
//	row 1: (1,0)                  → 0
//	row 2: (2,0) (2,1)            → 1 2
//	row 3: (3,0) (3,1) (3,2)      → 3 4 5
//
// The pair count is N = Count(n) = n(n-1)/2, and [0, N) is exactly the index
// space sampled by the selection engine.
//
// PairOf inverts the enumeration with a floating-point square root followed by
// an integer correction, so the result is exact for every index up to
// math.MaxInt64 even where float64 rounds to an adjacent integer.
package pairindex
