// SPDX-License-Identifier: MIT
// Package: erdos/gnm
//
// adjacency.go - sparse symmetric adjacency in coordinate (COO) form.
//
// For m edges the matrix stores 2m entries: entries [0,m) are (row, col, 1)
// in draw order, entries [m,2m) are the mirrored (col, row, 1). Row > col for
// the first half, so the diagonal is never populated.

package gnm

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/erdos/pairindex"
)

// Adjacency is one sampled graph as an n×n COO matrix.
type Adjacency[T Integer] struct {
	n, m       int
	rows, cols []T
	vals       []T
}

func newAdjacency[T Integer](n, m int) *Adjacency[T] {
	vals := make([]T, 2*m)
	for i := range vals {
		vals[i] = 1
	}
	return &Adjacency[T]{
		n:    n,
		m:    m,
		rows: make([]T, 2*m),
		cols: make([]T, 2*m),
		vals: vals,
	}
}

// set stores edge e and its mirror.
func (a *Adjacency[T]) set(e int, p pairindex.Pair) {
	r, c := T(p.Row), T(p.Col)
	a.rows[e], a.cols[e] = r, c
	a.rows[a.m+e], a.cols[a.m+e] = c, r
}

// Shape returns (n, n).
func (a *Adjacency[T]) Shape() [2]int { return [2]int{a.n, a.n} }

// NNZ returns the number of stored entries, 2m.
func (a *Adjacency[T]) NNZ() int { return len(a.vals) }

// Edges returns m.
func (a *Adjacency[T]) Edges() int { return a.m }

// Entries returns copies of the coordinate arrays.
func (a *Adjacency[T]) Entries() (rows, cols, vals []T) {
	rows = append([]T(nil), a.rows...)
	cols = append([]T(nil), a.cols...)
	vals = append([]T(nil), a.vals...)
	return rows, cols, vals
}

// At returns the value at (i, j), summing duplicate coordinates.
// Complexity: O(nnz).
func (a *Adjacency[T]) At(i, j int) T {
	if i < 0 || i >= a.n || j < 0 || j >= a.n {
		panic(fmt.Sprintf("gnm: Adjacency.At(%d, %d) out of range %dx%d", i, j, a.n, a.n))
	}
	var sum T
	for x := range a.vals {
		if int(a.rows[x]) == i && int(a.cols[x]) == j {
			sum += a.vals[x]
		}
	}
	return sum
}

// Lower returns the strictly-lower-triangle coordinates in draw order.
func (a *Adjacency[T]) Lower() []pairindex.Pair {
	out := make([]pairindex.Pair, a.m)
	for e := range out {
		out[e] = pairindex.Pair{Row: uint64(a.rows[e]), Col: uint64(a.cols[e])}
	}
	return out
}

// Upper returns the strictly-upper-triangle coordinates, reflected to
// (row > col) form, in the order they are stored.
func (a *Adjacency[T]) Upper() []pairindex.Pair {
	out := make([]pairindex.Pair, a.m)
	for e := range out {
		out[e] = pairindex.Pair{Row: uint64(a.cols[a.m+e]), Col: uint64(a.rows[a.m+e])}
	}
	return out
}

// EdgeSet returns the undirected edges as a set of (row > col) pairs.
func (a *Adjacency[T]) EdgeSet() map[pairindex.Pair]struct{} {
	set := make(map[pairindex.Pair]struct{}, a.m)
	for _, p := range a.Lower() {
		set[p] = struct{}{}
	}
	return set
}

// Dense materializes the matrix as a gonum symmetric dense matrix.
// Memory: n² float64 values.
func (a *Adjacency[T]) Dense() *mat.SymDense {
	if a.n == 0 {
		return mat.NewSymDense(0, nil)
	}
	d := mat.NewSymDense(a.n, nil)
	for e := 0; e < a.m; e++ {
		i, j := int(a.rows[e]), int(a.cols[e])
		d.SetSym(i, j, d.At(i, j)+float64(a.vals[e]))
	}
	return d
}

// Graph builds the matrix as a gonum undirected graph with nodes 0..n-1.
func (a *Adjacency[T]) Graph() *simple.UndirectedGraph {
	return buildGraph(a.n, a.Lower())
}

// String summarizes the matrix, e.g. "Adjacency[int64](1,000x1,000, nnz=9,900)".
func (a *Adjacency[T]) String() string {
	n := humanize.Comma(int64(a.n))
	return fmt.Sprintf("Adjacency[%T](%sx%s, nnz=%s)", *new(T), n, n, humanize.Comma(int64(a.NNZ())))
}

// buildGraph adds nodes 0..n-1 first so isolated vertices are kept.
func buildGraph(n int, pairs []pairindex.Pair) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for v := 0; v < n; v++ {
		g.AddNode(simple.Node(v))
	}
	for _, p := range pairs {
		g.SetEdge(simple.Edge{F: simple.Node(p.Row), T: simple.Node(p.Col)})
	}
	return g
}
