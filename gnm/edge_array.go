// SPDX-License-Identifier: MIT
// Package: erdos/gnm
//
// edge_array.go - dense (2, m, samples) edge tensor.
//
// Layout (row-major, like the C-ordered array it mirrors):
//
//	offset(axis, e, k) = (axis·m + e)·samples + k
//
// axis 0 holds rows, axis 1 holds columns; row > column for every entry.
// Edge order along axis 1 is the draw order of the selection engine.

package gnm

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/erdos/pairindex"
)

// EdgeArray holds samples edge lists of m edges each on n vertices.
type EdgeArray[T Integer] struct {
	n, m, samples int
	data          []T
}

func newEdgeArray[T Integer](n, m, samples int) *EdgeArray[T] {
	return &EdgeArray[T]{
		n:       n,
		m:       m,
		samples: samples,
		data:    make([]T, 2*m*samples),
	}
}

func (a *EdgeArray[T]) offset(axis, e, k int) int {
	return (axis*a.m+e)*a.samples + k
}

// set stores pair p as edge e of sample k.
func (a *EdgeArray[T]) set(k, e int, p pairindex.Pair) {
	a.data[a.offset(0, e, k)] = T(p.Row)
	a.data[a.offset(1, e, k)] = T(p.Col)
}

// Shape returns (2, m, samples).
func (a *EdgeArray[T]) Shape() [3]int { return [3]int{2, a.m, a.samples} }

// Vertices returns n.
func (a *EdgeArray[T]) Vertices() int { return a.n }

// Samples returns the number of realizations.
func (a *EdgeArray[T]) Samples() int { return a.samples }

// Edges returns m, the number of edges per sample.
func (a *EdgeArray[T]) Edges() int { return a.m }

// At returns element [axis, e, k]. Panics when an index is out of range.
func (a *EdgeArray[T]) At(axis, e, k int) T {
	if axis < 0 || axis > 1 || e < 0 || e >= a.m || k < 0 || k >= a.samples {
		panic(fmt.Sprintf("gnm: EdgeArray.At(%d, %d, %d) out of range %v", axis, e, k, a.Shape()))
	}
	return a.data[a.offset(axis, e, k)]
}

// Rows returns a copy of the row endpoints of sample k in draw order.
func (a *EdgeArray[T]) Rows(k int) []T { return a.column(0, k) }

// Cols returns a copy of the column endpoints of sample k in draw order.
func (a *EdgeArray[T]) Cols(k int) []T { return a.column(1, k) }

func (a *EdgeArray[T]) column(axis, k int) []T {
	if k < 0 || k >= a.samples {
		panic(fmt.Sprintf("gnm: sample %d out of range [0,%d)", k, a.samples))
	}
	out := make([]T, a.m)
	for e := range out {
		out[e] = a.data[a.offset(axis, e, k)]
	}
	return out
}

// Pairs returns the edges of sample k as (row, col) pairs in draw order.
func (a *EdgeArray[T]) Pairs(k int) []pairindex.Pair {
	rows, cols := a.Rows(k), a.Cols(k)
	out := make([]pairindex.Pair, a.m)
	for e := range out {
		out[e] = pairindex.Pair{Row: uint64(rows[e]), Col: uint64(cols[e])}
	}
	return out
}

// EdgeSet returns the edges of sample k as a set.
func (a *EdgeArray[T]) EdgeSet(k int) map[pairindex.Pair]struct{} {
	set := make(map[pairindex.Pair]struct{}, a.m)
	for _, p := range a.Pairs(k) {
		set[p] = struct{}{}
	}
	return set
}

// Data returns the flat backing slice in (axis, edge, sample) order.
// It is shared with the array; callers must not resize it.
func (a *EdgeArray[T]) Data() []T { return a.data }

// Adjacency converts sample k to its COO matrix.
func (a *EdgeArray[T]) Adjacency(k int) *Adjacency[T] {
	adj := newAdjacency[T](a.n, a.m)
	for e, p := range a.Pairs(k) {
		adj.set(e, p)
	}
	return adj
}

// Graph builds sample k as a gonum undirected graph with nodes 0..n-1.
func (a *EdgeArray[T]) Graph(k int) *simple.UndirectedGraph {
	return buildGraph(a.n, a.Pairs(k))
}

// String summarizes the array, e.g. "EdgeArray[int64](n=1,000 shape=(2, 4,950, 10))".
func (a *EdgeArray[T]) String() string {
	return fmt.Sprintf("EdgeArray[%T](n=%s shape=(2, %s, %s))",
		*new(T), humanize.Comma(int64(a.n)), humanize.Comma(int64(a.m)), humanize.Comma(int64(a.samples)))
}
