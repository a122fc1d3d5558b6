// SPDX-License-Identifier: MIT
// Package: erdos/gnm

package gnm

import (
	"fmt"
	"strings"
)

// OutputKind selects the representation of a batch.
type OutputKind uint8

const (
	// EdgeArrayOutput returns one EdgeArray of shape (2, m, samples).
	EdgeArrayOutput OutputKind = iota
	// AdjacencyMatrixOutput returns one sparse symmetric matrix per sample.
	AdjacencyMatrixOutput
)

// String returns "edge_array" or "adjacency_matrix".
func (k OutputKind) String() string {
	switch k {
	case EdgeArrayOutput:
		return "edge_array"
	case AdjacencyMatrixOutput:
		return "adjacency_matrix"
	}
	return fmt.Sprintf("OutputKind(%d)", uint8(k))
}

// Valid reports whether k is a declared output kind.
func (k OutputKind) Valid() bool {
	return k == EdgeArrayOutput || k == AdjacencyMatrixOutput
}

// ParseOutputKind accepts "edge_array" and "adjacency_matrix" (case-insensitive).
func ParseOutputKind(s string) (OutputKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "edge_array", "":
		return EdgeArrayOutput, nil
	case "adjacency_matrix":
		return AdjacencyMatrixOutput, nil
	}
	return EdgeArrayOutput, fmt.Errorf("%q: %w", s, ErrUnknownOutput)
}

// Result carries the output of Sample. Exactly one of Edges / Matrices is set,
// according to Kind.
type Result[T Integer] struct {
	Kind     OutputKind
	Edges    *EdgeArray[T]
	Matrices []*Adjacency[T]
}
