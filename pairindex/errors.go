// SPDX-License-Identifier: MIT
// Package: erdos/pairindex

package pairindex

import "errors"

var (
	// ErrNegative is returned by Count for n < 0.
	ErrNegative = errors.New("pairindex: negative vertex count")

	// ErrOverflow is returned by Count when n(n-1)/2 exceeds math.MaxInt64.
	ErrOverflow = errors.New("pairindex: pair count overflows int64")

	// ErrNotLowerTriangular is returned by IndexOf when row ≤ col.
	ErrNotLowerTriangular = errors.New("pairindex: pair is not strictly lower-triangular")
)
