// SPDX-License-Identifier: MIT
// Package: erdos/selection
//
// errors.go - sentinel errors for the selection package.
//
// Priority when several checks fail: ErrInvalidParameter → ErrUnknownMethod →
// ErrInvalidPolicy → ErrPopulationTooLarge.

package selection

import "errors"

var (
	// ErrInvalidParameter: k < 0 or k > N.
	ErrInvalidParameter = errors.New("selection: invalid parameter")

	// ErrUnknownMethod: Method value or name outside the supported set.
	ErrUnknownMethod = errors.New("selection: unknown method")

	// ErrInvalidPolicy: Auto thresholds outside [0,1], NaN, or DenseMin > DenseMax.
	ErrInvalidPolicy = errors.New("selection: invalid policy")

	// ErrPopulationTooLarge: a pool over N values cannot be addressed in memory.
	ErrPopulationTooLarge = errors.New("selection: population too large to materialize")

	// ErrNilState: a nil *randomstate.State was passed.
	ErrNilState = errors.New("selection: nil random state")
)
