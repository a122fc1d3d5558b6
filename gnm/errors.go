// SPDX-License-Identifier: MIT
// Package: erdos/gnm
//
// errors.go - sentinel errors for the gnm package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached once per call: "<Method>: <detail>: %w".
//   • Lower-level sentinels (selection, randomstate, pairindex) stay reachable
//     through the chain when they are the cause.
//   • Runtime paths never panic; option constructors panic on programmer errors.
//
// Priority when several checks fail:
//   ErrInvalidParameter (sizes) → ErrOverflowRisk → ErrInvalidParameter (method/policy)
//   → ErrUnknownOutput → ErrConfiguration.

package gnm

import "errors"

var (
	// ErrInvalidParameter: n < 1, m < 0, m > n(n-1)/2, n < 2 with m > 0,
	// samples < 1, or an unknown selection method / invalid policy.
	ErrInvalidParameter = errors.New("gnm: invalid parameter")

	// ErrOverflowRisk: n(n-1)/2 is not representable in the element type (or
	// in int64), or the output would not fit in addressable memory.
	ErrOverflowRisk = errors.New("gnm: element type overflow risk")

	// ErrUnknownOutput: output kind outside {edge_array, adjacency_matrix}.
	ErrUnknownOutput = errors.New("gnm: unknown output kind")

	// ErrConfiguration: the random state is not a supported seed or generator.
	ErrConfiguration = errors.New("gnm: unsupported random state")
)
