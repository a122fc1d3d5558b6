// SPDX-License-Identifier: MIT
// Package: erdos/randomstate
//
// errors.go - sentinel errors for the randomstate package.
//
// Callers MUST branch with errors.Is; messages are stable.

package randomstate

import "errors"

// ErrConfiguration indicates that the value handed to Resolve is not a supported
// random state: an unsupported type, a negative seed, or a seed above 2^32-1.
var ErrConfiguration = errors.New("randomstate: unsupported random state")

// ErrEmptySeed indicates an empty []uint32 seed array.
var ErrEmptySeed = errors.New("randomstate: empty seed array")
