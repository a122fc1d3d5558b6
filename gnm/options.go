// SPDX-License-Identifier: MIT
// Package: erdos/gnm
//
// options.go - functional options for the gnm package.
//
// Contract:
//   • Options mutate an internal config; later options override earlier ones.
//   • Option constructors PANIC only on programmer errors that can never be
//     valid (nil source, malformed policy, workers < 1).
//   • Values that depend on the call (samples, seeds, method, output kind) are
//     validated by the sampling call and surface as sentinel errors.

package gnm

import (
	"github.com/katalvlaran/erdos/randomstate"
	"github.com/katalvlaran/erdos/selection"
)

// Option customizes a sampling call.
type Option func(*config)

// WithSamples sets the number of independent realizations (default 1).
// k < 1 is reported as ErrInvalidParameter by the call.
func WithSamples(k int) Option {
	return func(c *config) {
		c.samples = k
	}
}

// WithSeed seeds a fresh MT19937 stream. Seeds outside [0, 2^32-1] are
// reported as ErrConfiguration by the call.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.randomState = seed
	}
}

// WithRandomState accepts any form understood by randomstate.Resolve:
// nil, an integer seed, []uint32, *randomstate.State, *randomstate.MT19937,
// a randomstate.Source or a *math/rand.Rand. Passing a generator continues its
// stream, so consecutive calls draw fresh graphs.
func WithRandomState(v any) Option {
	return func(c *config) {
		c.randomState = v
	}
}

// WithSource draws from an existing generator. Panics on nil, including a
// typed nil such as (*rand.Rand)(nil).
func WithSource(src randomstate.Source) Option {
	if randomstate.IsNilSource(src) {
		panic("gnm: WithSource(nil)")
	}
	return func(c *config) {
		c.randomState = src
	}
}

// WithMethod selects the sampling strategy (default selection.Auto).
func WithMethod(m selection.Method) Option {
	return func(c *config) {
		c.method = m
	}
}

// WithOutput selects the representation returned by Sample.
// SampleEdgeArray and SampleAdjacency ignore it.
func WithOutput(kind OutputKind) Option {
	return func(c *config) {
		c.output = kind
	}
}

// WithPolicy overrides the thresholds used by selection.Auto.
// Panics when p.Validate fails.
func WithPolicy(p selection.Policy) Option {
	if err := p.Validate(); err != nil {
		panic("gnm: WithPolicy: " + err.Error())
	}
	return func(c *config) {
		c.policy = p
	}
}

// WithWorkers runs samples concurrently on up to w goroutines, each sample on
// its own derived stream. w == 1 restores the single sequential stream.
// Panics if w < 1.
func WithWorkers(w int) Option {
	if w < 1 {
		panic("gnm: WithWorkers(w<1)")
	}
	return func(c *config) {
		c.workers = w
	}
}
