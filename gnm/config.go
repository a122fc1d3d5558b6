// SPDX-License-Identifier: MIT
// Package: erdos/gnm
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   • samples     = DefaultSamples (1)
//   • randomState = nil             (process-wide default stream)
//   • method      = selection.Auto
//   • output      = EdgeArrayOutput
//   • policy      = selection.DefaultPolicy()
//   • workers     = 1               (single sequential stream)

package gnm

import "github.com/katalvlaran/erdos/selection"

// config aggregates all knobs of one call. It is resolved once and then only
// read.
type config struct {
	samples     int
	randomState any
	method      selection.Method
	output      OutputKind
	policy      selection.Policy
	workers     int
}

// newConfig applies opts over the defaults, in order.
func newConfig(opts ...Option) config {
	cfg := config{
		samples:     DefaultSamples,
		randomState: nil,
		method:      DefaultMethod,
		output:      DefaultOutput,
		policy:      selection.DefaultPolicy(),
		workers:     DefaultWorkers,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
