// SPDX-License-Identifier: MIT
// Package: erdos/gnm

package gnm

import "github.com/katalvlaran/erdos/selection"

// Method names used as error prefixes.
const (
	methodSample          = "Sample"
	methodSampleEdgeArray = "SampleEdgeArray"
	methodSampleAdjacency = "SampleAdjacency"
)

// Defaults applied by newConfig.
const (
	// DefaultSamples is the number of independent realizations per call.
	DefaultSamples = 1

	// DefaultMethod lets the selection engine pick a strategy.
	DefaultMethod = selection.Auto

	// DefaultOutput is the edge-array representation.
	DefaultOutput = EdgeArrayOutput

	// DefaultWorkers keeps the single sequential stream.
	DefaultWorkers = 1
)

// MinVertices is the smallest vertex count accepted; any m > 0 additionally
// needs at least two vertices.
const MinVertices = 1
