// SPDX-License-Identifier: MIT
// Package: erdos/gnm

package gnm

import (
	"fmt"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/erdos/pairindex"
	"github.com/katalvlaran/erdos/randomstate"
)

// Sample draws a batch of G(n,m) graphs and returns them in the representation
// chosen by WithOutput (edge array by default).
//
// Example:
//
//	res, err := gnm.Sample[int64](5, 4, gnm.WithSamples(3), gnm.WithSeed(42))
func Sample[T Integer](n, m int, opts ...Option) (*Result[T], error) {
	cfg := newConfig(opts...)
	req, rs, err := prepare[T](methodSample, n, m, cfg)
	if err != nil {
		return nil, err
	}

	res := &Result[T]{Kind: req.Output}
	switch req.Output {
	case AdjacencyMatrixOutput:
		res.Matrices, err = sampleAdjacency[T](methodSample, req, rs)
	default:
		res.Edges, err = sampleEdgeArray[T](methodSample, req, rs)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// SampleEdgeArray draws a batch of G(n,m) graphs as one (2, m, samples) array.
// WithOutput is ignored.
func SampleEdgeArray[T Integer](n, m int, opts ...Option) (*EdgeArray[T], error) {
	cfg := newConfig(opts...)
	cfg.output = EdgeArrayOutput
	req, rs, err := prepare[T](methodSampleEdgeArray, n, m, cfg)
	if err != nil {
		return nil, err
	}
	return sampleEdgeArray[T](methodSampleEdgeArray, req, rs)
}

// SampleAdjacency draws a batch of G(n,m) graphs as one COO matrix per sample.
// WithOutput is ignored.
func SampleAdjacency[T Integer](n, m int, opts ...Option) ([]*Adjacency[T], error) {
	cfg := newConfig(opts...)
	cfg.output = AdjacencyMatrixOutput
	req, rs, err := prepare[T](methodSampleAdjacency, n, m, cfg)
	if err != nil {
		return nil, err
	}
	return sampleAdjacency[T](methodSampleAdjacency, req, rs)
}

// prepare validates the call and resolves its random state, in that order.
func prepare[T Integer](method string, n, m int, cfg config) (*Request, *randomstate.State, error) {
	req, err := newRequest[T](method, n, m, cfg)
	if err != nil {
		return nil, nil, err
	}
	rs, err := randomstate.Resolve(cfg.randomState)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w: %w", method, ErrConfiguration, err)
	}
	if klog.V(2).Enabled() {
		klog.Infof("gnm: %s %s", method, req)
	}
	return req, rs, nil
}

func sampleEdgeArray[T Integer](method string, req *Request, rs *randomstate.State) (*EdgeArray[T], error) {
	out := newEdgeArray[T](req.N, req.M, req.Samples)
	err := run(method, req, rs, func(k int, pairs []pairindex.Pair) {
		for e, p := range pairs {
			out.set(k, e, p)
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func sampleAdjacency[T Integer](method string, req *Request, rs *randomstate.State) ([]*Adjacency[T], error) {
	out := make([]*Adjacency[T], req.Samples)
	err := run(method, req, rs, func(k int, pairs []pairindex.Pair) {
		adj := newAdjacency[T](req.N, req.M)
		for e, p := range pairs {
			adj.set(e, p)
		}
		out[k] = adj
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
