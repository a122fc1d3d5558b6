// SPDX-License-Identifier: MIT
// Package: erdos/gnm
//
// engine.go - per-sample loop shared by both outputs.
//
// Sequential mode (workers == 1): one stream, samples drawn in order; sample
// k+1 starts where sample k stopped.
//
// Parallel mode (workers ≥ 2): one child stream per sample is split from the
// resolved state up-front, in sample order, then samples run on an errgroup
// bounded to workers goroutines. Every sample writes a disjoint region of the
// output, so no locking is needed.

package gnm

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/erdos/pairindex"
	"github.com/katalvlaran/erdos/randomstate"
	"github.com/katalvlaran/erdos/selection"
)

// sink receives the mapped edges of sample k.
type sink func(k int, pairs []pairindex.Pair)

// run draws req.Samples edge sets from rs and hands each to emit.
func run(method string, req *Request, rs *randomstate.State, emit sink) error {
	if req.Workers < 2 {
		for k := 0; k < req.Samples; k++ {
			if err := drawOne(method, req, rs, k, emit); err != nil {
				return err
			}
		}
		return nil
	}

	streams := make([]*randomstate.State, req.Samples)
	for k := range streams {
		streams[k] = rs.Split(uint64(k))
	}
	if klog.V(2).Enabled() {
		klog.Infof("gnm: %s split %d streams, %d workers", req, len(streams), req.Workers)
	}

	var g errgroup.Group
	g.SetLimit(req.Workers)
	for k, child := range streams {
		k, child := k, child
		g.Go(func() error {
			return drawOne(method, req, child, k, emit)
		})
	}
	return g.Wait()
}

// drawOne selects m edge indices for sample k and maps them to vertex pairs.
func drawOne(method string, req *Request, rs *randomstate.State, k int, emit sink) error {
	idx, err := selection.Sample(rs, req.pairs, req.M, req.Method, req.Policy)
	if err != nil {
		if errors.Is(err, selection.ErrPopulationTooLarge) {
			return fmt.Errorf("%s: sample %d: %w: %w", method, k, ErrOverflowRisk, err)
		}
		return fmt.Errorf("%s: sample %d: %w: %w", method, k, ErrInvalidParameter, err)
	}

	pairs := make([]pairindex.Pair, len(idx))
	for e, v := range idx {
		pairs[e] = pairindex.PairOf(v)
	}
	if klog.V(3).Enabled() {
		klog.Infof("gnm: sample %d done (%d edges)", k, len(pairs))
	}
	emit(k, pairs)
	return nil
}
