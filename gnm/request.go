// SPDX-License-Identifier: MIT
// Package: erdos/gnm
//
// request.go - validated, immutable description of one sampling call.
//
// Validation happens entirely here, before the random state is touched, so a
// failing call never consumes the caller's stream.

package gnm

import (
	"errors"
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/erdos/pairindex"
	"github.com/katalvlaran/erdos/selection"
)

// Integer is the set of element types an output may use.
type Integer = constraints.Integer

// Request is the resolved form of (n, m, options).
type Request struct {
	N       int              // vertex count
	M       int              // edges per sample
	Samples int              // independent realizations
	Method  selection.Method // sampling strategy
	Output  OutputKind       // representation
	Policy  selection.Policy // Auto thresholds
	Workers int              // 1 ⇒ single stream

	pairs uint64 // n(n-1)/2
}

// Pairs returns n(n-1)/2, the size of the edge-index space.
func (r *Request) Pairs() uint64 { return r.pairs }

// String renders the request for logs, e.g. "G(n=50, m=1,225)×10 auto→edge_array".
func (r *Request) String() string {
	return fmt.Sprintf("G(n=%s, m=%s)×%s %s→%s",
		humanize.Comma(int64(r.N)), humanize.Comma(int64(r.M)), humanize.Comma(int64(r.Samples)),
		r.Method, r.Output)
}

// newRequest validates a call for element type T.
func newRequest[T Integer](method string, n, m int, cfg config) (*Request, error) {
	if n < MinVertices {
		return nil, fmt.Errorf("%s: n=%d < %d: %w", method, n, MinVertices, ErrInvalidParameter)
	}
	if m < 0 {
		return nil, fmt.Errorf("%s: m=%d < 0: %w", method, m, ErrInvalidParameter)
	}
	if cfg.samples < 1 {
		return nil, fmt.Errorf("%s: samples=%d < 1: %w", method, cfg.samples, ErrInvalidParameter)
	}
	if n < 2 && m > 0 {
		return nil, fmt.Errorf("%s: n=%d admits no edge, m=%d: %w", method, n, m, ErrInvalidParameter)
	}

	pairs, err := pairindex.Count(n)
	if err != nil {
		if errors.Is(err, pairindex.ErrOverflow) {
			return nil, fmt.Errorf("%s: %w: %w", method, ErrOverflowRisk, err)
		}
		return nil, fmt.Errorf("%s: %w: %w", method, ErrInvalidParameter, err)
	}
	if uint64(m) > pairs {
		return nil, fmt.Errorf("%s: m=%s > n(n-1)/2=%s: %w",
			method, humanize.Comma(int64(m)), humanize.Comma(int64(pairs)), ErrInvalidParameter)
	}
	if limit := maxValue[T](); pairs > limit {
		return nil, fmt.Errorf("%s: n(n-1)/2=%s exceeds element max %s: %w",
			method, humanize.Comma(int64(pairs)), humanize.Comma(int64(limit)), ErrOverflowRisk)
	}
	if m > 0 && (m > math.MaxInt/2 || cfg.samples > math.MaxInt/(2*m)) {
		return nil, fmt.Errorf("%s: 2·m·samples exceeds addressable length: %w", method, ErrOverflowRisk)
	}

	if !cfg.method.Valid() {
		return nil, fmt.Errorf("%s: %w: %w", method, ErrInvalidParameter, selection.ErrUnknownMethod)
	}
	if cfg.method == selection.Auto {
		if err = cfg.policy.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", method, ErrInvalidParameter, err)
		}
	}
	if !cfg.output.Valid() {
		return nil, fmt.Errorf("%s: %s: %w", method, cfg.output, ErrUnknownOutput)
	}

	return &Request{
		N:       n,
		M:       m,
		Samples: cfg.samples,
		Method:  cfg.method,
		Output:  cfg.output,
		Policy:  cfg.policy,
		Workers: cfg.workers,
		pairs:   pairs,
	}, nil
}

// maxValue returns the largest value representable by T, as a uint64.
func maxValue[T Integer]() uint64 {
	var zero T
	if ones := ^zero; ones > zero {
		return uint64(ones) // unsigned
	}
	// Signed: count value bits until the shift reaches the sign bit.
	bits := 0
	for v := T(1); v > 0; v <<= 1 {
		bits++
	}
	return 1<<bits - 1
}
