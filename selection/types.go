// SPDX-License-Identifier: MIT
// Package: erdos/selection

package selection

import (
	"fmt"
	"math"
	"strings"
)

// Method enumerates the sampling strategies.
type Method uint8

const (
	// Auto picks a strategy from the sampling density (see Policy).
	Auto Method = iota
	// Pool materializes the population and removes k random members.
	Pool
	// Reservoir streams the population through a k-slot reservoir.
	Reservoir
	// Tracking draws with rejection of already-selected values.
	Tracking
)

var methodNames = [...]string{
	Auto:      "auto",
	Pool:      "pool",
	Reservoir: "reservoir_sampling",
	Tracking:  "tracking_selection",
}

// String returns the canonical lowercase name.
func (m Method) String() string {
	if int(m) < len(methodNames) {
		return methodNames[m]
	}
	return fmt.Sprintf("Method(%d)", uint8(m))
}

// Valid reports whether m is one of the declared strategies.
func (m Method) Valid() bool { return int(m) < len(methodNames) }

// ParseMethod accepts the canonical names plus the short aliases "reservoir"
// and "tracking". Matching is case-insensitive.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return Auto, nil
	case "pool":
		return Pool, nil
	case "reservoir", "reservoir_sampling":
		return Reservoir, nil
	case "tracking", "tracking_selection":
		return Tracking, nil
	}
	return Auto, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
}

// Auto policy defaults.
const (
	// DefaultDenseMin and DefaultDenseMax bound the density band where Auto
	// shuffles a full pool.
	DefaultDenseMin = 0.01
	DefaultDenseMax = 0.99

	// DefaultTrackingMax is the density below which Auto prefers Tracking
	// over Reservoir outside the dense band.
	DefaultTrackingMax = 0.2

	// DefaultPoolLimit caps the population Auto is willing to materialize
	// (2^27 values ≈ 1 GiB of uint64).
	DefaultPoolLimit uint64 = 1 << 27
)

// Policy holds the Auto thresholds. It only affects speed and memory, never
// the distribution of the result.
type Policy struct {
	// DenseMin < k/N < DenseMax ⇒ full pool shuffle (when N ≤ PoolLimit).
	DenseMin, DenseMax float64
	// k/N < TrackingMax ⇒ Tracking, otherwise Reservoir.
	TrackingMax float64
	// Largest population Auto may materialize; above it Auto streams instead.
	PoolLimit uint64
}

// DefaultPolicy returns the documented defaults.
func DefaultPolicy() Policy {
	return Policy{
		DenseMin:    DefaultDenseMin,
		DenseMax:    DefaultDenseMax,
		TrackingMax: DefaultTrackingMax,
		PoolLimit:   DefaultPoolLimit,
	}
}

// Validate checks that all ratios are finite, inside [0,1] and ordered:
// DenseMin ≤ DenseMax, TrackingMax ≤ DenseMax and TrackingMax < 1, so near-full
// samples never reach Tracking.
func (p Policy) Validate() error {
	for _, r := range []float64{p.DenseMin, p.DenseMax, p.TrackingMax} {
		if math.IsNaN(r) || r < 0 || r > 1 {
			return fmt.Errorf("ratio %v not in [0,1]: %w", r, ErrInvalidPolicy)
		}
	}
	if p.DenseMin > p.DenseMax {
		return fmt.Errorf("DenseMin %v > DenseMax %v: %w", p.DenseMin, p.DenseMax, ErrInvalidPolicy)
	}
	if p.TrackingMax >= 1 || p.TrackingMax > p.DenseMax {
		return fmt.Errorf("TrackingMax %v must be < 1 and ≤ DenseMax %v: %w", p.TrackingMax, p.DenseMax, ErrInvalidPolicy)
	}
	return nil
}
