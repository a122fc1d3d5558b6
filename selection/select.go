// SPDX-License-Identifier: MIT
// Package: erdos/selection
//
// select.go - entry point and Auto dispatch.

package selection

import (
	"fmt"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/erdos/randomstate"
)

// strategy is the concrete algorithm a Method resolves to. Auto adds one
// branch of its own: the full pool shuffle.
type strategy uint8

const (
	strategyPool strategy = iota
	strategyShuffle
	strategyReservoir
	strategyTracking
)

func (s strategy) String() string {
	switch s {
	case strategyPool:
		return "pool"
	case strategyShuffle:
		return "pool-shuffle"
	case strategyReservoir:
		return "reservoir"
	case strategyTracking:
		return "tracking"
	}
	return "unknown"
}

// Sample returns k distinct integers from [0, population), uniformly over all
// k-subsets, drawing from rs.
//
// Errors (checked before any draw):
//   - ErrNilState when rs is nil;
//   - ErrInvalidParameter when k < 0 or k > population;
//   - ErrUnknownMethod for an undeclared Method;
//   - ErrInvalidPolicy for a policy failing Validate (Auto only);
//   - ErrPopulationTooLarge when Pool must materialize more than math.MaxInt values.
func Sample(rs *randomstate.State, population uint64, k int, method Method, policy Policy) ([]uint64, error) {
	if rs == nil {
		return nil, ErrNilState
	}
	if k < 0 || uint64(k) > population {
		return nil, fmt.Errorf("k=%d, N=%d: %w", k, population, ErrInvalidParameter)
	}

	var s strategy
	switch method {
	case Auto:
		if err := policy.Validate(); err != nil {
			return nil, err
		}
		s = choose(population, k, policy)
		if klog.V(2).Enabled() {
			klog.Infof("selection: auto picked %s for k=%d of N=%d", s, k, population)
		}
	case Pool:
		s = strategyPool
	case Reservoir:
		s = strategyReservoir
	case Tracking:
		s = strategyTracking
	default:
		return nil, fmt.Errorf("%s: %w", method, ErrUnknownMethod)
	}

	switch s {
	case strategyPool:
		return samplePool(rs, population, k)
	case strategyShuffle:
		return sampleShuffle(rs, population, k)
	case strategyTracking:
		return sampleTracking(rs, population, k), nil
	default:
		return sampleReservoir(rs, population, k), nil
	}
}

// choose maps a density to a strategy.
//
//	DenseMin < k/N < DenseMax and N ≤ PoolLimit → full pool shuffle
//	k/N < min(TrackingMax, DenseMax)            → tracking
//	otherwise                                   → reservoir
//
// N == 0 counts as density 1.
func choose(population uint64, k int, p Policy) strategy {
	ratio := 1.0
	if population != 0 {
		ratio = float64(k) / float64(population)
	}
	if ratio > p.DenseMin && ratio < p.DenseMax && population <= p.PoolLimit {
		return strategyShuffle
	}
	if ratio < p.TrackingMax && ratio < p.DenseMax {
		return strategyTracking
	}
	return strategyReservoir
}
