// SPDX-License-Identifier: MIT
// Package: erdos/randomstate
//
// resolve.go - normalization of caller-provided random state.
//
// Accepted forms (anything else ⇒ ErrConfiguration):
//   - nil                          ⇒ process-wide default state;
//   - any Go integer in [0,2^32-1] ⇒ fresh MT19937 via init_genrand;
//   - []uint32 (non-empty)         ⇒ fresh MT19937 via init_by_array;
//   - *State                       ⇒ used as is (stream continues);
//   - *MT19937, Source, *rand.Rand ⇒ wrapped, stream continues.

package randomstate

import (
	"fmt"
	"math"
	"math/rand"
	"reflect"
	"sync"
	"time"
)

// maxSeed is the largest integer seed accepted (numpy legacy contract).
const maxSeed = math.MaxUint32

var (
	defaultOnce  sync.Once
	defaultState *State
)

// lockedSource serializes access to a shared generator.
type lockedSource struct {
	mu  sync.Mutex
	src *MT19937
}

func (l *lockedSource) Uint32() uint32 {
	l.mu.Lock()
	v := l.src.Uint32()
	l.mu.Unlock()
	return v
}

func (l *lockedSource) Uint64() uint64 {
	l.mu.Lock()
	v := l.src.Uint64()
	l.mu.Unlock()
	return v
}

// Default returns the process-wide state used when no random state is given.
// It is seeded once from the wall clock and safe for concurrent use; it is the
// only non-reproducible stream in this package.
func Default() *State {
	defaultOnce.Do(func() {
		mix := uint64(DeriveSeed(time.Now().UnixNano(), 0))
		mt := &MT19937{}
		mt.SeedArray([]uint32{uint32(mix), uint32(mix >> 32)})
		defaultState = New(&lockedSource{src: mt})
	})
	return defaultState
}

// Resolve turns v into a *State. See the file header for the accepted forms.
func Resolve(v any) (*State, error) {
	switch x := v.(type) {
	case nil:
		return Default(), nil
	case *State:
		if x == nil {
			return Default(), nil
		}
		return x, nil
	case *MT19937:
		if x == nil {
			return nil, fmt.Errorf("nil *MT19937: %w", ErrConfiguration)
		}
		return New(x), nil
	case []uint32:
		mt, err := NewMT19937Array(x)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		return New(mt), nil
	case int:
		return seedSigned(int64(x))
	case int8:
		return seedSigned(int64(x))
	case int16:
		return seedSigned(int64(x))
	case int32:
		return seedSigned(int64(x))
	case int64:
		return seedSigned(x)
	case uint:
		return seedUnsigned(uint64(x))
	case uint8:
		return seedUnsigned(uint64(x))
	case uint16:
		return seedUnsigned(uint64(x))
	case uint32:
		return FromSeed(x), nil
	case uint64:
		return seedUnsigned(x)
	case *rand.Rand:
		if x == nil {
			return nil, fmt.Errorf("nil *rand.Rand: %w", ErrConfiguration)
		}
		return New(x), nil
	case Source:
		if IsNilSource(x) {
			return nil, fmt.Errorf("nil %T: %w", x, ErrConfiguration)
		}
		return New(x), nil
	default:
		return nil, fmt.Errorf("type %T: %w", v, ErrConfiguration)
	}
}

func seedSigned(seed int64) (*State, error) {
	if seed < 0 {
		return nil, fmt.Errorf("seed %d < 0: %w", seed, ErrConfiguration)
	}
	return seedUnsigned(uint64(seed))
}

func seedUnsigned(seed uint64) (*State, error) {
	if seed > maxSeed {
		return nil, fmt.Errorf("seed %d > %d: %w", seed, uint64(maxSeed), ErrConfiguration)
	}
	return FromSeed(uint32(seed)), nil
}

// IsNilSource reports whether src is nil or a typed nil (a nil pointer, map,
// slice, func or chan stored in the interface).
func IsNilSource(src Source) bool {
	if src == nil {
		return true
	}
	switch v := reflect.ValueOf(src); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
