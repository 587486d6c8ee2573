// Package downcast keeps values behind reference counted handles and converts
// handles between a capability and the concrete type implementing it.
package downcast

import (
	"errors"
	"fmt"

	"go.uber.org/atomic"
)

var ErrReleased = errors.New("shared handle released")

// Shared is a handle to a value whose lifetime counter is shared by every
// handle created from it with [Shared.Clone] or [Cast].
//
// A plain assignment copies the handle without counting it: both copies stay
// Valid but only one reference is held. Take new references with Clone and
// release each of them exactly once.
type Shared[T any] struct {
	value T
	refs  *atomic.Int64
}

func MakeShared[T any](value T) Shared[T] {
	return Shared[T]{value: value, refs: atomic.NewInt64(1)}
}

func (s Shared[T]) Valid() bool {
	return s.refs != nil
}

// Get returns the held value. It panics if the handle was released.
func (s Shared[T]) Get() T {
	if s.refs == nil {
		panic(fmt.Errorf("get %T: %w", s.value, ErrReleased))
	}
	return s.value
}

// UseCount reports how many handles share the value, 0 for a released handle.
func (s Shared[T]) UseCount() int64 {
	if s.refs == nil {
		return 0
	}
	return s.refs.Load()
}

func (s Shared[T]) Clone() Shared[T] {
	if s.refs == nil {
		return s
	}
	s.refs.Inc()
	return s
}

// Release drops this handle. Releasing twice is a no-op.
func (s *Shared[T]) Release() {
	if s.refs == nil {
		return
	}
	s.refs.Dec()
	var zero T
	s.value = zero
	s.refs = nil
}

// Cast checks at runtime whether the held value is a To and, if so, returns a
// handle of that type sharing the lifetime counter of s. It is used in both
// directions: from a capability to the concrete type and back.
func Cast[To, From any](s Shared[From]) (Shared[To], bool) {
	if s.refs == nil {
		return Shared[To]{}, false
	}
	to, ok := any(s.value).(To)
	if !ok {
		return Shared[To]{}, false
	}
	s.refs.Inc()
	return Shared[To]{value: to, refs: s.refs}, true
}

// SameObject reports whether both handles share one lifetime counter.
func SameObject[A, B any](a Shared[A], b Shared[B]) bool {
	return a.refs != nil && a.refs == b.refs
}
