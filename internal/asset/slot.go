package asset

import (
	"sync"
	"sync/atomic"
)

// Slot holds a value that resolves later, possibly never.
// Readers poll Get each frame; the zero Slot is unresolved.
type Slot[T any] struct {
	value atomic.Pointer[T]
	err   atomic.Pointer[error]
	once  sync.Once
	done  chan struct{}
	init  sync.Once
}

func (s *Slot[T]) doneCh() chan struct{} {
	s.init.Do(func() { s.done = make(chan struct{}) })
	return s.done
}

// Get returns the value if it has resolved.
func (s *Slot[T]) Get() (*T, bool) {
	if s == nil {
		return nil, false
	}
	v := s.value.Load()
	return v, v != nil
}

// Ready reports whether the value has resolved.
func (s *Slot[T]) Ready() bool {
	_, ok := s.Get()
	return ok
}

// Err returns the load failure, if any.
func (s *Slot[T]) Err() error {
	if e := s.err.Load(); e != nil {
		return *e
	}
	return nil
}

// Done is closed once the slot resolves or fails.
func (s *Slot[T]) Done() <-chan struct{} {
	return s.doneCh()
}

// Set resolves the slot. Only the first Set or Fail has effect.
func (s *Slot[T]) Set(v T) {
	s.once.Do(func() {
		s.value.Store(&v)
		close(s.doneCh())
	})
}

// Fail marks the slot as permanently unresolved.
func (s *Slot[T]) Fail(err error) {
	s.once.Do(func() {
		s.err.Store(&err)
		close(s.doneCh())
	})
}
