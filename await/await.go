package await

import (
	"context"
	"sync"
)

// Witness is a zero-size marker carrying only its type parameter. Pass it
// where a value is needed purely so a generic type parameter can be
// inferred; it holds no state and has no behavior.
type Witness[T any] struct{}

// Awaitable is a value of type T that is either already resolved or still
// being produced. It is safe to Await from multiple goroutines; the result
// is computed once and memoized. The zero Awaitable is invalid; construct
// through Resolve, Go or Defer.
type Awaitable[T any] struct {
	s *state[T]
}

type state[T any] struct {
	once sync.Once
	done chan struct{}
	lazy func(context.Context) (T, error)
	val  T
	err  error
}

// Resolve returns an Awaitable that already holds v. Await returns
// immediately regardless of context state.
func Resolve[T any](v T) Awaitable[T] {
	s := &state[T]{done: make(chan struct{}), val: v}
	close(s.done)
	return Awaitable[T]{s: s}
}

// Go starts fn in a new goroutine immediately and returns an Awaitable for
// its result.
func Go[T any](fn func() (T, error)) Awaitable[T] {
	s := &state[T]{done: make(chan struct{})}
	go func() {
		s.val, s.err = fn()
		close(s.done)
	}()
	return Awaitable[T]{s: s}
}

// Defer returns an Awaitable whose computation runs only when first awaited.
// The first Await's context is passed to fn; the memoized result, error or
// not, is what every subsequent Await observes.
func Defer[T any](fn func(context.Context) (T, error)) Awaitable[T] {
	return Awaitable[T]{s: &state[T]{done: make(chan struct{}), lazy: fn}}
}

// Await returns the resolved value, blocking until the computation completes
// or ctx is done. A context error abandons the wait, not the computation:
// the result remains available to later Await calls.
func (a Awaitable[T]) Await(ctx context.Context) (T, error) {
	s := a.s
	if s.lazy != nil {
		s.once.Do(func() {
			go func() {
				s.val, s.err = s.lazy(ctx)
				close(s.done)
			}()
		})
	}

	select {
	case <-s.done:
		return s.val, s.err
	default:
	}

	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case <-s.done:
		return s.val, s.err
	}
}

// Resolved reports whether the value is available without blocking.
func (a Awaitable[T]) Resolved() bool {
	select {
	case <-a.s.done:
		return true
	default:
		return false
	}
}
