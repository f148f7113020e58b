// Package lazy provides memoized deferred computations (thunks) and a
// least-fixed-point combinator built on top of them. It has no
// dependencies and is usable on its own, for example to build a
// self-referential argument bundle before loading a module tree.
package lazy

import "errors"

// ErrSelfReference is returned when a thunk is forced while its own
// computation is still running, which would otherwise recurse forever.
var ErrSelfReference = errors.New("lazy: thunk forced during its own evaluation")

type state int

const (
	unevaluated state = iota
	evaluating
	done
)

// Thunk is a deferred computation of a value of type T that runs at
// most once; both the value and the error are memoized. A Thunk is not
// safe for concurrent use: the tree walk that produces them is a
// single-goroutine traversal.
type Thunk[T any] struct {
	compute func() (T, error)
	state   state
	value   T
	err     error
}

// New creates a thunk around the given computation. The computation is
// not run until Force is called.
func New[T any](compute func() (T, error)) *Thunk[T] {
	return &Thunk[T]{compute: compute}
}

// Of creates an already-evaluated thunk holding the given value.
func Of[T any](value T) *Thunk[T] {
	return &Thunk[T]{state: done, value: value}
}

// Force evaluates the thunk if it has not been evaluated yet and
// returns the memoized outcome. Forcing a thunk from within its own
// computation returns ErrSelfReference instead of recursing.
func (t *Thunk[T]) Force() (T, error) {
	switch t.state {
	case done:
		return t.value, t.err
	case evaluating:
		var zero T
		return zero, ErrSelfReference
	}

	t.state = evaluating
	t.value, t.err = t.compute()
	t.state = done
	t.compute = nil
	return t.value, t.err
}

// Fix computes the least fixed point of f: the value x satisfying
// x = f(x). Because evaluation is strict, f receives its own eventual
// result as a thunk; it may capture the thunk inside the value it
// builds (closures, deferred fields) but forcing it before f has
// returned yields ErrSelfReference.
func Fix[T any](f func(self *Thunk[T]) (T, error)) (T, error) {
	var self *Thunk[T]
	self = New(func() (T, error) {
		return f(self)
	})
	return self.Force()
}
