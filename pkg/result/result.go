// Package result provides a discriminated Result type: a value that is
// either an Ok wrapping a success payload of type T, or an Error wrapping
// a failure payload of type E.
//
// Of[T] is the common case where the failure payload is a plain error.
package result

import (
	"fmt"
	"iter"
)

// Result is either an Ok[T, E] or an Error[T, E]. No other implementations
// exist; callers discriminate with IsOk/IsError or a type switch.
type Result[T, E any] interface {
	IsOk() bool
	IsError() bool

	// All returns a sequence holding the success payload, if any.
	// The sequence can be ranged over any number of times.
	All() iter.Seq[T]

	// Enumerator returns a new cursor over the success payload.
	Enumerator() Enumerator[T]

	String() string

	sealed()
}

// Of is a Result whose failure payload is an error captured from a
// computation.
type Of[T any] = Result[T, error]

// Ok is the successful variant of Result. Build one with NewOk or a
// factory; the zero value carries no payload and is only useful as a type
// token.
type Ok[T, E any] struct {
	value T
}

// NewOk wraps v in an Ok. It panics with ErrInvalidArgument if v is absent
// (a nil pointer, map, chan, func or interface).
func NewOk[T, E any](v T) Ok[T, E] {
	if absent(v) {
		panic(ErrInvalidArgument.New(msgOkValueAbsent))
	}
	return Ok[T, E]{value: v}
}

func (r Ok[T, E]) Value() T {
	return r.value
}

func (Ok[T, E]) IsOk() bool {
	return true
}

func (Ok[T, E]) IsError() bool {
	return false
}

func (r Ok[T, E]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(r.value)
	}
}

func (r Ok[T, E]) Enumerator() Enumerator[T] {
	return newOkEnumerator(r.value)
}

func (r Ok[T, E]) String() string {
	return fmt.Sprintf("Ok(%v)", r.value)
}

func (Ok[T, E]) sealed() {}

// Error is the failure variant of Result. Build one with NewError or a
// factory; the zero value carries no payload and is only useful as a type
// token.
type Error[T, E any] struct {
	err E
}

// NewError wraps e in an Error. It panics with ErrInvalidArgument if e is
// absent.
func NewError[T, E any](e E) Error[T, E] {
	if absent(e) {
		panic(ErrInvalidArgument.New(msgErrorValueAbsent))
	}
	return Error[T, E]{err: e}
}

func (r Error[T, E]) ErrorValue() E {
	return r.err
}

func (Error[T, E]) IsOk() bool {
	return false
}

func (Error[T, E]) IsError() bool {
	return true
}

func (Error[T, E]) All() iter.Seq[T] {
	return func(func(T) bool) {}
}

func (Error[T, E]) Enumerator() Enumerator[T] {
	return newErrorEnumerator[T]()
}

func (r Error[T, E]) String() string {
	return fmt.Sprintf("Error(%v)", r.err)
}

func (Error[T, E]) sealed() {}

// Map applies selector to the payload of an Ok and wraps the outcome in a
// new Ok. An Error is passed through with the same failure payload and
// selector is never called.
func Map[T, U, E any](r Result[T, E], selector func(T) U) Result[U, E] {
	if absent(r) {
		panic(ErrInvalidArgument.New(msgResultAbsent))
	}

	switch v := r.(type) {
	case Ok[T, E]:
		return NewOk[U, E](selector(v.value))
	case *Ok[T, E]:
		return Map(Result[T, E](*v), selector)
	case Error[T, E]:
		return Error[U, E]{err: v.err}
	case *Error[T, E]:
		return Error[U, E]{err: v.err}
	default:
		panic(unknownVariant(r))
	}
}

// MapFunc is Map for selectors that can fail. A returned error, or a panic,
// inside selector turns the result into an Error.
func MapFunc[T, U any](r Of[T], selector func(T) (U, error)) Of[U] {
	if absent(r) {
		panic(ErrInvalidArgument.New(msgResultAbsent))
	}

	switch v := r.(type) {
	case Ok[T, error]:
		return FromFunc(func() (U, error) {
			return selector(v.value)
		})
	case *Ok[T, error]:
		return MapFunc(Of[T](*v), selector)
	case Error[T, error]:
		return Error[U, error]{err: v.err}
	case *Error[T, error]:
		return Error[U, error]{err: v.err}
	default:
		panic(unknownVariant(r))
	}
}

func unknownVariant(r any) error {
	return ErrInvalidArgument.New(msgUnknownVariant, r)
}
