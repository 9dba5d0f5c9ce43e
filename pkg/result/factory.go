package result

import "slices"

// From wraps v in a successful Of.
func From[T any](v T) Of[T] {
	return NewOk[T, error](v)
}

// FromError wraps err in a failed Of.
func FromError[T any](err error) Of[T] {
	return NewError[T, error](err)
}

// ToResult is the functional form of From.
func ToResult[T any](v T) Of[T] {
	return From(v)
}

// ToErrorResult is the functional form of FromError.
func ToErrorResult[T any](err error) Of[T] {
	return FromError[T](err)
}

// FromValue wraps v in a successful Result with failure type E.
func FromValue[T, E any](v T) Result[T, E] {
	return NewOk[T, E](v)
}

// FromErrorValue wraps e in a failed Result with success type T.
// When T and E are the same type the type arguments must be given
// explicitly.
func FromErrorValue[T, E any](e E) Result[T, E] {
	return NewError[T, E](e)
}

// FromFunc runs fn and wraps its outcome. A returned error, or a panic
// raised by fn, yields an Error carrying that failure; otherwise the value
// is wrapped in an Ok. A panic value that is an error is kept as is.
func FromFunc[T any](fn func() (T, error)) Of[T] {
	if fn == nil {
		panic(ErrInvalidArgument.New(msgFuncAbsent))
	}

	v, err := capture(fn)
	if err != nil {
		return NewError[T, error](err)
	}
	return NewOk[T, error](v)
}

// Try is FromFunc for computations that only fail by panicking.
func Try[T any](fn func() T) Of[T] {
	if fn == nil {
		panic(ErrInvalidArgument.New(msgFuncAbsent))
	}

	return FromFunc(func() (T, error) {
		return fn(), nil
	})
}

// Collect returns the payloads of r as a slice of length zero or one.
func Collect[T, E any](r Result[T, E]) []T {
	return slices.Collect(r.All())
}

func capture[T any](fn func() (T, error)) (v T, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = recovered(p)
		}
	}()

	return fn()
}

func recovered(p any) error {
	if err, ok := p.(error); ok {
		return err
	}
	return ErrPanic.New("%v", p)
}
