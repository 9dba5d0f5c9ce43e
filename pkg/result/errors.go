package result

import (
	"errors"

	"github.com/zeebo/errs"
)

var (
	// ErrInvalidArgument is raised when a required payload is absent.
	ErrInvalidArgument = errs.Class("invalid argument")

	// ErrInvalidState is returned by Enumerator.Current when the cursor is
	// not positioned on an element.
	ErrInvalidState = errs.Class("invalid state")

	// ErrPanic wraps a recovered panic value that was not itself an error.
	ErrPanic = errs.Class("panic")
)

var (
	// ErrCurrentBeforeMoveNext is wrapped when Current is read before the
	// first MoveNext.
	ErrCurrentBeforeMoveNext = errors.New(msgCurrentCalledBeforeMoveNext)

	// ErrEnumeratorExhausted is wrapped when Current is read after the
	// cursor has passed its last element.
	ErrEnumeratorExhausted = errors.New(msgCurrentCalledOnExhaustedEnumerator)
)
