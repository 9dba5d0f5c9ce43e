package result

// Enumerator is a cursor over the zero or one payloads of a Result.
// An Enumerator is owned by a single traversal and is not safe for
// concurrent use.
type Enumerator[T any] interface {
	// MoveNext advances the cursor and reports whether it is positioned
	// on an element.
	MoveNext() bool

	// Current returns the element under the cursor. It fails with
	// ErrCurrentBeforeMoveNext before the first MoveNext and with
	// ErrEnumeratorExhausted once the cursor has passed the end.
	Current() (T, error)

	// Reset moves the cursor back before the first element.
	Reset()
}

const (
	beforeStart = -1
	atElement   = 0
	exhausted   = 1
)

type okEnumerator[T any] struct {
	value T
	index int
}

func newOkEnumerator[T any](v T) *okEnumerator[T] {
	return &okEnumerator[T]{value: v, index: beforeStart}
}

func (e *okEnumerator[T]) MoveNext() bool {
	if e.index < exhausted {
		e.index++
	}
	return e.index == atElement
}

func (e *okEnumerator[T]) Current() (T, error) {
	switch e.index {
	case beforeStart:
		var zero T
		return zero, ErrInvalidState.Wrap(ErrCurrentBeforeMoveNext)
	case atElement:
		return e.value, nil
	default:
		var zero T
		return zero, ErrInvalidState.Wrap(ErrEnumeratorExhausted)
	}
}

func (e *okEnumerator[T]) Reset() {
	e.index = beforeStart
}

// errorEnumerator never reaches an element: its first MoveNext goes
// straight to exhausted.
type errorEnumerator[T any] struct {
	index int
}

func newErrorEnumerator[T any]() *errorEnumerator[T] {
	return &errorEnumerator[T]{index: beforeStart}
}

func (e *errorEnumerator[T]) MoveNext() bool {
	e.index = atElement
	return false
}

func (e *errorEnumerator[T]) Current() (T, error) {
	var zero T
	if e.index == beforeStart {
		return zero, ErrInvalidState.Wrap(ErrCurrentBeforeMoveNext)
	}
	return zero, ErrInvalidState.Wrap(ErrEnumeratorExhausted)
}

func (e *errorEnumerator[T]) Reset() {
	e.index = beforeStart
}

// Exhaust advances e until it reports no more elements and returns it.
func Exhaust[T any](e Enumerator[T]) Enumerator[T] {
	for e.MoveNext() {
	}
	return e
}
