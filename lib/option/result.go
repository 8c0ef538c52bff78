package option

import (
	"fmt"

	"github.com/gollections/gollections/lib/internal/repr"
)

// Result is a single-slot tagged union: either a value of type T or an
// error describing its absence. Unlike Optional, the empty state carries a
// payload inspectable via Err.
type Result[T any] struct {
	value T
	err   error
}

// Ok returns a Result holding v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err returns a Result in the error state. A nil err marks the Result as
// failed with an unspecified cause rather than succeeding, so passing nil
// is a programmer error and panics.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("option: Err() called with nil error")
	}
	return Result[T]{err: err}
}

// ErrFrom transfers the error out of a failed Result of any other value
// type, discarding that type. Panics if other succeeded.
func ErrFrom[T, U any](other Result[U]) Result[T] {
	if other.err == nil {
		panic("option: ErrFrom() called with successful Result")
	}
	return Result[T]{err: other.err}
}

// IsOk reports whether a value is present.
func (r Result[T]) IsOk() bool { return r.err == nil }

// IsErr reports whether the Result is in the error state.
func (r Result[T]) IsErr() bool { return r.err != nil }

// Value returns the contained value. Calling Value on a failed Result is a
// programmer error and panics with the carried error.
func (r Result[T]) Value() T {
	if r.err != nil {
		panic(fmt.Sprintf("option: Value() called on failed Result: %v", r.err))
	}
	return r.value
}

// Err returns the carried error, or nil when the Result succeeded.
func (r Result[T]) Err() error { return r.err }

// Unwrap returns the value and error as an ordinary Go pair.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// OrElse returns the contained value, or def when failed. Never panics.
func (r Result[T]) OrElse(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// String implements fmt.Stringer.
func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%s)", repr.Repr(r.value))
}
