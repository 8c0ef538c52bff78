package option

import (
	"fmt"

	"github.com/gollections/gollections/lib/internal/repr"
)

// Optional is a single-slot tagged union: either a present value of type T
// or nothing. The zero value is None.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// IsSome reports whether a value is present.
func (o Optional[T]) IsSome() bool { return o.present }

// IsNone reports whether the Optional is empty.
func (o Optional[T]) IsNone() bool { return !o.present }

// Value returns the contained value. Calling Value on an empty Optional is
// a programmer error and panics; callers are expected to check IsSome first
// or to use Get/OrElse.
func (o Optional[T]) Value() T {
	if !o.present {
		panic("option: Value() called on empty Optional")
	}
	return o.value
}

// UnsafeValue returns the contained value without checking the discriminant.
// On an empty Optional it returns T's zero value; the caller carries the
// burden of having checked IsSome.
func (o Optional[T]) UnsafeValue() T {
	return o.value
}

// Get returns the contained value and whether one is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// OrElse returns the contained value, or def when empty. Never panics.
func (o Optional[T]) OrElse(def T) T {
	if !o.present {
		return def
	}
	return o.value
}

// Take extracts the contained value and clears the Optional to None.
// Panics when already empty.
func (o *Optional[T]) Take() T {
	if !o.present {
		panic("option: Take() called on empty Optional")
	}
	v := o.value
	var zero T
	o.value = zero
	o.present = false
	return v
}

// String implements fmt.Stringer.
func (o Optional[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%s)", repr.Repr(o.value))
}
