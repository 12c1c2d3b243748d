// Package optional provides a container holding zero or one value of a type.
//
// The zero value of Optional is a valid, empty optional.
// Optional is a plain value type with no internal synchronization:
// distinct instances are independent,
// but concurrent mutation of the same instance must be externally serialized.
package optional

import "errors"

// ErrBadAccess is returned by Value when the Optional is empty.
var ErrBadAccess = errors.New("bad optional access")

// Optional represents an optional value.
// It either contains a value or it does not.
//
// When it does not, the stored value is always the zero value of T,
// so empty optionals of comparable types compare equal
// and references held by a previous value are released.
type Optional[T any] struct {
	value   T
	engaged bool
}

// New returns an Optional containing value.
func New[T any](value T) Optional[T] {
	return Optional[T]{
		value:   value,
		engaged: true,
	}
}

// Empty returns an empty Optional.
// It is equivalent to the zero value and exists to make emptiness explicit at call sites.
func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr returns an Optional containing a copy of the value ptr points to,
// or an empty Optional if ptr is nil.
func FromPtr[T any](ptr *T) Optional[T] {
	if ptr == nil {
		return Optional[T]{}
	}

	return New(*ptr)
}

// HasValue returns true if the Optional contains a value.
func (o Optional[T]) HasValue() bool {
	return o.engaged
}

// Get returns the contained value without checking for presence.
//
// The caller must ensure the Optional contains a value.
// Calling Get on an empty Optional returns the zero value of T.
// Use Value for checked access.
func (o Optional[T]) Get() T {
	return o.value
}

// Ptr returns a pointer to the stored value for in-place mutation.
//
// The caller must ensure the Optional contains a value:
// on an empty Optional the returned pointer addresses an unspecified zero value,
// and writing through it does not engage the Optional.
func (o *Optional[T]) Ptr() *T {
	return &o.value
}

// Value returns the contained value.
// It returns ErrBadAccess if the Optional is empty.
func (o Optional[T]) Value() (T, error) {
	if !o.engaged {
		var zero T

		return zero, ErrBadAccess
	}

	return o.value, nil
}

// ValueOr returns the contained value if present, otherwise fallback.
func (o Optional[T]) ValueOr(fallback T) T {
	if !o.engaged {
		return fallback
	}

	return o.value
}

// Set stores value in the Optional.
// An existing value is overwritten in place; an empty Optional becomes engaged.
func (o *Optional[T]) Set(value T) {
	o.value = value
	o.engaged = true
}

// Emplace replaces any contained value with value.
// The previous value (if any) is dropped before the new one is stored,
// after which the Optional is engaged.
func (o *Optional[T]) Emplace(value T) {
	o.Reset()

	o.value = value
	o.engaged = true
}

// Take moves the contained value out of the Optional, leaving it empty.
// It reports whether a value was present.
func (o *Optional[T]) Take() (T, bool) {
	if !o.engaged {
		var zero T

		return zero, false
	}

	value := o.value

	o.Reset()

	return value, true
}

// Reset drops the contained value, leaving the Optional empty.
// The stored value is zeroed so anything it references can be collected.
// Resetting an empty Optional is a no-op.
func (o *Optional[T]) Reset() {
	if !o.engaged {
		return
	}

	var zero T

	o.value = zero
	o.engaged = false
}
