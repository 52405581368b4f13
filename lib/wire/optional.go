// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

// Optional is a field slot that is absent unless explicitly set.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a present slot holding value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, set: true}
}

// Get returns the slot's value and whether it is present.
func (optional Optional[T]) Get() (T, bool) {
	return optional.value, optional.set
}

// IsSet reports whether the slot holds a value.
func (optional Optional[T]) IsSet() bool {
	return optional.set
}

// Or returns the slot's value, or fallback when absent.
func (optional Optional[T]) Or(fallback T) T {
	if optional.set {
		return optional.value
	}
	return fallback
}
