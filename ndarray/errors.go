// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
//
// All functions return these sentinels (possibly wrapped with call-site
// context via %w); callers match them with errors.Is.

package ndarray

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a dimension size is negative.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrDimensionMismatch indicates that a buffer length, index count or
	// pick-list length does not agree with the array shape.
	ErrDimensionMismatch = errors.New("ndarray: dimension mismatch")

	// ErrOutOfRange indicates an index outside [0, size) for its dimension.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrBadPermutation indicates a Transpose argument that is not a
	// permutation of 0..rank-1.
	ErrBadPermutation = errors.New("ndarray: invalid axis permutation")

	// ErrNilArray indicates that a nil *Array was used.
	ErrNilArray = errors.New("ndarray: nil array")
)

// arrayErrorf tags err with the operation that detected it.
func arrayErrorf(op string, err error) error {
	return fmt.Errorf("Array.%s: %w", op, err)
}
