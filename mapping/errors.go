// SPDX-License-Identifier: MIT

package mapping

import "errors"

var (
	// ErrOutOfRange indicates an axes count outside {0,1,2}, a negative locked
	// count, a dimension number outside the mapping, or a slice index outside
	// its dimension.
	ErrOutOfRange = errors.New("mapping: value out of range")

	// ErrDimensionMismatch indicates that a mapping and a shape (or array)
	// disagree on the number of dimensions.
	ErrDimensionMismatch = errors.New("mapping: mapping length does not match rank")

	// ErrDuplicateAxis indicates that X or Y appears more than once.
	ErrDuplicateAxis = errors.New("mapping: axis assigned to more than one dimension")

	// ErrNotAxis indicates that AssignAxis was given something other than X or Y.
	ErrNotAxis = errors.New("mapping: entry is not an axis marker")

	// ErrLockedDimension indicates an attempt to slice or re-assign a locked dimension.
	ErrLockedDimension = errors.New("mapping: dimension is locked")

	// ErrNotSliced indicates SetSlice on a dimension that is currently an axis.
	ErrNotSliced = errors.New("mapping: dimension is not sliced")

	// ErrBadSelection indicates a malformed selection string.
	ErrBadSelection = errors.New("mapping: malformed selection")
)
