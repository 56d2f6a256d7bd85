// SPDX-License-Identifier: MIT

package axis

import "errors"

var (
	// ErrTooFewValues indicates explicit axis values shorter than the axis.
	ErrTooFewValues = errors.New("axis: not enough values for axis length")

	// ErrBadLength indicates a negative axis length.
	ErrBadLength = errors.New("axis: negative axis length")
)
