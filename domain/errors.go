// SPDX-License-Identifier: MIT

package domain

import "errors"

var (
	// ErrDimensionMismatch indicates an error buffer whose length differs
	// from the value buffer.
	ErrDimensionMismatch = errors.New("domain: values and errors differ in length")

	// ErrBelowScaleMinimum indicates a domain whose lower bound is below the
	// valid minimum of the requested scale (e.g. a negative bound under Log).
	ErrBelowScaleMinimum = errors.New("domain: lower bound below scale minimum")

	// ErrUnknownScale indicates a scale name ParseScale does not recognise.
	ErrUnknownScale = errors.New("domain: unknown scale type")
)
