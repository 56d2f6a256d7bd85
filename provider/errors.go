// SPDX-License-Identifier: MIT

package provider

import "errors"

var (
	// ErrNotFound indicates an unknown dataset path.
	ErrNotFound = errors.New("provider: dataset not found")

	// ErrEmptyPath indicates an empty dataset path passed to Put.
	ErrEmptyPath = errors.New("provider: empty dataset path")

	// ErrShapeMismatch indicates an error buffer whose shape differs from
	// its value buffer.
	ErrShapeMismatch = errors.New("provider: errors shape differs from values shape")
)
