// SPDX-License-Identifier: MIT

// Package ndarray - Array storage (row-major) & safe accessors.
//
// Purpose:
//   - Keep one flat buffer and address it with the explicit formula
//     offset + Σ idx[k]*strides[k].
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep traversal deterministic (row-major odometer, last dimension fastest).

package ndarray

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew       = "New"
	ctxFromData  = "FromData"
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxPick      = "Pick"
	ctxTranspose = "Transpose"
)

// Array is an N-dimensional view over a flat float64 buffer.
//   - shape holds the size of every dimension (len(shape) is the rank).
//   - strides holds the element step of every dimension inside data.
//   - offset is the position of the element at index (0, …, 0).
//
// Arrays returned by New, FromData and Materialize are contiguous and own
// their buffer; arrays returned by Pick and Transpose alias their base.
type Array struct {
	shape   []int
	strides []int
	offset  int
	data    []float64
}

var _ fmt.Stringer = (*Array)(nil)

// New allocates a zero-filled contiguous array of the given shape.
// A nil or empty shape yields a rank-0 array holding a single value.
//
// Errors:
//   - ErrBadShape if any size is negative.
func New(shape []int) (*Array, error) {
	size, err := sizeOf(shape)
	if err != nil {
		return nil, arrayErrorf(ctxNew, err)
	}

	return &Array{
		shape:   cloneInts(shape),
		strides: rowMajorStrides(shape),
		data:    make([]float64, size),
	}, nil
}

// FromData wraps a copy of data as a contiguous array of the given shape.
// len(data) must equal the product of shape (1 for rank 0).
//
// Errors:
//   - ErrBadShape if any size is negative.
//   - ErrDimensionMismatch if len(data) disagrees with shape.
func FromData(data []float64, shape []int) (*Array, error) {
	size, err := sizeOf(shape)
	if err != nil {
		return nil, arrayErrorf(ctxFromData, err)
	}
	if len(data) != size {
		return nil, fmt.Errorf("Array.%s: %d values for shape %v: %w", ctxFromData, len(data), shape, ErrDimensionMismatch)
	}

	buf := make([]float64, size)
	copy(buf, data)

	return &Array{
		shape:   cloneInts(shape),
		strides: rowMajorStrides(shape),
		data:    buf,
	}, nil
}

// Rank returns the number of dimensions.
func (a *Array) Rank() int { return len(a.shape) }

// Shape returns a copy of the dimension sizes.
func (a *Array) Shape() []int { return cloneInts(a.shape) }

// Strides returns a copy of the per-dimension element steps.
func (a *Array) Strides() []int { return cloneInts(a.strides) }

// Size returns the number of logical elements (product of the shape).
func (a *Array) Size() int {
	n := 1
	for _, s := range a.shape {
		n *= s
	}

	return n
}

// IsContiguous reports whether the logical elements occupy a dense
// row-major run of the underlying buffer, starting at the offset.
func (a *Array) IsContiguous() bool {
	want := 1
	for k := len(a.shape) - 1; k >= 0; k-- {
		if a.shape[k] == 1 {
			continue // stride of a unit dimension is irrelevant
		}
		if a.strides[k] != want {
			return false
		}
		want *= a.shape[k]
	}

	return true
}

// At reads the element at idx. len(idx) must equal Rank().
func (a *Array) At(idx ...int) (float64, error) {
	off, err := a.offsetOf(idx)
	if err != nil {
		return 0, fmt.Errorf("Array.%s%v: %w", ctxAt, idx, err)
	}

	return a.data[off], nil
}

// Set writes v at idx. Writes through a view are visible in its base.
func (a *Array) Set(v float64, idx ...int) error {
	off, err := a.offsetOf(idx)
	if err != nil {
		return fmt.Errorf("Array.%s%v: %w", ctxSet, idx, err)
	}
	a.data[off] = v

	return nil
}

// Do visits every element in row-major order and calls f(idx, v).
// idx is reused between calls; copy it if it must outlive the callback.
// Iteration stops early when f returns false.
func (a *Array) Do(f func(idx []int, v float64) bool) {
	size := a.Size()
	if size == 0 {
		return
	}

	idx := make([]int, len(a.shape))
	off := a.offset
	for n := 0; n < size; n++ {
		if !f(idx, a.data[off]) {
			return
		}
		// Advance the odometer: last dimension fastest.
		for k := len(idx) - 1; k >= 0; k-- {
			idx[k]++
			off += a.strides[k]
			if idx[k] < a.shape[k] {
				break
			}
			off -= idx[k] * a.strides[k]
			idx[k] = 0
		}
	}
}

// Values returns the logical elements as a fresh row-major slice.
func (a *Array) Values() []float64 {
	out := make([]float64, 0, a.Size())
	if a.IsContiguous() {
		return append(out, a.data[a.offset:a.offset+a.Size()]...)
	}
	a.Do(func(_ []int, v float64) bool {
		out = append(out, v)
		return true
	})

	return out
}

// String renders the shape and, for small arrays, the values.
func (a *Array) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Array%v", a.shape)
	if a.Size() <= 64 {
		fmt.Fprintf(&b, " %v", a.Values())
	}

	return b.String()
}

// offsetOf converts a multi-index into a buffer offset.
func (a *Array) offsetOf(idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, ErrDimensionMismatch
	}
	off := a.offset
	for k, i := range idx {
		if i < 0 || i >= a.shape[k] {
			return 0, ErrOutOfRange
		}
		off += i * a.strides[k]
	}

	return off, nil
}

// sizeOf validates shape and returns its element count.
func sizeOf(shape []int) (int, error) {
	n := 1
	for _, s := range shape {
		if s < 0 {
			return 0, fmt.Errorf("shape %v: %w", shape, ErrBadShape)
		}
		n *= s
	}

	return n, nil
}

// rowMajorStrides returns C-order strides for shape.
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	step := 1
	for k := len(shape) - 1; k >= 0; k-- {
		strides[k] = step
		step *= shape[k]
	}

	return strides
}

func cloneInts(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)

	return out
}
