// SPDX-License-Identifier: MIT

// Package ndarray - views (Pick, Transpose) and materialization.
//
// Purpose:
//   - Provide O(rank) re-indexing that shares storage with the base array.
//   - Provide Materialize to break aliasing and restore compact row-major storage.
//
// AI-Hints:
//   - Chain Pick → Transpose → Materialize to cut a dense 2-D slice out of an N-d cube.
//   - Keep views short-lived; materialize before handing data to code that may retain it.

package ndarray

import "fmt"

// Pick selects along one dimension: either a fixed index (the dimension is
// dropped from the result) or the whole dimension (the dimension is kept).
// The zero value is Index(0).
type Pick struct {
	index int
	all   bool
}

// Index returns a Pick fixing the dimension at i.
func Index(i int) Pick { return Pick{index: i} }

// All returns a Pick keeping the whole dimension.
func All() Pick { return Pick{all: true} }

// IsAll reports whether p keeps the whole dimension.
func (p Pick) IsAll() bool { return p.all }

// Value returns the fixed index and true, or (0, false) for All.
func (p Pick) Value() (int, bool) {
	if p.all {
		return 0, false
	}

	return p.index, true
}

// String renders p the way a selection token is written: ":" or the index.
func (p Pick) String() string {
	if p.all {
		return ":"
	}

	return fmt.Sprintf("%d", p.index)
}

// Pick returns a view keeping the dimensions marked All and fixing the others.
// The result has rank equal to the number of All picks, in original order.
//
// Implementation:
//   - Stage 1: validate len(picks) == Rank() and every fixed index.
//   - Stage 2: fold fixed indices into the offset; copy kept shape/strides.
//
// Errors:
//   - ErrDimensionMismatch if len(picks) != Rank().
//   - ErrOutOfRange if a fixed index is outside its dimension.
//
// Complexity:
//   - Time O(rank), Space O(rank). No element is copied.
func (a *Array) Pick(picks []Pick) (*Array, error) {
	if a == nil {
		return nil, arrayErrorf(ctxPick, ErrNilArray)
	}
	if len(picks) != len(a.shape) {
		return nil, fmt.Errorf("Array.%s: %d picks for rank %d: %w", ctxPick, len(picks), len(a.shape), ErrDimensionMismatch)
	}

	view := &Array{
		shape:   make([]int, 0, len(picks)),
		strides: make([]int, 0, len(picks)),
		offset:  a.offset,
		data:    a.data,
	}
	for k, p := range picks {
		if p.all {
			view.shape = append(view.shape, a.shape[k])
			view.strides = append(view.strides, a.strides[k])
			continue
		}
		if p.index < 0 || p.index >= a.shape[k] {
			return nil, fmt.Errorf("Array.%s: dim %d index %d (size %d): %w", ctxPick, k, p.index, a.shape[k], ErrOutOfRange)
		}
		view.offset += p.index * a.strides[k]
	}

	return view, nil
}

// Transpose returns a view whose dimension k is dimension perm[k] of a.
// With no arguments the axis order is reversed.
//
// Errors:
//   - ErrBadPermutation if perm is not a permutation of 0..Rank()-1.
func (a *Array) Transpose(perm ...int) (*Array, error) {
	if a == nil {
		return nil, arrayErrorf(ctxTranspose, ErrNilArray)
	}
	rank := len(a.shape)
	if len(perm) == 0 {
		perm = make([]int, rank)
		for k := range perm {
			perm[k] = rank - 1 - k
		}
	}
	if len(perm) != rank {
		return nil, fmt.Errorf("Array.%s%v: %w", ctxTranspose, perm, ErrBadPermutation)
	}

	seen := make([]bool, rank)
	view := &Array{
		shape:   make([]int, rank),
		strides: make([]int, rank),
		offset:  a.offset,
		data:    a.data,
	}
	for k, p := range perm {
		if p < 0 || p >= rank || seen[p] {
			return nil, fmt.Errorf("Array.%s%v: %w", ctxTranspose, perm, ErrBadPermutation)
		}
		seen[p] = true
		view.shape[k] = a.shape[p]
		view.strides[k] = a.strides[p]
	}

	return view, nil
}

// Materialize copies the logical elements of a into a new contiguous array.
// The result never aliases a, even when a is already contiguous.
//
// Complexity:
//   - Time O(size), Space O(size).
func (a *Array) Materialize() *Array {
	return &Array{
		shape:   cloneInts(a.shape),
		strides: rowMajorStrides(a.shape),
		data:    a.Values(),
	}
}
