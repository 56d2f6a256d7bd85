// SPDX-License-Identifier: MIT

// Package mapping - initial assignment and interactive edits.
//
// Purpose:
//   - InitMapping picks the default view for a dataset: trailing dimensions
//     become axes (Y before X), locked dimensions trail them, the rest are
//     sliced at 0.
//   - AssignAxis / SetSlice apply the edits a dimension picker performs,
//     always returning a fresh Mapping.

package mapping

import "fmt"

// axisOrder is the order in which axis markers are laid out; with one axis
// only the last marker (X) is used.
var axisOrder = [...]Entry{Y, X}

// InitMapping returns the default Mapping for a dataset of the given shape.
//
// Implementation:
//   - Stage 1: reject axesCount ∉ {0,1,2} and lockedCount < 0.
//   - Stage 2: effAxes = min(axesCount, rank);
//     effLocked = min(effAxes+lockedCount, rank) - effAxes.
//   - Stage 3: lay out rank-effAxes-effLocked × Slice(0), the last effAxes of
//     [Y, X], then effLocked × Locked.
//
// Axes always win over locked dimensions when both compete for the trailing
// dimensions: locked dimensions are capped after axes are placed.
//
// Errors:
//   - ErrOutOfRange for an invalid axesCount or lockedCount.
func InitMapping(shape []int, axesCount, lockedCount int) (Mapping, error) {
	if axesCount < 0 || axesCount > len(axisOrder) {
		return nil, fmt.Errorf("InitMapping: axes count %d: %w", axesCount, ErrOutOfRange)
	}
	if lockedCount < 0 {
		return nil, fmt.Errorf("InitMapping: locked count %d: %w", lockedCount, ErrOutOfRange)
	}

	rank := len(shape)
	effAxes := min(axesCount, rank)
	effLocked := min(effAxes+lockedCount, rank) - effAxes

	m := make(Mapping, 0, rank)
	for i := 0; i < rank-effAxes-effLocked; i++ {
		m = append(m, Slice(0))
	}
	m = append(m, axisOrder[len(axisOrder)-effAxes:]...)
	for i := 0; i < effLocked; i++ {
		m = append(m, Locked)
	}

	return m, nil
}

// AssignAxis returns a copy of m where dimension dim holds axis (X or Y).
//
// Behavior highlights:
//   - If dim already holds axis, the copy is unchanged.
//   - If dim holds the other axis, the two dimensions swap markers.
//   - Otherwise the dimension that previously held axis (if any) falls back
//     to Slice(0).
//
// Errors:
//   - ErrNotAxis if axis is not X or Y.
//   - ErrOutOfRange if dim is outside m.
//   - ErrLockedDimension if dim is locked.
func AssignAxis(m Mapping, dim int, axis Entry) (Mapping, error) {
	if !axis.IsAxis() {
		return nil, entryErrorf("AssignAxis", dim, axis, ErrNotAxis)
	}
	if dim < 0 || dim >= len(m) {
		return nil, fmt.Errorf("AssignAxis: dim %d of %d: %w", dim, len(m), ErrOutOfRange)
	}
	if m[dim].IsLocked() {
		return nil, entryErrorf("AssignAxis", dim, m[dim], ErrLockedDimension)
	}

	out := m.Clone()
	if m[dim] == axis {
		return out, nil
	}

	for prev, e := range m {
		if e != axis {
			continue
		}
		if m[dim].IsAxis() {
			out[prev] = m[dim] // swap X and Y
		} else {
			out[prev] = Slice(0)
		}
	}
	out[dim] = axis

	return out, nil
}

// SetSlice returns a copy of m where the sliced dimension dim is fixed at index.
//
// Errors:
//   - ErrDimensionMismatch if len(m) != len(shape).
//   - ErrOutOfRange if dim or index is out of range.
//   - ErrLockedDimension / ErrNotSliced if dim is locked / an axis.
func SetSlice(m Mapping, shape []int, dim, index int) (Mapping, error) {
	if len(m) != len(shape) {
		return nil, dimErrorf("SetSlice", len(m), len(shape))
	}
	if dim < 0 || dim >= len(m) {
		return nil, fmt.Errorf("SetSlice: dim %d of %d: %w", dim, len(m), ErrOutOfRange)
	}
	switch {
	case m[dim].IsLocked():
		return nil, entryErrorf("SetSlice", dim, m[dim], ErrLockedDimension)
	case m[dim].IsAxis():
		return nil, entryErrorf("SetSlice", dim, m[dim], ErrNotSliced)
	}
	if index < 0 || index >= shape[dim] {
		return nil, fmt.Errorf("SetSlice: dim %d index %d (size %d): %w", dim, index, shape[dim], ErrOutOfRange)
	}

	out := m.Clone()
	out[dim] = Slice(index)

	return out, nil
}

func dimErrorf(op string, got, want int) error {
	return fmt.Errorf("%s: %d entries for rank %d: %w", op, got, want, ErrDimensionMismatch)
}

func entryErrorf(op string, dim int, e Entry, err error) error {
	return fmt.Errorf("%s: dim %d (%s): %w", op, dim, e, err)
}
