// SPDX-License-Identifier: MIT

package mapping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndview/mapping"
)

var s0 = mapping.Slice(0)

func TestInitMapping_Layout(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		shape  []int
		axes   int
		locked int
		want   mapping.Mapping
	}{
		{"rank0", []int{}, 2, 0, mapping.Mapping{}},
		{"rank0 locked", []int{}, 1, 3, mapping.Mapping{}},
		{"1d one axis", []int{1}, 1, 0, mapping.Mapping{mapping.X}},
		{"2d two axes", []int{1, 1}, 2, 0, mapping.Mapping{mapping.Y, mapping.X}},
		{"3d two axes", []int{1, 1, 1}, 2, 0, mapping.Mapping{s0, mapping.Y, mapping.X}},
		{"4d two axes", []int{1, 1, 1, 1}, 2, 0, mapping.Mapping{s0, s0, mapping.Y, mapping.X}},
		{"1d two axes capped", []int{5}, 2, 0, mapping.Mapping{mapping.X}},
		{"no axes", []int{3, 4}, 0, 0, mapping.Mapping{s0, s0}},
		{"locked trailing", []int{4, 5, 6, 3}, 2, 1, mapping.Mapping{s0, mapping.Y, mapping.X, mapping.Locked}},
		{"locked capped by axes", []int{5, 3}, 2, 1, mapping.Mapping{mapping.Y, mapping.X}},
		{"locked partially capped", []int{2, 5, 3}, 2, 4, mapping.Mapping{mapping.Y, mapping.X, mapping.Locked}},
		{"locked only", []int{2, 3}, 0, 1, mapping.Mapping{s0, mapping.Locked}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := mapping.InitMapping(tc.shape, tc.axes, tc.locked)
			require.NoError(t, err)
			require.Len(t, got, len(tc.shape))
			if len(tc.want) == 0 {
				require.Empty(t, got)
				return
			}
			require.Equal(t, tc.want, got)
		})
	}
}

func TestInitMapping_RangeErrors(t *testing.T) {
	t.Parallel()

	_, err := mapping.InitMapping([]int{1}, -1, 0)
	require.ErrorIs(t, err, mapping.ErrOutOfRange)
	_, err = mapping.InitMapping([]int{1, 1, 1}, 3, 0)
	require.ErrorIs(t, err, mapping.ErrOutOfRange)
	_, err = mapping.InitMapping([]int{1, 1}, 1, -1)
	require.ErrorIs(t, err, mapping.ErrOutOfRange)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	shape := []int{3, 4, 5}
	require.NoError(t, mapping.Validate(mapping.Mapping{mapping.Slice(2), mapping.Y, mapping.X}, shape))
	require.ErrorIs(t, mapping.Validate(mapping.Mapping{mapping.Y, mapping.X}, shape), mapping.ErrDimensionMismatch)
	require.ErrorIs(t, mapping.Validate(mapping.Mapping{mapping.X, mapping.Y, mapping.X}, shape), mapping.ErrDuplicateAxis)
	require.ErrorIs(t, mapping.Validate(mapping.Mapping{mapping.Slice(3), mapping.Y, mapping.X}, shape), mapping.ErrOutOfRange)
	require.ErrorIs(t, mapping.Validate(mapping.Mapping{mapping.Slice(-1), mapping.Y, mapping.X}, shape), mapping.ErrOutOfRange)
}

func TestAssignAxis(t *testing.T) {
	t.Parallel()

	base := mapping.Mapping{s0, mapping.Y, mapping.X}

	// Moving X to a sliced dimension demotes the old X to Slice(0).
	got, err := mapping.AssignAxis(base, 0, mapping.X)
	require.NoError(t, err)
	assert.Equal(t, mapping.Mapping{mapping.X, mapping.Y, s0}, got)

	// Assigning X to the Y dimension swaps the two markers.
	got, err = mapping.AssignAxis(base, 1, mapping.X)
	require.NoError(t, err)
	assert.Equal(t, mapping.Mapping{s0, mapping.X, mapping.Y}, got)

	// No-op when the dimension already holds the axis; input is untouched.
	got, err = mapping.AssignAxis(base, 2, mapping.X)
	require.NoError(t, err)
	assert.Equal(t, base, got)
	assert.Equal(t, mapping.Mapping{s0, mapping.Y, mapping.X}, base)

	_, err = mapping.AssignAxis(base, 0, mapping.Slice(1))
	require.ErrorIs(t, err, mapping.ErrNotAxis)
	_, err = mapping.AssignAxis(base, 3, mapping.Y)
	require.ErrorIs(t, err, mapping.ErrOutOfRange)
	_, err = mapping.AssignAxis(mapping.Mapping{mapping.X, mapping.Locked}, 1, mapping.Y)
	require.ErrorIs(t, err, mapping.ErrLockedDimension)
}

func TestSetSlice(t *testing.T) {
	t.Parallel()

	shape := []int{9, 20, 41}
	base := mapping.Mapping{s0, mapping.Y, mapping.X}

	got, err := mapping.SetSlice(base, shape, 0, 8)
	require.NoError(t, err)
	require.Equal(t, mapping.Mapping{mapping.Slice(8), mapping.Y, mapping.X}, got)

	_, err = mapping.SetSlice(base, shape, 0, 9)
	require.ErrorIs(t, err, mapping.ErrOutOfRange)
	_, err = mapping.SetSlice(base, shape, 1, 0)
	require.ErrorIs(t, err, mapping.ErrNotSliced)
	_, err = mapping.SetSlice(mapping.Mapping{s0, mapping.Locked}, []int{2, 3}, 1, 0)
	require.ErrorIs(t, err, mapping.ErrLockedDimension)
	_, err = mapping.SetSlice(base, shape[:2], 0, 0)
	require.ErrorIs(t, err, mapping.ErrDimensionMismatch)
}

func TestMapping_AxesAndString(t *testing.T) {
	t.Parallel()

	m := mapping.Mapping{mapping.Slice(4), mapping.Y, mapping.X, mapping.Locked}
	x, y := m.Axes()
	require.Equal(t, 2, x)
	require.Equal(t, 1, y)
	require.Equal(t, "[4 y x locked]", m.String())

	x, y = mapping.Mapping{s0}.Axes()
	require.Equal(t, -1, x)
	require.Equal(t, -1, y)
}
