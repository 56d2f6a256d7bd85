// SPDX-License-Identifier: MIT

package axis_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndview/axis"
	"github.com/katalvlaran/ndview/domain"
)

func TestValueToIndex(t *testing.T) {
	t.Parallel()

	f := axis.ValueToIndex([]float64{10, 20, 30}, false)
	assert.Equal(t, 0, f(19.9))
	assert.Equal(t, 1, f(20))
	assert.Equal(t, 0, f(-1e9))
	assert.Equal(t, 2, f(30))
	assert.Equal(t, -1, f(math.NaN()))

	mid := axis.ValueToIndex([]float64{10, 20, 30}, true)
	assert.Equal(t, 0, mid(14.9))
	assert.Equal(t, 1, mid(15))
	assert.Equal(t, 1, mid(24.9))
	assert.Equal(t, 2, mid(25))
}

func TestValueToIndex_Descending(t *testing.T) {
	t.Parallel()

	f := axis.ValueToIndex([]float64{30, 20, 10}, false)
	assert.Equal(t, 0, f(25))
	assert.Equal(t, 1, f(20))
	assert.Equal(t, 1, f(19.9))
	assert.Equal(t, 2, f(10))

	mid := axis.ValueToIndex([]float64{30, 20, 10}, true)
	assert.Equal(t, 0, mid(25.1))
	assert.Equal(t, 1, mid(25))
	assert.Equal(t, 2, mid(14))
}

func TestValueToIndex_Short(t *testing.T) {
	t.Parallel()

	f := axis.ValueToIndex([]float64{7}, true)
	assert.Equal(t, 0, f(-3))
	assert.Equal(t, 0, f(100))
	assert.Equal(t, 0, axis.ValueToIndex(nil, false)(1))
}

func TestIntegerTicks(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		d     domain.Domain
		count int
		want  []int
	}{
		{"no integer", domain.Domain{Min: 0.2, Max: 0.8}, 3, []int{}},
		{"step forced to one", domain.Domain{Min: 0, Max: 4}, 3, []int{0, 1, 2, 3, 4}},
		{"fractional bounds", domain.Domain{Min: -3.5, Max: 3.5}, 10, []int{-3, -2, -1, 0, 1, 2, 3}},
		{"step of twenty", domain.Domain{Min: 0, Max: 100}, 5, []int{0, 20, 40, 60, 80, 100}},
		{"step of five", domain.Domain{Min: 0, Max: 40}, 10, []int{0, 5, 10, 15, 20, 25, 30, 35, 40}},
		{"single integer", domain.Domain{Min: 4.5, Max: 5.5}, 10, []int{5}},
		{"degenerate", domain.Domain{Min: 5, Max: 5}, 10, []int{5}},
		{"zero count", domain.Domain{Min: 0, Max: 10}, 0, []int{}},
		{"nan", domain.Domain{Min: math.NaN(), Max: 3}, 5, []int{}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, axis.IntegerTicks(tc.d, tc.count))
		})
	}
}

// TestIntegerTicks_Properties checks integrality, containment and spacing
// over a sweep of domains and budgets.
func TestIntegerTicks_Properties(t *testing.T) {
	t.Parallel()

	for _, hi := range []float64{1, 7.5, 63, 999.9, 12345} {
		for _, count := range []int{1, 2, 5, 10} {
			d := domain.Domain{Min: -0.5, Max: hi}
			ticks := axis.IntegerTicks(d, count)
			require.NotEmpty(t, ticks)
			for i, v := range ticks {
				require.True(t, d.Contains(float64(v)))
				if i > 0 {
					require.GreaterOrEqual(t, v-ticks[i-1], 1)
					require.Equal(t, ticks[1]-ticks[0], v-ticks[i-1])
				}
			}
		}
	}

	huge := axis.IntegerTicks(domain.Domain{Min: -domain.SafeBound, Max: domain.SafeBound}, 4)
	require.NotEmpty(t, huge)
	require.LessOrEqual(t, len(huge), 10)
}

func TestValues(t *testing.T) {
	t.Parallel()

	got, err := axis.Values(nil, 4)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 2, 3}, got)

	raw := []float64{1, 2, 3, 4, 5, 6}
	got, err = axis.Values(raw, 3)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4}, got, "edges are kept")
	got[0] = -1
	require.Equal(t, 1.0, raw[0])

	got, err = axis.Values(raw[:3], 3)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, got)

	_, err = axis.Values(raw[:2], 3)
	require.ErrorIs(t, err, axis.ErrTooFewValues)
	_, err = axis.Values(nil, -1)
	require.ErrorIs(t, err, axis.ErrBadLength)
}

func TestDomain(t *testing.T) {
	t.Parallel()

	values, err := axis.Values(nil, 5)
	require.NoError(t, err)

	d, ok, err := axis.Domain(values, domain.Linear, axis.CellFactor(len(values)))
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, -0.5, d.Min, 1e-12)
	assert.InDelta(t, 4.5, d.Max, 1e-12)

	d, ok, err = axis.Domain(values, domain.Log, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, domain.Domain{Min: 1, Max: 4}, d)

	_, ok, err = axis.Domain([]float64{-3, -2}, domain.Log, 0.1)
	require.NoError(t, err)
	require.False(t, ok)

	d, ok, err = axis.Domain([]float64{0}, domain.Linear, axis.CellFactor(1))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, domain.Domain{Min: -1, Max: 1}, d)
}
