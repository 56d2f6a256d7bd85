// SPDX-License-Identifier: MIT

package axis

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/ndview/domain"
)

// Values returns the coordinates of an axis of the given length.
// A nil raw yields the index coordinates 0..length-1. Otherwise raw must hold
// at least length entries; length (one per cell) or length+1 (cell edges) of
// them are kept. The result never aliases raw.
func Values(raw []float64, length int) ([]float64, error) {
	if length < 0 {
		return nil, fmt.Errorf("Values(length=%d): %w", length, ErrBadLength)
	}
	if raw == nil {
		out := make([]float64, length)
		for i := range out {
			out[i] = float64(i)
		}
		return out, nil
	}
	if len(raw) < length {
		return nil, fmt.Errorf("Values: %d values for length %d: %w", len(raw), length, ErrTooFewValues)
	}

	n := min(len(raw), length+1)
	out := make([]float64, n)
	copy(out, raw[:n])

	return out, nil
}

// CellFactor returns the extension factor that pads an axis of n evenly
// spaced cell centres by half a cell on each side.
func CellFactor(n int) float64 {
	if n < 2 {
		return 0.5
	}

	return 0.5 / float64(n-1)
}

// Domain returns the domain of the axis coordinates under s, extended by
// factor. ok is false when no domain exists, e.g. a log axis without a
// positive coordinate.
func Domain(values []float64, s domain.Scale, factor float64) (domain.Domain, bool, error) {
	d, ok, err := domain.DomainOf(values, nil, s)
	if err != nil || !ok {
		return domain.Domain{}, false, err
	}
	if d.Min < domain.ValidMin(s) {
		return domain.Domain{}, false, nil
	}

	d, err = domain.Extend(d, factor, s)
	if err != nil {
		return domain.Domain{}, false, fmt.Errorf("Domain: %w", err)
	}

	return d, true, nil
}

// ValueToIndex returns a step function from coordinates to indices.
//
// values are the axis coordinates (n cell centres or n+1 cell edges), either
// ascending or descending. The switch points are values[1:], or the
// midpoints between consecutive values when midpoint is set, so that a
// coordinate snaps to the closest cell centre. The returned function gives
// the number of switch points the coordinate has reached; coordinates beyond
// the last switch point map past the end and callers bounds-check them.
// NaN maps to -1.
func ValueToIndex(values []float64, midpoint bool) func(float64) int {
	if len(values) < 2 {
		return func(x float64) int {
			if x != x {
				return -1
			}
			return 0
		}
	}

	thresholds := make([]float64, len(values)-1)
	for i := range thresholds {
		if midpoint {
			thresholds[i] = (values[i] + values[i+1]) / 2
		} else {
			thresholds[i] = values[i+1]
		}
	}
	descending := values[len(values)-1] < values[0]

	return func(x float64) int {
		if x != x {
			return -1
		}
		if descending {
			return sort.Search(len(thresholds), func(i int) bool { return thresholds[i] < x })
		}
		return sort.Search(len(thresholds), func(i int) bool { return thresholds[i] > x })
	}
}
