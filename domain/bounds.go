// SPDX-License-Identifier: MIT

// Package domain - bounds reduction and scale-aware resolution.
//
// Purpose:
//   - Reduce a flat buffer (plus optional symmetric error bars) to Bounds,
//     ignoring NaN and ±Inf.
//   - Turn Bounds into a Domain the requested scale can display.
//
// Determinism:
//   - Single left-to-right pass; no allocation.

package domain

import (
	"fmt"
	"math"
)

// boundsAcc folds finite values into Bounds.
type boundsAcc struct {
	b   Bounds
	any bool
}

func newBoundsAcc() boundsAcc {
	return boundsAcc{b: Bounds{Min: math.Inf(1), Max: math.Inf(-1), PositiveMin: math.Inf(1)}}
}

func (acc *boundsAcc) add(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	acc.any = true
	if v < acc.b.Min {
		acc.b.Min = v
	}
	if v > acc.b.Max {
		acc.b.Max = v
	}
	if v > 0 && v < acc.b.PositiveMin {
		acc.b.PositiveMin = v
	}
}

// ComputeBounds returns the Bounds of the finite entries of values, or
// ok=false if there are none (including an empty slice).
func ComputeBounds(values []float64) (b Bounds, ok bool) {
	acc := newBoundsAcc()
	for _, v := range values {
		acc.add(v)
	}

	return acc.b, acc.any
}

// ComputeBoundsWithErrors is ComputeBounds where every finite value v also
// contributes v-errs[i] and v+errs[i], so the result covers error bars.
// A nil errs behaves like ComputeBounds.
//
// Errors:
//   - ErrDimensionMismatch if errs is non-nil and len(errs) != len(values).
func ComputeBoundsWithErrors(values, errs []float64) (Bounds, bool, error) {
	if errs == nil {
		b, ok := ComputeBounds(values)
		return b, ok, nil
	}
	if len(errs) != len(values) {
		return Bounds{}, false, fmt.Errorf("ComputeBoundsWithErrors: %d values, %d errors: %w", len(values), len(errs), ErrDimensionMismatch)
	}

	acc := newBoundsAcc()
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		acc.add(v)
		acc.add(v - errs[i])
		acc.add(v + errs[i])
	}

	return acc.b, acc.any, nil
}

// Resolve turns b into a Domain valid for s.
//
// Behavior highlights:
//   - Linear, SymLog, Gamma: [Min, Max] unchanged.
//   - Sqrt: [0, Max] when the bounds straddle zero.
//   - Log: [PositiveMin, Max] when the bounds touch or straddle zero;
//     ok=false when no strictly positive value exists.
func Resolve(b Bounds, s Scale) (Domain, bool) {
	switch s.Type {
	case ScaleSqrt:
		if b.Min*b.Max < 0 {
			return Domain{Min: 0, Max: b.Max}, true
		}
	case ScaleLog:
		if b.Min*b.Max <= 0 {
			if math.IsInf(b.PositiveMin, 0) || math.IsNaN(b.PositiveMin) {
				return Domain{}, false
			}
			return Domain{Min: b.PositiveMin, Max: b.Max}, true
		}
	}

	return Domain{Min: b.Min, Max: b.Max}, true
}

// Combine merges domains into the smallest domain covering all of them.
// nil entries are skipped; ok=false if nothing is left.
func Combine(domains ...*Domain) (Domain, bool) {
	var out Domain
	ok := false
	for _, d := range domains {
		if d == nil {
			continue
		}
		if !ok {
			out, ok = *d, true
			continue
		}
		out.Min = math.Min(out.Min, d.Min)
		out.Max = math.Max(out.Max, d.Max)
	}

	return out, ok
}

// DomainOf computes the scale-valid domain of values (and optional error bars).
func DomainOf(values, errs []float64, s Scale) (Domain, bool, error) {
	b, ok, err := ComputeBoundsWithErrors(values, errs)
	if err != nil || !ok {
		return Domain{}, false, err
	}
	d, ok := Resolve(b, s)

	return d, ok, nil
}
