// SPDX-License-Identifier: MIT

// Package domain - domain extension and custom-domain safeguarding.
//
// Extend pads a domain by a fraction of its extent measured in scale space:
// on a log scale [10,100] padded by 1 becomes [1,1000], not [-80,190].
// Safeguard repairs a user-edited domain so it is always displayable.

package domain

import (
	"fmt"
	"math"
)

// Extend widens d on both sides by factor times its extent in the space of s.
//
// Behavior highlights:
//   - factor <= 0 returns d unchanged.
//   - Degenerate d (Min == Max == v): [v/10^factor, v*10^factor] under Log,
//     [v-2*factor*|v|, v+2*factor*|v|] otherwise, and [-1, 1] when v == 0.
//   - The lower bound never drops below ValidMin(s), degenerate or not
//     ([0,0] under Sqrt becomes [0, 1]); both bounds are
//     clamped with ClampBound.
//
// Errors:
//   - ErrBelowScaleMinimum if d.Min < ValidMin(s).
func Extend(d Domain, factor float64, s Scale) (Domain, error) {
	if !(factor > 0) {
		return d, nil
	}
	vmin := ValidMin(s)
	if d.Min < vmin {
		return Domain{}, fmt.Errorf("Extend(%v, %g, %v): %w", d, factor, s, ErrBelowScaleMinimum)
	}
	if d.IsDegenerate() {
		return extendDegenerate(d.Min, factor, s), nil
	}

	tr, err := newTransform(d, s)
	if err != nil {
		return Domain{}, fmt.Errorf("Extend: %w", err)
	}
	lo := math.Max(tr.Unmap(-factor), vmin)
	hi := tr.Unmap(1 + factor)

	return Domain{Min: ClampBound(lo), Max: ClampBound(hi)}, nil
}

func extendDegenerate(v, factor float64, s Scale) Domain {
	vmin := ValidMin(s)
	if s.Type == ScaleLog {
		// v/k may underflow to 0.
		k := math.Pow(10, factor)
		return Domain{Min: ClampBound(math.Max(v/k, vmin)), Max: ClampBound(v * k)}
	}
	if v == 0 {
		return Domain{Min: math.Max(-1, vmin), Max: 1}
	}

	pad := 2 * factor * math.Abs(v)

	return Domain{Min: ClampBound(math.Max(v-pad, vmin)), Max: ClampBound(v + pad)}
}

// VisibleDomain returns the domain to display: each custom bound that is set
// replaces the matching data bound.
func VisibleDomain(custom CustomDomain, data Domain) Domain {
	out := data
	if custom.Min != nil {
		out.Min = *custom.Min
	}
	if custom.Max != nil {
		out.Max = *custom.Max
	}

	return out
}

// Safeguard makes d displayable under s, substituting bounds from fallback
// (normally the data domain) where needed. It never fails; what it changed
// is reported in Errors.
//
// Stages:
//   - Min > Max: return fallback with MinGreaterThanMax.
//   - Log, Min <= 0: use fallback.Min, flag InvalidMinWithLog.
//   - Log, Max <= 0: use fallback.Max, flag InvalidMaxWithLog.
//   - Log, substituted Min > Max: collapse to [Max, Max], MinError becomes
//     CustomMaxFallback.
func Safeguard(d, fallback Domain, s Scale) (Domain, Errors) {
	var errs Errors
	if d.Min > d.Max {
		errs.MinGreaterThanMax = true
		return fallback, errs
	}
	if s.Type != ScaleLog {
		return d, errs
	}

	out := d
	if out.Min <= 0 {
		out.Min = fallback.Min
		errs.MinError = InvalidMinWithLog
	}
	if out.Max <= 0 {
		out.Max = fallback.Max
		errs.MaxError = InvalidMaxWithLog
	}
	if out.Min > out.Max {
		out.Min = out.Max
		errs.MinError = CustomMaxFallback
	}

	return out, errs
}
