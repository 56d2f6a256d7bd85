// SPDX-License-Identifier: MIT

package domain

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/scale"
)

// SafeBound is the magnitude at which extended bounds are clamped so that
// later arithmetic on them stays finite.
const SafeBound = math.MaxFloat64 / 2

// logBase is the base of Log scales.
const logBase = 10

// transform maps a domain onto [0,1] in scale space and back. Values outside
// the domain extrapolate.
type transform interface {
	Map(x float64) float64
	Unmap(y float64) float64
}

// newTransform builds the transform of s over d. d must be non-degenerate
// and, for Log, strictly positive.
func newTransform(d Domain, s Scale) (transform, error) {
	switch s.Type {
	case ScaleLinear:
		return &scale.Linear{Min: d.Min, Max: d.Max}, nil
	case ScaleLog:
		l, err := scale.NewLog(d.Min, d.Max, logBase)
		if err != nil {
			return nil, fmt.Errorf("newTransform(%v, %v): %w", d, s, err)
		}
		return &l, nil
	case ScaleSymLog:
		return newFuncTransform(d, symlog, symexp), nil
	case ScaleSqrt:
		return newFuncTransform(d, signedSqrt, signedSquare), nil
	case ScaleGamma:
		return &gammaTransform{lin: scale.Linear{Min: d.Min, Max: d.Max}, exp: s.exponent()}, nil
	}

	return nil, fmt.Errorf("newTransform(%v): %w", s, ErrUnknownScale)
}

// funcTransform normalises an invertible monotone function f over a domain.
type funcTransform struct {
	f, inv   func(float64) float64
	lo, span float64
}

func newFuncTransform(d Domain, f, inv func(float64) float64) *funcTransform {
	lo := f(d.Min)

	return &funcTransform{f: f, inv: inv, lo: lo, span: f(d.Max) - lo}
}

func (t *funcTransform) Map(x float64) float64 { return (t.f(x) - t.lo) / t.span }

func (t *funcTransform) Unmap(y float64) float64 { return t.inv(t.lo + y*t.span) }

// gammaTransform raises the linear position to a power, keeping its sign so
// that positions outside [0,1] still invert.
type gammaTransform struct {
	lin scale.Linear
	exp float64
}

func (t *gammaTransform) Map(x float64) float64 { return signedPow(t.lin.Map(x), t.exp) }

func (t *gammaTransform) Unmap(y float64) float64 { return t.lin.Unmap(signedPow(y, 1/t.exp)) }

func symlog(x float64) float64 { return math.Copysign(math.Log1p(math.Abs(x)), x) }

func symexp(y float64) float64 { return math.Copysign(math.Expm1(math.Abs(y)), y) }

func signedSqrt(x float64) float64 { return math.Copysign(math.Sqrt(math.Abs(x)), x) }

func signedSquare(y float64) float64 { return math.Copysign(y*y, y) }

func signedPow(x, p float64) float64 { return math.Copysign(math.Pow(math.Abs(x), p), x) }

// ClampBound limits v to [-SafeBound, SafeBound]. NaN is returned unchanged.
func ClampBound(v float64) float64 {
	return math.Copysign(math.Min(math.Abs(v), SafeBound), v)
}

// Normalizer returns a function mapping d onto [0,1] in the space of s;
// values outside d map outside [0,1]. A degenerate d maps everything to 0.5.
//
// Errors:
//   - ErrBelowScaleMinimum if d.Min < ValidMin(s).
func Normalizer(d Domain, s Scale) (func(float64) float64, error) {
	if d.Min < ValidMin(s) {
		return nil, fmt.Errorf("Normalizer(%v, %v): %w", d, s, ErrBelowScaleMinimum)
	}
	if d.IsDegenerate() {
		return func(float64) float64 { return 0.5 }, nil
	}
	tr, err := newTransform(d, s)
	if err != nil {
		return nil, fmt.Errorf("Normalizer: %w", err)
	}

	return tr.Map, nil
}
