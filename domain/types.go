// SPDX-License-Identifier: MIT

package domain

import (
	"fmt"
	"math"
	"strings"
)

// ScaleType enumerates the supported display scales.
type ScaleType uint8

const (
	ScaleLinear ScaleType = iota
	ScaleLog
	ScaleSymLog
	ScaleSqrt
	ScaleGamma
)

// DefaultGammaExponent is used by Gamma scales built with a non-positive
// or non-finite exponent.
const DefaultGammaExponent = 1.0

var scaleNames = map[ScaleType]string{
	ScaleLinear: "linear",
	ScaleLog:    "log",
	ScaleSymLog: "symlog",
	ScaleSqrt:   "sqrt",
	ScaleGamma:  "gamma",
}

// Scale is a scale type plus its parameter (only Gamma has one).
type Scale struct {
	Type     ScaleType
	Exponent float64
}

var (
	Linear = Scale{Type: ScaleLinear}
	Log    = Scale{Type: ScaleLog}
	SymLog = Scale{Type: ScaleSymLog}
	Sqrt   = Scale{Type: ScaleSqrt}
)

// Gamma returns a gamma scale with the given exponent.
func Gamma(exponent float64) Scale {
	return Scale{Type: ScaleGamma, Exponent: exponent}
}

// ParseScale resolves a scale by name ("linear", "log", "symlog", "sqrt",
// "gamma"). exponent is only used by gamma.
func ParseScale(name string, exponent float64) (Scale, error) {
	for t, n := range scaleNames {
		if strings.EqualFold(name, n) {
			if t == ScaleGamma {
				return Gamma(exponent), nil
			}
			return Scale{Type: t}, nil
		}
	}

	return Scale{}, fmt.Errorf("ParseScale(%q): %w", name, ErrUnknownScale)
}

func (s Scale) String() string {
	if s.Type == ScaleGamma {
		return fmt.Sprintf("gamma(%g)", s.exponent())
	}
	if n, ok := scaleNames[s.Type]; ok {
		return n
	}

	return fmt.Sprintf("scale(%d)", s.Type)
}

func (s Scale) exponent() float64 {
	if s.Exponent <= 0 || math.IsInf(s.Exponent, 0) || math.IsNaN(s.Exponent) {
		return DefaultGammaExponent
	}

	return s.Exponent
}

// ValidMin returns the smallest value the scale can display: the smallest
// positive float64 for Log, 0 for Sqrt and -Inf otherwise.
func ValidMin(s Scale) float64 {
	switch s.Type {
	case ScaleLog:
		return math.SmallestNonzeroFloat64
	case ScaleSqrt:
		return 0
	default:
		return math.Inf(-1)
	}
}

// Bounds summarises the finite values of a set. PositiveMin is +Inf when no
// strictly positive value was seen.
type Bounds struct {
	Min, Max    float64
	PositiveMin float64
}

// Domain is the [Min, Max] range mapped onto an axis or color scale.
// Finalized domains satisfy Min <= Max; Min == Max is legal.
type Domain struct {
	Min, Max float64
}

// IsDegenerate reports whether Min == Max.
func (d Domain) IsDegenerate() bool { return d.Min == d.Max }

// Contains reports whether v lies in [Min, Max].
func (d Domain) Contains(v float64) bool { return v >= d.Min && v <= d.Max }

func (d Domain) String() string { return fmt.Sprintf("[%g, %g]", d.Min, d.Max) }

// CustomDomain is a user-edited domain; a nil bound means "auto", i.e. use
// the data-derived bound.
type CustomDomain struct {
	Min, Max *float64
}

// Issue identifies why a bound was substituted by Safeguard.
type Issue uint8

const (
	NoIssue Issue = iota
	// InvalidMinWithLog: the lower bound was <= 0 under a log scale.
	InvalidMinWithLog
	// InvalidMaxWithLog: the upper bound was <= 0 under a log scale.
	InvalidMaxWithLog
	// CustomMaxFallback: the fallback lower bound exceeded the custom upper
	// bound, so the upper bound was used for both.
	CustomMaxFallback
)

func (i Issue) String() string {
	switch i {
	case InvalidMinWithLog:
		return "custom min invalid with log scale; falling back to data min"
	case InvalidMaxWithLog:
		return "custom max invalid with log scale; falling back to data max"
	case CustomMaxFallback:
		return "data min greater than custom max; falling back to custom max"
	default:
		return ""
	}
}

// Errors carries the non-fatal diagnostics produced by Safeguard.
type Errors struct {
	MinGreaterThanMax bool
	MinError          Issue
	MaxError          Issue
}

// HasErrors reports whether any flag is set.
func (e Errors) HasErrors() bool {
	return e.MinGreaterThanMax || e.MinError != NoIssue || e.MaxError != NoIssue
}

// Messages returns the advisory messages for the set flags.
func (e Errors) Messages() []string {
	var out []string
	if e.MinGreaterThanMax {
		out = append(out, "min greater than max; falling back to data range")
	}
	if e.MinError != NoIssue {
		out = append(out, e.MinError.String())
	}
	if e.MaxError != NoIssue {
		out = append(out, e.MaxError.String())
	}

	return out
}
