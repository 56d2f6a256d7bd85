// SPDX-License-Identifier: MIT

// Package explorer: functional configuration for Explore. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values,
//   - gatherOptions, which resolves options in order.
//
// Mapping edits (WithAxisDim, WithSliceIndex) are recorded in order and
// replayed on the initial mapping, so later edits win.
package explorer

import (
	"math"

	"github.com/katalvlaran/ndview/axis"
	"github.com/katalvlaran/ndview/domain"
	"github.com/katalvlaran/ndview/mapping"
)

// ---------- Defaults ----------

const (
	// DefaultAxes is the number of visual axes requested from InitMapping.
	DefaultAxes = 2

	// DefaultLocked is the number of trailing locked dimensions.
	DefaultLocked = 0

	// DefaultExtendFactor pads the data domain by this fraction per side.
	DefaultExtendFactor = 0.0

	// DefaultTickCount is the tick budget per axis.
	DefaultTickCount = axis.DefaultTickCount

	// DefaultIgnoreErrors excludes error bars from the data domain when true.
	DefaultIgnoreErrors = false
)

// DefaultScale is the value scale used when WithScale is not given.
var DefaultScale = domain.Linear

// DefaultDomain stands in for the data domain when the data has none (no
// finite values, or nothing positive under a log scale).
var DefaultDomain = domain.Domain{Min: 0.1, Max: 1}

const (
	panicAxesInvalid   = "explorer: WithAxes: count must be 0, 1 or 2"
	panicLockedInvalid = "explorer: WithLocked: count must be >= 0"
	panicExtendInvalid = "explorer: WithExtendFactor: factor must be finite, non-negative"
	panicTicksInvalid  = "explorer: WithTickCount: count must be >= 1"
	panicAxisInvalid   = "explorer: WithAxisDim: entry must be mapping.X or mapping.Y"
	panicDimInvalid    = "explorer: dimension must be >= 0"
)

// ---------- Option type ----------

// Option mutates the internal options of one Explore call.
type Option func(*Options)

// Options is the resolved configuration; its fields are unexported and set
// through Option constructors only.
type Options struct {
	axes    int
	locked  int
	mapping mapping.Mapping // nil ⇒ InitMapping(shape, axes, locked)
	edits   []edit

	scale        domain.Scale
	extend       float64
	custom       domain.CustomDomain
	ticks        int
	ignoreErrors bool
}

// edit is one recorded mapping change.
type edit struct {
	dim   int
	axis  mapping.Entry // X or Y for axis edits
	index int           // slice index for slice edits
	slice bool
}

func defaultOptions() Options {
	return Options{
		axes:         DefaultAxes,
		locked:       DefaultLocked,
		scale:        DefaultScale,
		extend:       DefaultExtendFactor,
		ticks:        DefaultTickCount,
		ignoreErrors: DefaultIgnoreErrors,
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// ---------- Constructors ----------

// WithAxes sets the requested number of visual axes (0, 1 or 2).
func WithAxes(n int) Option {
	if n < 0 || n > 2 {
		panic(panicAxesInvalid)
	}
	return func(o *Options) { o.axes = n }
}

// WithLocked sets the number of trailing locked dimensions.
func WithLocked(n int) Option {
	if n < 0 {
		panic(panicLockedInvalid)
	}
	return func(o *Options) { o.locked = n }
}

// WithMapping replaces InitMapping with an explicit mapping. It is validated
// against the dataset shape by Explore.
func WithMapping(m mapping.Mapping) Option {
	m = m.Clone()
	return func(o *Options) { o.mapping = m }
}

// WithAxisDim moves axis (mapping.X or mapping.Y) onto dimension dim.
func WithAxisDim(a mapping.Entry, dim int) Option {
	if !a.IsAxis() {
		panic(panicAxisInvalid)
	}
	if dim < 0 {
		panic(panicDimInvalid)
	}
	return func(o *Options) { o.edits = append(o.edits, edit{dim: dim, axis: a}) }
}

// WithSliceIndex fixes the sliced dimension dim at index.
func WithSliceIndex(dim, index int) Option {
	if dim < 0 {
		panic(panicDimInvalid)
	}
	return func(o *Options) { o.edits = append(o.edits, edit{dim: dim, index: index, slice: true}) }
}

// WithScale sets the value scale.
func WithScale(s domain.Scale) Option {
	return func(o *Options) { o.scale = s }
}

// WithExtendFactor pads the data domain by factor of its extent per side,
// measured in scale space.
func WithExtendFactor(f float64) Option {
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		panic(panicExtendInvalid)
	}
	return func(o *Options) { o.extend = f }
}

// WithCustomDomain sets user bounds; a nil bound keeps the data bound.
func WithCustomDomain(lo, hi *float64) Option {
	cd := domain.CustomDomain{}
	if lo != nil {
		v := *lo
		cd.Min = &v
	}
	if hi != nil {
		v := *hi
		cd.Max = &v
	}
	return func(o *Options) { o.custom = cd }
}

// WithTickCount sets the per-axis tick budget.
func WithTickCount(n int) Option {
	if n < 1 {
		panic(panicTicksInvalid)
	}
	return func(o *Options) { o.ticks = n }
}

// WithIgnoreErrors leaves error bars out of the data domain.
func WithIgnoreErrors() Option {
	return func(o *Options) { o.ignoreErrors = true }
}
