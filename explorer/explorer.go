// SPDX-License-Identifier: MIT

package explorer

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/ndview/axis"
	"github.com/katalvlaran/ndview/domain"
	"github.com/katalvlaran/ndview/mapping"
	"github.com/katalvlaran/ndview/ndarray"
	"github.com/katalvlaran/ndview/provider"
)

// Explore fetches the view of dataset path described by opts.
//
// Implementation:
//   - Stage 1: Shape; mapping from WithMapping or InitMapping, then the
//     WithAxisDim / WithSliceIndex edits in order; Validate.
//   - Stage 2: EncodeSelection → Provider.Value; the answer must have the
//     residual shape. Project orders it (…, Y, X).
//   - Stage 3: data domain of values (+ error bars) under the scale,
//     Extend, then the custom domain through VisibleDomain and Safeguard.
//   - Stage 4: coordinates, domains, ticks and index mappers for each axis.
//
// Errors:
//   - ErrNilProvider, ErrProviderShape.
//   - wrapped mapping errors (ErrOutOfRange, ErrDimensionMismatch, ...).
//   - wrapped provider and context errors.
func Explore(ctx context.Context, p provider.Provider, path string, opts ...Option) (*View, error) {
	if p == nil {
		return nil, fmt.Errorf("Explore: %w", ErrNilProvider)
	}
	o := gatherOptions(opts...)

	// Stage 1: mapping.
	shape, err := p.Shape(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("Explore(%q): %w", path, err)
	}
	m, err := buildMapping(shape, o)
	if err != nil {
		return nil, fmt.Errorf("Explore(%q): %w", path, err)
	}

	// Stage 2: fetch and project.
	sel, _ := mapping.EncodeSelection(m)
	resShape, resMap, err := mapping.Residual(shape, m)
	if err != nil {
		return nil, fmt.Errorf("Explore(%q): %w", path, err)
	}
	slice, err := p.Value(ctx, path, sel)
	if err != nil {
		return nil, fmt.Errorf("Explore(%q): %w", path, err)
	}
	if !slices.Equal(slice.Values.Shape(), resShape) {
		return nil, fmt.Errorf("Explore(%q): got %v, want %v: %w", path, slice.Values.Shape(), resShape, ErrProviderShape)
	}
	arr, err := mapping.Project(slice.Values, resMap)
	if err != nil {
		return nil, fmt.Errorf("Explore(%q): %w", path, err)
	}
	var errArr *ndarray.Array
	if slice.Errors != nil {
		if errArr, err = mapping.Project(slice.Errors, resMap); err != nil {
			return nil, fmt.Errorf("Explore(%q): %w", path, err)
		}
	}

	v := &View{
		Path:      path,
		Shape:     shape,
		Mapping:   m,
		Selection: sel,
		Residual:  resShape,
		Layout:    layoutOf(resMap),
		Array:     arr,
		ErrorBars: errArr,
		Scale:     o.scale,
	}

	// Stage 3: value domain.
	if err = v.resolveDomain(o); err != nil {
		return nil, fmt.Errorf("Explore(%q): %w", path, err)
	}

	// Stage 4: axes.
	if err = v.resolveAxes(o); err != nil {
		return nil, fmt.Errorf("Explore(%q): %w", path, err)
	}

	return v, nil
}

func buildMapping(shape []int, o Options) (mapping.Mapping, error) {
	var (
		m   mapping.Mapping
		err error
	)
	if o.mapping != nil {
		m = o.mapping.Clone()
	} else if m, err = mapping.InitMapping(shape, o.axes, o.locked); err != nil {
		return nil, err
	}
	if err = mapping.Validate(m, shape); err != nil {
		return nil, err
	}

	for _, e := range o.edits {
		if e.slice {
			m, err = mapping.SetSlice(m, shape, e.dim, e.index)
		} else {
			m, err = mapping.AssignAxis(m, e.dim, e.axis)
		}
		if err != nil {
			return nil, err
		}
	}

	return m, nil
}

// layoutOf returns the entry of each projected dimension: the residual
// mapping with X and Y swapped when X came first, as Project does.
func layoutOf(resMap mapping.Mapping) mapping.Mapping {
	out := resMap.Clone()
	if x, y := out.Axes(); x >= 0 && y >= 0 && x < y {
		out[x], out[y] = out[y], out[x]
	}

	return out
}

func (v *View) resolveDomain(o Options) error {
	values := v.Array.Values()
	var errs []float64
	if v.ErrorBars != nil && !o.ignoreErrors {
		errs = v.ErrorBars.Values()
	}

	data, ok, err := domain.DomainOf(values, errs, o.scale)
	if err != nil {
		return err
	}
	if ok && data.Min < domain.ValidMin(o.scale) {
		ok = false
	}
	if ok {
		if data, err = domain.Extend(data, o.extend, o.scale); err != nil {
			return err
		}
	} else {
		data = DefaultDomain
	}

	v.HasDomain = ok
	v.DataDomain = data
	v.Domain, v.DomainErrors = domain.Safeguard(domain.VisibleDomain(o.custom, data), data, o.scale)

	return nil
}

func (v *View) resolveAxes(o Options) error {
	for i, e := range v.Layout {
		if !e.IsAxis() {
			continue
		}
		n := v.Array.Shape()[i]
		values, err := axis.Values(nil, n)
		if err != nil {
			return err
		}
		d, ok, err := axis.Domain(values, domain.Linear, axis.CellFactor(n))
		if err != nil {
			return err
		}
		ax := &Axis{Dim: v.sourceDim(e), Values: values, Ticks: []int{}, index: axis.ValueToIndex(values, true)}
		if ok {
			ax.Domain = d
			ax.Ticks = axis.IntegerTicks(d, o.ticks)
		}
		if e == mapping.X {
			v.X = ax
		} else {
			v.Y = ax
		}
	}

	return nil
}

// sourceDim returns the dataset dimension that holds axis marker e.
func (v *View) sourceDim(e mapping.Entry) int {
	for i, me := range v.Mapping {
		if me == e {
			return i
		}
	}

	return -1
}
