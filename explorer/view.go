// SPDX-License-Identifier: MIT

package explorer

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ndview/domain"
	"github.com/katalvlaran/ndview/mapping"
	"github.com/katalvlaran/ndview/ndarray"
)

// Axis describes one visual axis of a View in index coordinates.
type Axis struct {
	Dim    int           // dataset dimension shown on this axis
	Values []float64     // cell-centre coordinates 0..n-1
	Domain domain.Domain // coordinates padded by half a cell
	Ticks  []int         // integer tick positions inside Domain

	index func(float64) int
}

// Len returns the number of cells along the axis.
func (a *Axis) Len() int { return len(a.Values) }

// Index maps a coordinate to the closest cell, or -1 when it falls outside.
func (a *Axis) Index(coord float64) int {
	i := a.index(coord)
	if i < 0 || i >= a.Len() || !a.Domain.Contains(coord) {
		return -1
	}

	return i
}

// View is the result of Explore: the projected data and everything needed to
// draw it.
type View struct {
	Path      string
	Shape     []int           // dataset shape
	Mapping   mapping.Mapping // final mapping after edits
	Selection string          // wire selection; "" when the whole dataset was fetched
	Residual  []int           // shape returned by the provider

	// Layout is the entry of each Array dimension, ordered (…, Y, X).
	Layout    mapping.Mapping
	Array     *ndarray.Array
	ErrorBars *ndarray.Array // nil when the dataset has no error bars

	Scale        domain.Scale
	HasDomain    bool          // false when DataDomain is DefaultDomain
	DataDomain   domain.Domain // data (+ error bars) domain, extended
	Domain       domain.Domain // displayable domain after custom bounds
	DomainErrors domain.Errors

	X, Y *Axis // nil when the axis is not mapped
}

// Lookup returns the values under the coordinate (x, y): one value per
// element of the locked dimensions, or a single value when there are none.
// y is ignored for a view without a Y axis. ok is false outside the view or
// when the view has no X axis.
func (v *View) Lookup(x, y float64) ([]float64, bool) {
	if v.X == nil {
		return nil, false
	}
	col := v.X.Index(x)
	if col < 0 {
		return nil, false
	}
	row := -1
	if v.Y != nil {
		if row = v.Y.Index(y); row < 0 {
			return nil, false
		}
	}

	picks := make([]ndarray.Pick, len(v.Layout))
	for i, e := range v.Layout {
		switch e {
		case mapping.X:
			picks[i] = ndarray.Index(col)
		case mapping.Y:
			picks[i] = ndarray.Index(row)
		default:
			picks[i] = ndarray.All()
		}
	}
	cell, err := v.Array.Pick(picks)
	if err != nil {
		return nil, false
	}

	return cell.Values(), true
}

// Summary renders a multi-line, human-readable description of the view.
func (v *View) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "dataset:     %s %v\n", v.Path, v.Shape)
	fmt.Fprintf(&b, "mapping:     %s\n", v.Mapping)
	sel := v.Selection
	if sel == "" {
		sel = "(all)"
	}
	fmt.Fprintf(&b, "selection:   %s\n", sel)
	fmt.Fprintf(&b, "residual:    %v\n", v.Residual)
	fmt.Fprintf(&b, "projected:   %v %s\n", v.Array.Shape(), v.Layout)
	fmt.Fprintf(&b, "scale:       %s\n", v.Scale)
	if v.HasDomain {
		fmt.Fprintf(&b, "data domain: %s\n", v.DataDomain)
	} else {
		fmt.Fprintf(&b, "data domain: none (default %s)\n", v.DataDomain)
	}
	fmt.Fprintf(&b, "domain:      %s\n", v.Domain)
	for _, msg := range v.DomainErrors.Messages() {
		fmt.Fprintf(&b, "warning:     %s\n", msg)
	}
	if v.Y != nil {
		fmt.Fprintf(&b, "y axis:      dim %d, %d cells, ticks %v\n", v.Y.Dim, v.Y.Len(), v.Y.Ticks)
	}
	if v.X != nil {
		fmt.Fprintf(&b, "x axis:      dim %d, %d cells, ticks %v\n", v.X.Dim, v.X.Len(), v.X.Ticks)
	}

	return b.String()
}
