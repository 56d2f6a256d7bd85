// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/ndview/domain"
	"github.com/katalvlaran/ndview/explorer"
)

var errUnsupportedView = errors.New("view cannot be rendered")

const heatColors = 256

// render draws v to path: a heat map for a (Y, X) view, a line (with error
// bars when present) for an X-only view.
func render(v *explorer.View, cfg Config, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s %s (%s)", v.Path, v.Mapping, v.Scale)

	var err error
	switch {
	case v.X != nil && v.Y != nil && len(v.Layout) == 2:
		err = addHeatMap(p, v)
	case v.X != nil && v.Y == nil && len(v.Layout) == 1:
		err = addLine(p, v)
	default:
		return fmt.Errorf("%s: layout %s: %w", v.Path, v.Layout, errUnsupportedView)
	}
	if err != nil {
		return err
	}

	return p.Save(vg.Length(cfg.Width)*vg.Inch, vg.Length(cfg.Height)*vg.Inch, path)
}

// heatGrid exposes a (Y, X) view as a plotter.GridXYZ of normalized values.
type heatGrid struct {
	data       []float64
	rows, cols int
	norm       func(float64) float64
}

var _ plotter.GridXYZ = heatGrid{}

func (g heatGrid) Dims() (c, r int) { return g.cols, g.rows }

func (g heatGrid) Z(c, r int) float64 {
	// NaN passes through to the palette's NaN color.
	return math.Max(0, math.Min(1, g.norm(g.data[r*g.cols+c])))
}

func (g heatGrid) X(c int) float64 { return float64(c) }

func (g heatGrid) Y(r int) float64 { return float64(r) }

func addHeatMap(p *plot.Plot, v *explorer.View) error {
	norm, err := domain.Normalizer(v.Domain, v.Scale)
	if err != nil {
		return err
	}
	shape := v.Array.Shape()
	grid := heatGrid{data: v.Array.Values(), rows: shape[0], cols: shape[1], norm: norm}

	hm := plotter.NewHeatMap(grid, palette.Heat(heatColors, 1))
	hm.Min, hm.Max = 0, 1
	p.Add(hm)

	setIndexAxis(&p.X, v.X)
	setIndexAxis(&p.Y, v.Y)

	return nil
}

// errorPoints pairs points with their error bars for plotter.NewYErrorBars.
type errorPoints struct {
	plotter.XYs
	plotter.YErrors
}

func addLine(p *plot.Plot, v *explorer.View) error {
	values := v.Array.Values()
	var errs []float64
	if v.ErrorBars != nil {
		errs = v.ErrorBars.Values()
	}

	vmin := domain.ValidMin(v.Scale)
	pts := make(plotter.XYs, 0, len(values))
	var bars errorPoints
	for i, y := range values {
		if math.IsNaN(y) || math.IsInf(y, 0) || y < vmin || (v.Scale.Type == domain.ScaleLog && y <= 0) {
			continue
		}
		pt := plotter.XY{X: v.X.Values[i], Y: y}
		pts = append(pts, pt)
		if errs != nil && y-errs[i] > vmin {
			bars.XYs = append(bars.XYs, pt)
			bars.YErrors = append(bars.YErrors, struct{ Low, High float64 }{errs[i], errs[i]})
		}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	if len(bars.XYs) > 0 {
		eb, err := plotter.NewYErrorBars(bars)
		if err != nil {
			return err
		}
		p.Add(eb)
	}

	setIndexAxis(&p.X, v.X)
	p.Y.Min, p.Y.Max = v.Domain.Min, v.Domain.Max
	if v.Scale.Type != domain.ScaleLinear {
		p.Y.Scale = &scaleNormalizer{s: v.Scale}
	}
	if v.Scale.Type == domain.ScaleLog {
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.Y.Label.Text = "value"

	return nil
}

// setIndexAxis fixes an axis to the cell domain and integer ticks of ax.
func setIndexAxis(pa *plot.Axis, ax *explorer.Axis) {
	pa.Min, pa.Max = ax.Domain.Min, ax.Domain.Max
	pa.Label.Text = "dim " + strconv.Itoa(ax.Dim)
	ticks := make([]plot.Tick, len(ax.Ticks))
	for i, t := range ax.Ticks {
		ticks[i] = plot.Tick{Value: float64(t), Label: strconv.Itoa(t)}
	}
	pa.Tick.Marker = plot.ConstantTicks(ticks)
}

// scaleNormalizer draws a plot axis in the space of a value scale. The
// normalizer of the last (min, max) is kept, so drawing builds it once.
type scaleNormalizer struct {
	s        domain.Scale
	min, max float64
	norm     func(float64) float64
}

var _ plot.Normalizer = (*scaleNormalizer)(nil)

func (n *scaleNormalizer) Normalize(min, max, x float64) float64 {
	if n.norm == nil || min != n.min || max != n.max {
		f, err := domain.Normalizer(domain.Domain{Min: min, Max: max}, n.s)
		if err != nil {
			return math.NaN()
		}
		n.min, n.max, n.norm = min, max, f
	}

	return n.norm(x)
}
