// SPDX-License-Identifier: MIT

// Package provider - deterministic demo datasets.
//
// Purpose:
//   - Fill a Memory provider with datasets of every rank 0..4, plus the
//     awkward cases the domain code has to survive (zeros under log,
//     all-negative data, a trailing colour channel).
//
// Determinism policy:
//   - Every generator draws from the config RNG in a fixed order, and all
//     generators always run, so a dataset is identical whatever subset
//     WithDatasets selects.

package provider

import (
	"fmt"
	"math"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/ndview/ndarray"
)

const (
	chirpF0   = 0.02  // start frequency (cycles/sample)
	chirpF1   = 0.25  // end frequency (cycles/sample)
	pulseFreq = 0.125 // pulse base frequency; period 8
	pulseDuty = 0.5   // fraction of each period at amplitude
	errBase   = 0.1   // constant part of the oneD error bars
	errSlope  = 0.05  // part of the oneD error bars proportional to |y|
	channels  = 3     // rgb channels
	rgbMax    = 255.0
	scalarVal = 42.0
)

const tau = 2 * math.Pi

var (
	shape1D     = []int{41}
	shapePulse  = []int{64}
	shape2D     = []int{20, 41}
	shape3D     = []int{9, 20, 41}
	shape4D     = []int{3, 9, 20, 41}
	shapeRGB    = []int{20, 41, channels}
	shapeScalar = []int{}
)

// generator builds one dataset; errs may be nil.
type generator struct {
	name  string
	shape []int
	build func(cfg *mockConfig) (values, errs []float64)
}

var generators = []generator{
	{"oneD", shape1D, buildOneD},
	{"pulse", shapePulse, buildPulse},
	{"twoD", shape2D, func(cfg *mockConfig) ([]float64, []float64) { return buildField(cfg, 1), nil }},
	{"threeD", shape3D, func(cfg *mockConfig) ([]float64, []float64) { return buildField(cfg, 2), nil }},
	{"fourD", shape4D, func(cfg *mockConfig) ([]float64, []float64) { return buildField(cfg, 3), nil }},
	{"rgb", shapeRGB, buildRGB},
	{"negative", shape2D, buildNegative},
	{"scalar", shapeScalar, func(*mockConfig) ([]float64, []float64) { return []float64{scalarVal}, nil }},
}

// MockNames lists the datasets NewMock can generate, in lexical order.
func MockNames() []string {
	names := make([]string, len(generators))
	for i, g := range generators {
		names[i] = g.name
	}
	sort.Strings(names)

	return names
}

// NewMock returns a Memory provider filled with the demo datasets.
//
// Errors:
//   - ErrNotFound if WithDatasets names a dataset that does not exist.
func NewMock(opts ...Option) (*Memory, error) {
	cfg := newMockConfig(opts...)

	want := mapset.NewThreadUnsafeSet[string]()
	for _, g := range generators {
		want.Add(g.name)
	}
	if len(cfg.names) > 0 {
		picked := mapset.NewThreadUnsafeSet(cfg.names...)
		if unknown := picked.Difference(want); unknown.Cardinality() > 0 {
			missing := unknown.ToSlice()
			sort.Strings(missing)
			return nil, fmt.Errorf("NewMock: %w: %s", ErrNotFound, strings.Join(missing, ", "))
		}
		want = picked
	}

	mem := NewMemory()
	for _, g := range generators {
		values, errs := g.build(&cfg)
		if !want.Contains(g.name) {
			continue
		}
		if err := putFlat(mem, g.name, g.shape, values, errs); err != nil {
			return nil, fmt.Errorf("NewMock: %w", err)
		}
	}

	return mem, nil
}

func putFlat(mem *Memory, name string, shape []int, values, errs []float64) error {
	va, err := ndarray.FromData(values, shape)
	if err != nil {
		return err
	}
	var ea *ndarray.Array
	if errs != nil {
		if ea, err = ndarray.FromData(errs, shape); err != nil {
			return err
		}
	}

	return mem.Put(name, va, ea)
}

func noise(cfg *mockConfig) float64 {
	if cfg.sigma == 0 {
		return 0
	}

	return cfg.sigma * cfg.rng.NormFloat64()
}

// buildOneD is a linear chirp sweeping chirpF0 to chirpF1 with error bars
// that grow with the amplitude.
func buildOneD(cfg *mockConfig) ([]float64, []float64) {
	n := shape1D[0]
	values := make([]float64, n)
	errs := make([]float64, n)
	theta := 0.0
	for i := range values {
		t := float64(i) / float64(n-1)
		theta += tau * (chirpF0 + (chirpF1-chirpF0)*t)
		values[i] = math.Sin(theta) + noise(cfg)
		errs[i] = errBase + errSlope*math.Abs(values[i])
	}

	return values, errs
}

// buildPulse is a noise-free rectangular pulse train; half its values are 0.
func buildPulse(_ *mockConfig) ([]float64, []float64) {
	values := make([]float64, shapePulse[0])
	for i := range values {
		_, frac := math.Modf(float64(i) * pulseFreq)
		if frac < pulseDuty {
			values[i] = 1
		}
	}

	return values, nil
}

// buildField fills shape2D with a smooth field and repeats it along
// extra leading dimensions, scaled by the index of each.
func buildField(cfg *mockConfig, extra int) []float64 {
	rows, cols := shape2D[0], shape2D[1]
	reps := 1
	var outer []int
	switch extra {
	case 2:
		outer = shape3D[:1]
	case 3:
		outer = shape4D[:2]
	}
	for _, s := range outer {
		reps *= s
	}

	out := make([]float64, 0, reps*rows*cols)
	for r := 0; r < reps; r++ {
		gain := 1 + float64(r)/2
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				out = append(out, gain*field(y, x)+noise(cfg))
			}
		}
	}

	return out
}

func field(y, x int) float64 {
	return math.Sin(float64(x)/6+float64(y)/4)*math.Cos(float64(y)/5) + float64(y)/10
}

// buildNegative mirrors the field below zero.
func buildNegative(cfg *mockConfig) ([]float64, []float64) {
	out := buildField(cfg, 1)
	for i, v := range out {
		out[i] = -math.Abs(v)
	}

	return out, nil
}

// buildRGB is a colour gradient: red along x, green along y, blue waves.
func buildRGB(_ *mockConfig) ([]float64, []float64) {
	rows, cols := shapeRGB[0], shapeRGB[1]
	out := make([]float64, 0, rows*cols*channels)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			out = append(out,
				math.Round(rgbMax*float64(x)/float64(cols-1)),
				math.Round(rgbMax*float64(y)/float64(rows-1)),
				math.Round(rgbMax/2*(1+math.Sin(float64(x+y)/4))),
			)
		}
	}

	return out, nil
}
