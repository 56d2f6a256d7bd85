// SPDX-License-Identifier: MIT

package axis

import (
	"math"

	"github.com/katalvlaran/ndview/domain"
)

// DefaultTickCount is the tick budget used when callers have no preference.
const DefaultTickCount = 10

// maxTickMagnitude keeps tick arithmetic inside the exactly representable
// integer range of float64.
const maxTickMagnitude = 1 << 53

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// IntegerTicks returns at most about maxCount ticks at whole numbers inside d.
//
// The step is the usual 1, 2 or 5 times a power of ten, but never below 1.
// An empty slice is returned when d contains no integer or maxCount < 1.
func IntegerTicks(d domain.Domain, maxCount int) []int {
	lo, hi := math.Min(d.Min, d.Max), math.Max(d.Min, d.Max)
	if maxCount < 1 || lo != lo || hi != hi {
		return []int{}
	}
	lo = math.Max(math.Ceil(lo), -maxTickMagnitude)
	hi = math.Min(math.Floor(hi), maxTickMagnitude)
	if lo > hi {
		return []int{}
	}

	step := integerStep(lo, hi, maxCount)
	start := math.Ceil(lo/step) * step
	stop := math.Floor(hi/step) * step

	ticks := make([]int, 0, int((stop-start)/step)+1)
	for v := start; v <= stop; v += step {
		ticks = append(ticks, int(v))
	}

	return ticks
}

// integerStep picks a 1-2-5 step for count ticks over [start, stop],
// rounded up to at least 1.
func integerStep(start, stop float64, count int) float64 {
	raw := (stop - start) / float64(count)
	if raw <= 1 {
		return 1
	}

	power := math.Floor(math.Log10(raw))
	magnitude := math.Pow(10, power)
	ratio := raw / magnitude

	factor := 1.0
	switch {
	case ratio >= e10:
		factor = 10
	case ratio >= e5:
		factor = 5
	case ratio >= e2:
		factor = 2
	}

	return math.Max(1, math.Round(factor*magnitude))
}
