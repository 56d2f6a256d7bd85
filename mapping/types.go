// SPDX-License-Identifier: MIT

package mapping

import (
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Kind tags the variant held by an Entry.
type Kind uint8

const (
	// KindSlice marks a dimension fixed at one index.
	KindSlice Kind = iota
	// KindX marks the dimension drawn along the horizontal axis.
	KindX
	// KindY marks the dimension drawn along the vertical axis.
	KindY
	// KindLocked marks a dimension fetched whole and excluded from slicing.
	KindLocked
)

// Entry is one element of a Mapping. The zero value is Slice(0).
type Entry struct {
	kind  Kind
	index int
}

var (
	// X is the horizontal axis marker.
	X = Entry{kind: KindX}
	// Y is the vertical axis marker.
	Y = Entry{kind: KindY}
	// Locked is the locked-dimension marker.
	Locked = Entry{kind: KindLocked}
)

// Slice returns an Entry fixing its dimension at index i.
func Slice(i int) Entry { return Entry{kind: KindSlice, index: i} }

// Kind returns the variant tag.
func (e Entry) Kind() Kind { return e.kind }

// Index returns the fixed index and true for Slice entries.
func (e Entry) Index() (int, bool) {
	if e.kind != KindSlice {
		return 0, false
	}

	return e.index, true
}

// IsAxis reports whether e is X or Y.
func (e Entry) IsAxis() bool { return e.kind == KindX || e.kind == KindY }

// IsLocked reports whether e is the locked marker.
func (e Entry) IsLocked() bool { return e.kind == KindLocked }

// IsSlice reports whether e fixes its dimension at an index.
func (e Entry) IsSlice() bool { return e.kind == KindSlice }

// String renders e as "x", "y", "locked" or the slice index.
func (e Entry) String() string {
	switch e.kind {
	case KindX:
		return "x"
	case KindY:
		return "y"
	case KindLocked:
		return "locked"
	default:
		return strconv.Itoa(e.index)
	}
}

// Mapping assigns one Entry to every dimension of a dataset.
type Mapping []Entry

// Clone returns an independent copy of m.
func (m Mapping) Clone() Mapping {
	out := make(Mapping, len(m))
	copy(out, m)

	return out
}

// Axes returns the dimensions holding X and Y, or -1 for an absent axis.
func (m Mapping) Axes() (x, y int) {
	x, y = -1, -1
	for dim, e := range m {
		switch e.kind {
		case KindX:
			x = dim
		case KindY:
			y = dim
		}
	}

	return x, y
}

// String renders m like "[0 y x]".
func (m Mapping) String() string {
	parts := make([]string, len(m))
	for i, e := range m {
		parts[i] = e.String()
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// Validate checks m against shape:
//   - len(m) == len(shape),
//   - X and Y each appear at most once,
//   - every slice index lies in [0, shape[dim]).
func Validate(m Mapping, shape []int) error {
	if len(m) != len(shape) {
		return dimErrorf("Validate", len(m), len(shape))
	}

	axes := mapset.NewThreadUnsafeSet[Kind]()
	for dim, e := range m {
		switch {
		case e.IsAxis():
			if !axes.Add(e.kind) {
				return entryErrorf("Validate", dim, e, ErrDuplicateAxis)
			}
		case e.IsSlice():
			if e.index < 0 || e.index >= shape[dim] {
				return entryErrorf("Validate", dim, e, ErrOutOfRange)
			}
		}
	}

	return nil
}
