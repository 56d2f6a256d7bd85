// SPDX-License-Identifier: MIT

// Package mapping - selection wire format and projection.
//
// Wire contract (one token per source dimension, comma separated):
//   - ":"       keep the whole dimension (axis or locked entry),
//   - "<n>"     fixed index, base-10, non-negative.
//
// The provider answers a selection with a buffer shaped like Residual(shape, m).

package mapping

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/ndview/ndarray"
)

const (
	selSep = ","
	selAll = ":"
)

// EncodeSelection renders m as a selection string. It returns ("", false)
// when no entry is a fixed index, i.e. there is nothing to select and the
// whole dataset should be fetched.
func EncodeSelection(m Mapping) (string, bool) {
	sliced := false
	tokens := make([]string, len(m))
	for i, e := range m {
		if idx, ok := e.Index(); ok {
			tokens[i] = strconv.Itoa(idx)
			sliced = true
			continue
		}
		tokens[i] = selAll
	}
	if !sliced {
		return "", false
	}

	return strings.Join(tokens, selSep), true
}

// ParseSelection decodes a selection string for a dataset of the given rank.
// The empty string selects everything.
//
// Errors:
//   - ErrBadSelection for a wrong token count or a token that is neither ":"
//     nor a non-negative integer.
func ParseSelection(s string, rank int) ([]ndarray.Pick, error) {
	picks := make([]ndarray.Pick, rank)
	if s == "" {
		for i := range picks {
			picks[i] = ndarray.All()
		}
		return picks, nil
	}

	tokens := strings.Split(s, selSep)
	if len(tokens) != rank {
		return nil, fmt.Errorf("ParseSelection(%q): %d tokens for rank %d: %w", s, len(tokens), rank, ErrBadSelection)
	}
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == selAll {
			picks[i] = ndarray.All()
			continue
		}
		idx, err := strconv.Atoi(tok)
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("ParseSelection(%q): token %d %q: %w", s, i, tok, ErrBadSelection)
		}
		picks[i] = ndarray.Index(idx)
	}

	return picks, nil
}

// Picks converts m into the pick-list used to cut a view: axis and locked
// entries keep the whole dimension, slice entries fix it.
func Picks(m Mapping) []ndarray.Pick {
	picks := make([]ndarray.Pick, len(m))
	for i, e := range m {
		if idx, ok := e.Index(); ok {
			picks[i] = ndarray.Index(idx)
			continue
		}
		picks[i] = ndarray.All()
	}

	return picks
}

// Residual drops the sliced dimensions of shape and m, keeping axis and
// locked entries with their sizes in original order. The result is the
// shape a provider returns after applying EncodeSelection(m).
func Residual(shape []int, m Mapping) ([]int, Mapping, error) {
	if len(m) != len(shape) {
		return nil, nil, dimErrorf("Residual", len(m), len(shape))
	}

	outShape := make([]int, 0, len(shape))
	outMap := make(Mapping, 0, len(m))
	for i, e := range m {
		if e.IsSlice() {
			continue
		}
		outShape = append(outShape, shape[i])
		outMap = append(outMap, e)
	}

	return outShape, outMap, nil
}

// Project cuts the view described by m out of a and returns it as a dense
// array that shares nothing with a.
//
// Implementation:
//   - Stage 1: Pick with Picks(m); the view keeps axis and locked dimensions
//     in original order.
//   - Stage 2: when X precedes Y, swap the X and Y result dimensions so the
//     output is always ordered (…, Y, X).
//   - Stage 3: Materialize.
//
// Errors:
//   - ErrDimensionMismatch if len(m) != a.Rank().
//   - wrapped ndarray.ErrOutOfRange for a slice index outside its dimension.
func Project(a *ndarray.Array, m Mapping) (*ndarray.Array, error) {
	if a == nil {
		return nil, fmt.Errorf("Project: %w", ndarray.ErrNilArray)
	}
	if len(m) != a.Rank() {
		return nil, dimErrorf("Project", len(m), a.Rank())
	}

	view, err := a.Pick(Picks(m))
	if err != nil {
		return nil, fmt.Errorf("Project: %w", err)
	}

	_, resMap, _ := Residual(a.Shape(), m)
	x, y := resMap.Axes()
	if x >= 0 && y >= 0 && x < y {
		perm := make([]int, view.Rank())
		for i := range perm {
			perm[i] = i
		}
		perm[x], perm[y] = y, x
		if view, err = view.Transpose(perm...); err != nil {
			return nil, fmt.Errorf("Project: %w", err)
		}
	}

	return view.Materialize(), nil
}
