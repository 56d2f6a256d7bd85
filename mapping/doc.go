// SPDX-License-Identifier: MIT

// Package mapping assigns the dimensions of an N-d dataset to a 2-D view
// and projects the dataset accordingly.
//
// A Mapping holds one Entry per dataset dimension. An Entry is one of:
//
//	Slice(i)  the dimension is fixed at index i
//	X, Y      the dimension is drawn along the horizontal / vertical axis
//	Locked    the dimension is fetched whole but never sliced or assigned
//	          an axis (e.g. a trailing RGB channel)
//
// From a Mapping the package derives:
//
//   - the selection string sent to a data provider ("0,:,:"),
//   - the residual shape the provider answers with,
//   - the projected, dense array handed to a renderer, always ordered
//     (…, Y, X).
//
// Quick example (rank 3, two axes):
//
//	m, _ := mapping.InitMapping([]int{9, 20, 41}, 2, 0) // [0 Y X]
//	sel, _ := mapping.EncodeSelection(m)                // "0,:,:"
//	shape, _, _ := mapping.Residual([]int{9, 20, 41}, m) // [20 41]
//
// Every function is pure; a Mapping is a value and is never mutated in place.
package mapping
