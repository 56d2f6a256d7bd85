// SPDX-License-Identifier: MIT

// Package ndarray provides a dense, row-major N-dimensional float64 array
// with no-copy views.
//
// What it offers:
//
//   - Array: flat storage addressed through shape, strides and an offset.
//     Rank 0 (a scalar) is legal and holds exactly one value.
//   - Pick: per-dimension selection (a fixed Index or All) producing a
//     lower-rank view over the same storage.
//   - Transpose: axis permutation as a view (strides are permuted, data is not).
//   - Materialize: copy any view into a fresh contiguous Array that shares
//     nothing with its source.
//
// Views are cheap and alias their base; materialized arrays are independent.
// Public accessors never panic on bad indices, they return ErrOutOfRange.
//
// Complexity quicksheet:
//   - New/FromData: O(size); At/Set: O(rank); Pick/Transpose: O(rank);
//     Materialize/Values: O(size).
package ndarray
