// SPDX-License-Identifier: MIT

// Package axis provides coordinate helpers for the axes of a projected view:
//
//   - Values: the coordinates of an axis (explicit, or 0..n-1 indices).
//   - Domain: the scale-valid, padded domain of those coordinates.
//   - ValueToIndex: maps a continuous coordinate back to an array index,
//     e.g. for tooltips.
//   - IntegerTicks: tick positions at whole numbers only, for index axes.
//
// All functions are pure; the returned index mapper is safe for concurrent use.
package axis
