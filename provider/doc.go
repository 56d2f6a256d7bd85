// SPDX-License-Identifier: MIT

// Package provider supplies datasets to the explorer.
//
// A Provider answers three questions: which datasets exist, what shape a
// dataset has, and what values a selection string picks out of it. The
// selection string is the comma-separated wire format produced by
// mapping.EncodeSelection ("0,:,:"); the answer is shaped like the residual
// shape of the mapping (fixed-index dimensions dropped).
//
// Memory is a mutex-guarded in-memory Provider. NewMock fills one with
// deterministic, seeded demo datasets:
//
//	oneD      [41]           linear chirp, with an error buffer
//	pulse     [64]           rectangular pulse train (zeros and ones)
//	twoD      [20 41]        smooth 2-D field
//	threeD    [9 20 41]      twoD modulated along a third axis
//	fourD     [3 9 20 41]    threeD modulated along a fourth axis
//	rgb       [20 41 3]      8-bit colour image, trailing channel dimension
//	negative  [20 41]        values <= 0 (no domain under a log scale)
//	scalar    []             a single value
package provider
