// SPDX-License-Identifier: MIT

// Package domain computes value domains that are valid for a display scale.
//
// Pipeline (leaves first):
//
//	ComputeBounds   values (+ error bars) → Bounds{Min, Max, PositiveMin}
//	Resolve         Bounds + Scale        → Domain valid for the scale (or none)
//	Combine         many Domains          → one Domain
//	Extend          Domain + factor       → padded Domain, uniform in scale space
//	VisibleDomain   CustomDomain + data   → Domain the user asked for
//	Safeguard       Domain + fallback     → valid Domain + advisory Errors
//
// Scales: Linear, Log, SymLog, Sqrt and Gamma(exponent). Each has a valid
// minimum (ValidMin): -Inf, the smallest positive float64, -Inf, 0 and -Inf.
//
// Recoverable situations (no finite data, no positive data under Log, a custom
// bound the scale cannot show) are reported with ok=false or Errors flags.
// Contract violations (mismatched buffer lengths, extending below a scale's
// minimum) are returned as sentinel errors.
//
// All functions are pure and safe for concurrent use.
package domain
