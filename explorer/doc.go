// SPDX-License-Identifier: MIT

// Package explorer runs the full path from a dataset to a renderable view:
//
//	Shape → InitMapping (+ axis/slice edits) → EncodeSelection → Provider.Value
//	      → Project → DomainOf → Extend → VisibleDomain → Safeguard
//	      → axis values, domains, integer ticks and index mappers
//
// Configuration is through functional options with documented defaults:
//
//	v, err := explorer.Explore(ctx, p, "threeD",
//		explorer.WithScale(domain.Log),
//		explorer.WithSliceIndex(0, 4),
//		explorer.WithExtendFactor(0.1),
//	)
//
// Errors from the mapping, domain and provider packages are returned wrapped,
// so callers can test them with errors.Is. Advisory domain corrections are
// reported in View.DomainErrors, not as errors.
package explorer
