// Package ndview is a toolkit for looking at N-dimensional datasets through
// 1-D and 2-D views: pick which dimensions become the X and Y axes, fix the
// others at an index, and compute a value domain that the chosen scale can
// actually display.
//
// What is inside?
//
//	ndarray/  — dense row-major float64 arrays with no-copy Pick/Transpose views
//	mapping/  — per-dimension roles (X, Y, locked, sliced), selection wire
//	            strings and projection of a dataset down to a (…, Y, X) view
//	domain/   — scales (linear, log, symlog, sqrt, gamma), bounds, extension
//	            and the custom-domain safeguard
//	axis/     — axis coordinates, cell-centre domains, integer ticks and
//	            coordinate → index lookup
//	provider/ — the data-provider contract, an in-memory provider and the
//	            deterministic demo datasets
//	explorer/ — ties everything together: Explore(ctx, provider, path, opts...)
//	cmd/ndview — CLI: info, slice, render (PNG) and export (xlsx/csv)
//
// Quick example:
//
//	mem, _ := provider.NewMock()
//	v, _ := explorer.Explore(ctx, mem, "threeD", explorer.WithSliceIndex(0, 4))
//	fmt.Print(v.Summary())
//
// Runnable walkthroughs live under examples/.
//
//	go install github.com/katalvlaran/ndview/cmd/ndview@latest
package ndview
