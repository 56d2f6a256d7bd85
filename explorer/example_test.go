// SPDX-License-Identifier: MIT

package explorer_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ndview/domain"
	"github.com/katalvlaran/ndview/explorer"
	"github.com/katalvlaran/ndview/provider"
)

// ExampleExplore slices the fifth plane out of a 3-D dataset.
func ExampleExplore() {
	mem, err := provider.NewMock(provider.WithDatasets("threeD"))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	v, err := explorer.Explore(context.Background(), mem, "threeD", explorer.WithSliceIndex(0, 4))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(v.Mapping, v.Selection, v.Array.Shape())
	fmt.Println("x dim", v.X.Dim, "y dim", v.Y.Dim)
	// Output:
	// [4 y x] 4,:,: [20 41]
	// x dim 2 y dim 1
}

// ExampleWithScale shows a log view of data that is half zeros: the zeros
// are left out of the domain, which is then padded by one decade.
func ExampleWithScale() {
	mem, _ := provider.NewMock(provider.WithDatasets("pulse"))
	v, err := explorer.Explore(context.Background(), mem, "pulse",
		explorer.WithAxes(1),
		explorer.WithScale(domain.Log),
		explorer.WithExtendFactor(1),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%s [%.3g, %.3g] %v\n", v.Scale, v.Domain.Min, v.Domain.Max, v.HasDomain)
	// Output:
	// log [0.1, 10] true
}
