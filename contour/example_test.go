package contour_test

import (
	"fmt"

	"github.com/katalvlaran/isoclimb/climb"
	"github.com/katalvlaran/isoclimb/contour"
	"github.com/katalvlaran/isoclimb/grid"
)

// ExampleMarshalWKT exports the ring around a single peak.
func ExampleMarshalWKT() {
	g, _ := grid.From2D([][]float64{
		{0, 0, 0},
		{0, 4, 0},
		{0, 0, 0},
	})
	c, _ := climb.New(g)
	cg, err := contour.New(climb.MakeUnique(c.ExtractContour(1, -1)))
	if err != nil {
		fmt.Println(err)
		return
	}
	s, err := contour.MarshalWKT(cg.Polylines(), 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s)

	// Output:
	// MULTILINESTRING ((1 0.25, 0.25 1, 1 1.75, 1.75 1, 1 0.25))
}
