// SPDX-License-Identifier: MIT

package contour

import (
	"github.com/golang/geo/r2"

	"github.com/katalvlaran/isoclimb/climb"
)

// Graph is an undirected contour graph with incidence lists.
type Graph struct {
	Vertices []r2.Point
	Edges    []climb.Edge

	// incident[v] lists the indices of edges touching v.
	incident [][]int
}

// Polyline is an ordered run of contour points. A closed polyline repeats
// no point; its last point connects back to the first.
type Polyline struct {
	Points []r2.Point
	Closed bool
}

// Len returns the number of segments in p.
func (p Polyline) Len() int {
	if p.Closed {
		return len(p.Points)
	}
	return max(len(p.Points)-1, 0)
}

// Length returns the Euclidean length of p.
func (p Polyline) Length() float64 {
	var total float64
	for i := 1; i < len(p.Points); i++ {
		total += p.Points[i].Sub(p.Points[i-1]).Norm()
	}
	if p.Closed && len(p.Points) > 1 {
		total += p.Points[0].Sub(p.Points[len(p.Points)-1]).Norm()
	}
	return total
}
