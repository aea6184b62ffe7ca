// SPDX-License-Identifier: MIT

package mergetree

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Rectangle is a maximal monotone tile of the grid annotated with the edges
// the level set crosses.
//
// X, Y is the lower-left grid vertex and Width, Height are measured in cells.
// For every edge bit set in Type the matching field holds the interval index
// of the crossing along that edge's grid line:
//
//   - XMin: row interval on column X         (crossing between rows XMin and XMin+1)
//   - XMax: row interval on column X+Width
//   - YMin: column interval on row Y         (crossing between columns YMin and YMin+1)
//   - YMax: column interval on row Y+Height
//
// Fields of unset edges are zero and carry no meaning.
type Rectangle struct {
	X, Y          int
	Width, Height int
	Type          Type
	XMin, XMax    int
	YMin, YMax    int
}

// Area returns the number of unit cells covered by r.
func (r Rectangle) Area() int { return r.Width * r.Height }

// Contains reports whether unit cell (x, y) lies inside r.
func (r Rectangle) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Bounds returns r in grid coordinates.
func (r Rectangle) Bounds() r2.Rect {
	return r2.RectFromPoints(
		r2.Point{X: float64(r.X), Y: float64(r.Y)},
		r2.Point{X: float64(r.X + r.Width), Y: float64(r.Y + r.Height)},
	)
}

// String implements fmt.Stringer.
func (r Rectangle) String() string {
	s := fmt.Sprintf("(%d,%d %dx%d) type=%d", r.X, r.Y, r.Width, r.Height, r.Type)
	if r.Type.Has(XMin) {
		s += fmt.Sprintf(" xmin=%d", r.XMin)
	}
	if r.Type.Has(XMax) {
		s += fmt.Sprintf(" xmax=%d", r.XMax)
	}
	if r.Type.Has(YMin) {
		s += fmt.Sprintf(" ymin=%d", r.YMin)
	}
	if r.Type.Has(YMax) {
		s += fmt.Sprintf(" ymax=%d", r.YMax)
	}
	return s
}
