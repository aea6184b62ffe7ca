// SPDX-License-Identifier: MIT

package climb

import (
	"github.com/cockroachdb/errors"
	"github.com/golang/geo/r2"

	"github.com/katalvlaran/isoclimb/mergetree"
)

// Components appends the contour pieces inside r to vs and es and returns the
// extended slices. Crossing points are listed in edge order XMin, XMax, YMin,
// YMax and edge indices refer to positions in the returned vs.
//
// A two-edge rectangle yields one segment. A saddle cell yields two segments
// chosen by the sign of the bilinear determinant of its level-shifted corners,
// or, when the determinant is exactly zero, four segments meeting at the
// saddle point.
//
// A zero or illegal type panics.
func (c *Climber) Components(level float64, r mergetree.Rectangle, vs []r2.Point, es []Edge) ([]r2.Point, []Edge) {
	if r.Type == 0 || !r.Type.Legal() {
		panic(errors.AssertionFailedf("climb: rectangle %s has no contour", r))
	}
	base := len(vs)
	if r.Type.Has(mergetree.XMin) {
		vs = append(vs, c.crossY(level, r.X, r.XMin))
	}
	if r.Type.Has(mergetree.XMax) {
		vs = append(vs, c.crossY(level, r.X+r.Width, r.XMax))
	}
	if r.Type.Has(mergetree.YMin) {
		vs = append(vs, c.crossX(level, r.YMin, r.Y))
	}
	if r.Type.Has(mergetree.YMax) {
		vs = append(vs, c.crossX(level, r.YMax, r.Y+r.Height))
	}

	if r.Type != mergetree.Saddle {
		return vs, append(es, Edge{From: base, To: base + 1})
	}

	const xmin, xmax, ymin, ymax = 0, 1, 2, 3
	det := c.determinant(level, r.X, r.Y)
	switch {
	case det > 0:
		// The diagonal through (x,y) and (x+1,y+1) is connected; the other two
		// corners are cut off.
		return vs, append(es,
			Edge{From: base + xmin, To: base + ymax},
			Edge{From: base + xmax, To: base + ymin})
	case det < 0:
		return vs, append(es,
			Edge{From: base + xmin, To: base + ymin},
			Edge{From: base + xmax, To: base + ymax})
	}
	center := len(vs)
	vs = append(vs, c.saddle(level, r.X, r.Y))
	for k := 0; k < 4; k++ {
		es = append(es, Edge{From: base + k, To: center})
	}
	return vs, es
}

// crossY interpolates the crossing on column x between rows j and j+1.
func (c *Climber) crossY(level float64, x, j int) r2.Point {
	a, b := c.g.Value(x, j), c.g.Value(x, j+1)
	return r2.Point{X: float64(x), Y: float64(j) + interp(level, a, b)}
}

// crossX interpolates the crossing on row y between columns i and i+1.
func (c *Climber) crossX(level float64, i, y int) r2.Point {
	a, b := c.g.Value(i, y), c.g.Value(i+1, y)
	return r2.Point{X: float64(i) + interp(level, a, b), Y: float64(y)}
}

// interp returns the fraction t in (0,1) at which a+(b-a)t equals level.
func interp(level, a, b float64) float64 {
	return (level - a) / (b - a)
}

// corners returns the level-shifted samples of unit cell (x, y).
func (c *Climber) corners(level float64, x, y int) (v00, v10, v01, v11 float64) {
	return c.g.Value(x, y) - level, c.g.Value(x+1, y) - level,
		c.g.Value(x, y+1) - level, c.g.Value(x+1, y+1) - level
}

// determinant returns v00·v11 − v01·v10 over the level-shifted corners of
// cell (x, y).
func (c *Climber) determinant(level float64, x, y int) float64 {
	v00, v10, v01, v11 := c.corners(level, x, y)
	return v00*v11 - v01*v10
}

// saddle returns the critical point of the bilinear interpolant of cell
// (x, y). Only meaningful for a saddle cell, where the denominator is nonzero.
func (c *Climber) saddle(level float64, x, y int) r2.Point {
	v00, v10, v01, v11 := c.corners(level, x, y)
	den := v00 - v10 - v01 + v11
	return r2.Point{
		X: float64(x) + (v00-v01)/den,
		Y: float64(y) + (v00-v10)/den,
	}
}
