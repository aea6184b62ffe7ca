// SPDX-License-Identifier: MIT

package grid

import (
	"math"
	"math/bits"

	"github.com/cockroachdb/errors"
)

// OrderForSize returns N for a side length of 2^N+1 samples.
// Returns ErrBadSize for any other length.
func OrderForSize(size int) (int, error) {
	cells := size - 1
	if cells < 1 || cells&(cells-1) != 0 {
		return 0, errors.Wrapf(ErrBadSize, "side length %d", size)
	}
	n := bits.Len(uint(cells)) - 1
	if n > MaxOrder {
		return 0, errors.Wrapf(ErrBadSize, "order %d exceeds %d", n, MaxOrder)
	}
	return n, nil
}

// New builds a grid of order n from row-major samples.
// values must hold exactly (2^n+1)² finite samples; it is copied.
// Complexity: O(Size²) time and memory.
func New(n int, values []float64) (*Grid, error) {
	if n < 0 || n > MaxOrder {
		return nil, errors.Wrapf(ErrBadSize, "order %d", n)
	}
	size := 1<<n + 1
	if len(values) != size*size {
		return nil, errors.Wrapf(ErrBadSize, "got %d samples, want %d for order %d", len(values), size*size, n)
	}
	data := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.Wrapf(ErrNaNInf, "sample (%d,%d)", i%size, i/size)
		}
		data[i] = v
	}
	return &Grid{n: n, size: size, data: data}, nil
}

// From2D builds a grid from rows of samples; values[y][x] is sample (x, y).
// The side length determines N.
func From2D(values [][]float64) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if h != w {
		return nil, errors.Wrapf(ErrNonSquare, "%d rows of %d samples", h, w)
	}
	n, err := OrderForSize(w)
	if err != nil {
		return nil, err
	}
	flat := make([]float64, 0, h*w)
	for _, row := range values {
		flat = append(flat, row...)
	}
	return New(n, flat)
}

// FromFunc samples f at every vertex of a grid of order n.
func FromFunc(n int, f func(x, y int) float64) (*Grid, error) {
	if n < 0 || n > MaxOrder {
		return nil, errors.Wrapf(ErrBadSize, "order %d", n)
	}
	size := 1<<n + 1
	values := make([]float64, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			values[y*size+x] = f(x, y)
		}
	}
	return New(n, values)
}

// N returns the order of the grid.
func (g *Grid) N() int { return g.n }

// Size returns the number of samples per side, 2^N+1.
func (g *Grid) Size() int { return g.size }

// Cells returns the number of unit cells per side, 2^N.
func (g *Grid) Cells() int { return g.size - 1 }

// Values exposes the row-major sample buffer. Callers must not modify it.
func (g *Grid) Values() []float64 { return g.data }

// InBounds reports whether sample (x, y) exists.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// Index maps sample (x, y) to its row-major offset.
func (g *Grid) Index(x, y int) int {
	return y*g.size + x
}

// Coordinate converts a row-major offset back to (x, y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.size, idx / g.size
}

// At returns sample (x, y), or ErrOutOfRange.
func (g *Grid) At(x, y int) (float64, error) {
	if !g.InBounds(x, y) {
		return 0, errors.Wrapf(ErrOutOfRange, "sample (%d,%d) of %d×%d", x, y, g.size, g.size)
	}
	return g.data[g.Index(x, y)], nil
}

// Value returns sample (x, y) without bounds reporting; out-of-range
// coordinates panic like a slice index.
func (g *Grid) Value(x, y int) float64 {
	return g.data[y*g.size+x]
}

// MinMax returns the smallest and largest sample.
func (g *Grid) MinMax() (lo, hi float64) {
	lo, hi = g.data[0], g.data[0]
	for _, v := range g.data[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// HasSample reports whether any sample equals level exactly. Extraction
// requires a level that no sample matches.
func (g *Grid) HasSample(level float64) bool {
	for _, v := range g.data {
		if v == level {
			return true
		}
	}
	return false
}

// Bilinear evaluates the bilinear interpolant of the cell containing (x, y).
// Points on the far boundary use the last cell.
func (g *Grid) Bilinear(x, y float64) (float64, error) {
	hi := float64(g.size - 1)
	if math.IsNaN(x) || math.IsNaN(y) || x < 0 || y < 0 || x > hi || y > hi {
		return 0, errors.Wrapf(ErrOutOfRange, "point (%g,%g)", x, y)
	}
	cx := min(int(x), g.size-2)
	cy := min(int(y), g.size-2)
	u, v := x-float64(cx), y-float64(cy)
	v00 := g.Value(cx, cy)
	v10 := g.Value(cx+1, cy)
	v01 := g.Value(cx, cy+1)
	v11 := g.Value(cx+1, cy+1)
	return v00*(1-u)*(1-v) + v10*u*(1-v) + v01*(1-u)*v + v11*u*v, nil
}
