// Package grid holds the square scalar field that contour extraction runs on.
//
// What:
//
//   - Grid wraps (2^N+1)×(2^N+1) float64 samples in row-major order
//     (index = y*Size + x). It is deep-copied on construction and immutable
//     afterwards, so one Grid can back any number of extractors.
//   - Sample (x, y) is a grid vertex; unit cell (x, y) spans [x, x+1]×[y, y+1].
//   - Bilinear evaluates the field inside a cell, which is what an extracted
//     contour vertex must satisfy.
//
// Constructors:
//
//   - New(n, values):  flat row-major input of length (2^n+1)².
//   - From2D(values):  [][]float64 rows; N is inferred from the side length.
//   - FromFunc(n, f):  samples f(x, y) at every grid vertex.
//
// Complexity:
//
//   - Construction: O(Size²) time and memory. At/Value/Index: O(1).
//   - MinMax, HasSample: O(Size²).
//
// Errors:
//
//   - ErrEmptyGrid:      no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrNonSquare:      row count differs from column count.
//   - ErrBadSize:        side length is not 2^N+1, or N is negative or too large.
//   - ErrNaNInf:         a sample is NaN or ±Inf.
//   - ErrOutOfRange:     a coordinate lies outside the grid.
package grid
