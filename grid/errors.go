// SPDX-License-Identifier: MIT

package grid

import "github.com/cockroachdb/errors"

// Sentinel errors for grid construction and access. Constructors wrap them
// with context; match with errors.Is.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNonSquare indicates a row count that differs from the column count.
	ErrNonSquare = errors.New("grid: grid must be square")
	// ErrBadSize indicates a side length that is not 2^N+1.
	ErrBadSize = errors.New("grid: side length must be 2^N+1")
	// ErrNaNInf indicates a sample that is NaN or ±Inf.
	ErrNaNInf = errors.New("grid: NaN or Inf sample")
	// ErrOutOfRange indicates a coordinate outside the grid.
	ErrOutOfRange = errors.New("grid: coordinate out of range")
)
