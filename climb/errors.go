// SPDX-License-Identifier: MIT

package climb

import "github.com/cockroachdb/errors"

var (
	// ErrNilGrid indicates New was called without a grid.
	ErrNilGrid = errors.New("climb: grid is nil")
	// ErrLevelOnSample indicates a query level equal to a grid sample.
	ErrLevelOnSample = errors.New("climb: level equals a grid sample")
	// ErrLevelNotFinite indicates a NaN or infinite query level.
	ErrLevelNotFinite = errors.New("climb: level is NaN or Inf")
)
