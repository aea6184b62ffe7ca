// SPDX-License-Identifier: MIT

package contour

import "github.com/cockroachdb/errors"

// ErrEdgeOutOfRange indicates an edge endpoint outside the vertex list.
var ErrEdgeOutOfRange = errors.New("contour: edge endpoint out of range")
