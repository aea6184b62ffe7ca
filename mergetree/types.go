// SPDX-License-Identifier: MIT

package mergetree

import (
	"strings"
)

// Flag classifies one line interval (leaf) or the union of intervals under a
// subtree (internal node) against the query level.
type Flag uint8

const (
	// None means no sample pair brackets the level.
	None Flag = 0
	// Incr marks a crossing from below the level to above it.
	Incr Flag = 1
	// Decr marks a crossing from above the level to below it.
	Decr Flag = 2
	// Mult is Incr|Decr: the subtree holds crossings in both directions.
	Mult Flag = Incr | Decr
)

// Crossing reports whether f is exactly one of Incr or Decr.
func (f Flag) Crossing() bool {
	return f == Incr || f == Decr
}

// String implements fmt.Stringer.
func (f Flag) String() string {
	switch f {
	case None:
		return "NONE"
	case Incr:
		return "INCR"
	case Decr:
		return "DECR"
	case Mult:
		return "MULT"
	default:
		return "INVALID"
	}
}

// Type is the 4-bit set of rectangle edges crossed by the level set.
type Type uint8

// Edge bits of a Type.
const (
	XMin Type = 1 << iota // left edge, column X
	XMax                  // right edge, column X+Width
	YMin                  // bottom edge, row Y
	YMax                  // top edge, row Y+Height
)

// Saddle is the only four-crossing Type; it occurs on unit cells only.
const Saddle = XMin | XMax | YMin | YMax

// Has reports whether every bit of e is set in t.
func (t Type) Has(e Type) bool { return t&e == e }

// Count returns the number of crossed edges.
func (t Type) Count() int {
	n := 0
	for _, e := range [...]Type{XMin, XMax, YMin, YMax} {
		if t&e != 0 {
			n++
		}
	}
	return n
}

// Legal reports whether t is one of the values a monotone rectangle can carry:
// zero, any two edges (3, 5, 6, 9, 10, 12) or all four (15).
func (t Type) Legal() bool {
	switch t {
	case 0, XMin | XMax, XMin | YMin, XMax | YMin, XMin | YMax, XMax | YMax, YMin | YMax, Saddle:
		return true
	}
	return false
}

// String renders the crossed edges, e.g. "xmin|ymax".
func (t Type) String() string {
	if t == 0 {
		return "none"
	}
	var parts []string
	for i, name := range [...]string{"xmin", "xmax", "ymin", "ymax"} {
		if t&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// QuadRectangle is a candidate monotone rectangle inside one QuadNode.
// X, Y is the lower-left grid vertex; W and H are the strides in cells.
type QuadRectangle struct {
	X, Y  int
	W, H  int
	Valid bool
}

// QuadNode holds the four quadrant rectangles of one subdivision tile,
// indexed R00, R10, R01, R11. Mono is set when R00 alone covers the tile.
type QuadNode struct {
	Rects [4]QuadRectangle
	Mono  bool
}

// Quadrant indices into QuadNode.Rects.
const (
	R00 = iota // low x, low y
	R10        // high x, low y
	R01        // low x, high y
	R11        // high x, high y
)
