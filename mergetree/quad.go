// SPDX-License-Identifier: MIT

package mergetree

// Area returns the number of unit cells covered by q.
func (q QuadRectangle) Area() int { return q.W * q.H }

// Count returns the number of valid rectangles in the node.
func (n *QuadNode) Count() int {
	return countValid(n.Rects)
}

// countValid counts the valid entries of a quadrant array.
func countValid(rects [4]QuadRectangle) int {
	c := 0
	for i := range rects {
		if rects[i].Valid {
			c++
		}
	}
	return c
}

// isMono reports whether rects collapsed into a single R00 covering the
// whole tile of the given stride.
func isMono(rects [4]QuadRectangle, stride int) bool {
	r := rects[R00]
	return r.Valid && r.W == stride && r.H == stride &&
		!rects[R10].Valid && !rects[R01].Valid && !rects[R11].Valid
}
