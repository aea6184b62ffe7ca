// SPDX-License-Identifier: MIT

package mergetree

import "github.com/cockroachdb/errors"

// AreaTree is the 4-ary merge hierarchy over a grid of 2^N×2^N cells.
//
// The node arena holds (4^(N+1)-1)/3 QuadNodes addressed by heap index; the
// children of node A are 4A+1..4A+4 in quadrant order R00, R10, R01, R11.
// ConstructMono overwrites every node in place, so one AreaTree serves any
// number of queries without reallocating.
type AreaTree struct {
	n     int
	nodes []QuadNode

	// Borrowed from the caller for the duration of a build and the
	// Rectangles walk that follows it.
	rows, cols []LinearTree
	depth      int
}

// NewAreaTree allocates the node arena for a grid of (2^n+1)² samples.
// Complexity: O(4^n) memory.
func NewAreaTree(n int) *AreaTree {
	assertf(n >= 0, "mergetree: negative tree order %d", n)
	return &AreaTree{
		n:     n,
		nodes: make([]QuadNode, ((1<<(2*(n+1)))-1)/3),
		depth: -1,
	}
}

// Order returns N.
func (t *AreaTree) Order() int { return t.n }

// Len returns the number of nodes in the arena.
func (t *AreaTree) Len() int { return len(t.nodes) }

// Node returns a copy of node i.
func (t *AreaTree) Node(i int) QuadNode { return t.nodes[i] }

// Child returns the heap index of quadrant q of node a.
func Child(a, q int) int { return 4*a + 1 + q }

// ConstructMono rebuilds the whole hierarchy from the row and column trees,
// which must already be set to the query level. rows[y] covers grid row y and
// cols[x] covers grid column x.
//
// depth bounds how far merging climbs above the unit cells: tiles wider than
// 2^depth cells are never merged, so no rectangle exceeds 2^depth on a side.
// A negative depth leaves merging unconstrained; depth 0 keeps every unit
// cell separate.
func (t *AreaTree) ConstructMono(rows, cols []LinearTree, depth int) {
	side := 1<<t.n + 1
	assertf(len(rows) == side && len(cols) == side,
		"mergetree: got %d row and %d column trees, want %d each", len(rows), len(cols), side)
	t.rows, t.cols, t.depth = rows, cols, depth
	t.constructMono(0, 0, 0, 1<<t.n)
}

// constructMono fills node with the merged quadrants of the tile at
// (x0, y0) of the given stride. Children are built first; merge decisions are
// made as the recursion returns.
func (t *AreaTree) constructMono(node, x0, y0, stride int) {
	if stride == 1 {
		t.nodes[node] = QuadNode{Mono: true}
		t.nodes[node].Rects[R00] = QuadRectangle{X: x0, Y: y0, W: 1, H: 1, Valid: true}
		return
	}

	half := stride / 2
	var rects [4]QuadRectangle
	for q := range rects {
		cx, cy := x0+(q&1)*half, y0+(q>>1)*half
		child := Child(node, q)
		t.constructMono(child, cx, cy, half)
		// A quadrant whose child did not collapse stays invalid here; its
		// rectangles live further down the tree.
		rects[q] = QuadRectangle{X: cx, Y: cy, W: half, H: half, Valid: t.nodes[child].Mono}
	}

	if t.mergeAllowed(stride) {
		xy := t.mergeXY(rects)
		yx := t.mergeYX(rects)
		if countValid(xy) <= countValid(yx) {
			rects = xy
		} else {
			rects = yx
		}
	}

	t.nodes[node] = QuadNode{Rects: rects, Mono: isMono(rects, stride)}
}

// mergeAllowed applies the depth budget to a tile of the given stride.
func (t *AreaTree) mergeAllowed(stride int) bool {
	if t.depth < 0 || t.depth >= t.n {
		return true
	}
	return stride <= 1<<t.depth
}

// Rectangles walks the hierarchy top down and returns every valid rectangle,
// annotated with its crossings. The result tiles the grid exactly.
func (t *AreaTree) Rectangles() []Rectangle {
	return t.getRectangles(0, 0, 0, 1<<t.n, nil)
}

func (t *AreaTree) getRectangles(node, x0, y0, stride int, out []Rectangle) []Rectangle {
	for _, q := range t.nodes[node].Rects {
		if q.Valid {
			out = append(out, t.Rectangle(q))
		}
	}
	if stride == 1 {
		return out
	}
	half := stride / 2
	for q := 0; q < 4; q++ {
		child := Child(node, q)
		// Mono children are already represented by a rectangle of this node.
		if !t.nodes[child].Mono {
			out = t.getRectangles(child, x0+(q&1)*half, y0+(q>>1)*half, half, out)
		}
	}
	return out
}

// Rectangle annotates q with the crossings found on its four edges.
// Every edge must be a dyadic span whose flag is not Mult.
func (t *AreaTree) Rectangle(q QuadRectangle) Rectangle {
	r := Rectangle{X: q.X, Y: q.Y, Width: q.W, Height: q.H}
	edges := [4]struct {
		tree           *LinearTree
		origin, length int
		bit            Type
		at             *int
	}{
		{&t.cols[q.X], q.Y, q.H, XMin, &r.XMin},
		{&t.cols[q.X+q.W], q.Y, q.H, XMax, &r.XMax},
		{&t.rows[q.Y], q.X, q.W, YMin, &r.YMin},
		{&t.rows[q.Y+q.H], q.X, q.W, YMax, &r.YMax},
	}
	for _, e := range edges {
		node := e.tree.Segment(e.origin, e.length)
		f := e.tree.Node(node)
		if f == Mult {
			panic(errors.AssertionFailedf("mergetree: rectangle %+v has a %s edge %s", q, f, e.bit))
		}
		if f.Crossing() {
			r.Type |= e.bit
			*e.at = e.tree.Edge(node)
		}
	}
	if !r.Type.Legal() {
		panic(errors.AssertionFailedf("mergetree: rectangle %+v has illegal type %d", q, r.Type))
	}
	if r.Type == Saddle && (q.W != 1 || q.H != 1) {
		panic(errors.AssertionFailedf("mergetree: saddle type on %dx%d rectangle", q.W, q.H))
	}
	return r
}
