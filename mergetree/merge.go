// SPDX-License-Identifier: MIT

package mergetree

// mergeXY merges horizontal neighbours first, then vertical ones.
// rects is a copy; the caller's array is left untouched.
func (t *AreaTree) mergeXY(rects [4]QuadRectangle) [4]QuadRectangle {
	t.doXMerge(&rects[R00], &rects[R10])
	t.doXMerge(&rects[R01], &rects[R11])
	t.doYMerge(&rects[R00], &rects[R01])
	t.doYMerge(&rects[R10], &rects[R11])
	return rects
}

// mergeYX merges vertical neighbours first, then horizontal ones.
func (t *AreaTree) mergeYX(rects [4]QuadRectangle) [4]QuadRectangle {
	t.doYMerge(&rects[R00], &rects[R01])
	t.doYMerge(&rects[R10], &rects[R11])
	t.doXMerge(&rects[R00], &rects[R10])
	t.doXMerge(&rects[R01], &rects[R11])
	return rects
}

// doXMerge widens a over its right neighbour b and invalidates b.
// Both must be valid with the same row span; the shared boundary on column
// b.X must not be Mult, and the merged rectangle must stay monotone.
func (t *AreaTree) doXMerge(a, b *QuadRectangle) bool {
	if !a.Valid || !b.Valid {
		return false
	}
	if a.Y != b.Y || a.H != b.H || a.W != b.W || a.X+a.W != b.X {
		return false
	}
	if t.cols[b.X].Span(a.Y, a.H) == Mult {
		return false
	}
	m := QuadRectangle{X: a.X, Y: a.Y, W: a.W + b.W, H: a.H, Valid: true}
	if !t.monotone(m) {
		return false
	}
	*a = m
	b.Valid = false
	return true
}

// doYMerge is the vertical analogue of doXMerge: a grows over b, which lies
// directly above it, using the row tree at b.Y for the shared boundary.
func (t *AreaTree) doYMerge(a, b *QuadRectangle) bool {
	if !a.Valid || !b.Valid {
		return false
	}
	if a.X != b.X || a.W != b.W || a.H != b.H || a.Y+a.H != b.Y {
		return false
	}
	if t.rows[b.Y].Span(a.X, a.W) == Mult {
		return false
	}
	m := QuadRectangle{X: a.X, Y: a.Y, W: a.W, H: a.H + b.H, Valid: true}
	if !t.monotone(m) {
		return false
	}
	*a = m
	b.Valid = false
	return true
}

// monotone reports whether no edge of q mixes Incr and Decr and the level set
// enters and leaves q at most once. The edges that straddle the old shared
// boundary are the ones that can turn Mult here.
func (t *AreaTree) monotone(q QuadRectangle) bool {
	flags := [4]Flag{
		t.cols[q.X].Span(q.Y, q.H),
		t.cols[q.X+q.W].Span(q.Y, q.H),
		t.rows[q.Y].Span(q.X, q.W),
		t.rows[q.Y+q.H].Span(q.X, q.W),
	}
	crossings := 0
	for _, f := range flags {
		switch f {
		case Mult:
			return false
		case Incr, Decr:
			crossings++
		}
	}
	return crossings <= 2
}
