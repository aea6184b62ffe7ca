// SPDX-License-Identifier: MIT

package mergetree

import (
	"math/bits"

	"github.com/cockroachdb/errors"
)

// LinearTree is a complete binary tree of sign-change flags over the 2^N unit
// intervals of one grid line.
//
// Storage is a flat heap of 2^(N+1)-1 flags allocated once by NewLinearTree;
// SetLevel overwrites it in place.
type LinearTree struct {
	n     int
	flags []Flag
}

// NewLinearTree allocates a tree for a line of 2^n+1 samples.
// Complexity: O(2^n) time and memory.
func NewLinearTree(n int) LinearTree {
	assertf(n >= 0, "mergetree: negative tree order %d", n)
	leaves := 1 << n
	return LinearTree{
		n:     n,
		flags: make([]Flag, 2*leaves-1),
	}
}

// Order returns N, the base-2 logarithm of the number of leaves.
func (t *LinearTree) Order() int { return t.n }

// Leaves returns the number of unit intervals, 2^N.
func (t *LinearTree) Leaves() int { return 1 << t.n }

// Len returns the number of heap nodes.
func (t *LinearTree) Len() int { return len(t.flags) }

// SetLevel classifies every interval of the line read from data at
// offset, offset+stride, ..., offset+2^N*stride and rebuilds the internal
// nodes with one reverse OR pass.
//
// Precondition: level differs from every sample on the line. A sample equal
// to the level yields None for both adjacent intervals, which can break the
// alternation of Incr and Decr along the line.
//
// Complexity: O(2^N).
func (t *LinearTree) SetLevel(level float64, data []float64, offset, stride int) {
	leaves := t.Leaves()
	base := leaves - 1
	assertf(offset >= 0 && stride > 0 && offset+leaves*stride < len(data),
		"mergetree: line at offset %d stride %d exceeds %d samples", offset, stride, len(data))

	a := data[offset]
	for j := 0; j < leaves; j++ {
		b := data[offset+(j+1)*stride]
		switch {
		case a < level && b > level:
			t.flags[base+j] = Incr
		case a > level && b < level:
			t.flags[base+j] = Decr
		default:
			t.flags[base+j] = None
		}
		a = b
	}
	for i := base - 1; i >= 0; i-- {
		t.flags[i] = t.flags[2*i+1] | t.flags[2*i+2]
	}
}

// Node returns the raw flag of heap node i.
func (t *LinearTree) Node(i int) Flag {
	return t.flags[i]
}

// Root returns the flag summarising the whole line.
func (t *LinearTree) Root() Flag { return t.flags[0] }

// Leaf returns the flag of interval j.
func (t *LinearTree) Leaf(j int) Flag {
	return t.flags[t.Leaves()-1+j]
}

// Edge descends from node i to the single crossing interval beneath it and
// returns that interval's index along the line.
//
// Node i must be exactly Incr or Decr. Under such a node at most one child is
// non-None because crossings along a line alternate direction; finding two is
// asserted rather than resolved.
//
// Complexity: O(N).
func (t *LinearTree) Edge(i int) int {
	if !t.flags[i].Crossing() {
		panic(errors.AssertionFailedf("mergetree: Edge on node %d with flag %s", i, t.flags[i]))
	}
	base := t.Leaves() - 1
	for i < base {
		l, r := 2*i+1, 2*i+2
		switch {
		case t.flags[l] != None:
			if t.flags[r] != None {
				panic(errors.AssertionFailedf("mergetree: node %d has crossings under both children", i))
			}
			i = l
		default:
			i = r
		}
	}
	return i - base
}

// Segment returns the heap index of the node covering intervals
// [origin, origin+length). The span must be dyadic: length a power of two and
// origin a multiple of length.
func (t *LinearTree) Segment(origin, length int) int {
	if length <= 0 || length&(length-1) != 0 {
		panic(errors.AssertionFailedf("mergetree: segment length %d is not a power of two", length))
	}
	if origin < 0 || origin%length != 0 || origin+length > t.Leaves() {
		panic(errors.AssertionFailedf("mergetree: segment [%d,%d) is not aligned inside %d intervals",
			origin, origin+length, t.Leaves()))
	}
	d := t.n - (bits.Len(uint(length)) - 1)
	return (1 << d) - 1 + origin/length
}

// Span returns the flag of the dyadic span [origin, origin+length).
func (t *LinearTree) Span(origin, length int) Flag {
	return t.flags[t.Segment(origin, length)]
}
