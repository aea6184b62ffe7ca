// Package mergetree implements the two hierarchical summaries behind adaptive
// skeleton climbing over a (2^N+1)×(2^N+1) scalar grid.
//
// What:
//
//   - LinearTree: one complete binary tree per grid row and per grid column.
//     Each of its 2^N leaves classifies one unit interval of the line against a
//     query level (None, Incr, Decr); every internal node stores the bitwise OR
//     of its children, so a subtree without crossings is pruned in O(1) and a
//     subtree with both directions reports Mult.
//   - AreaTree: a complete 4-ary tree of QuadNode over the whole grid. Built top
//     down, it merges neighbouring sub-rectangles bottom up whenever the merged
//     boundary stays monotone, leaving a tiling of maximal monotone rectangles.
//   - Rectangle: a final tile annotated with a 4-bit Type telling which of its
//     edges the level set crosses and where.
//
// Why:
//
//   - Contour extraction work becomes proportional to the number of maximal
//     rectangles instead of the number of unit cells.
//
// Indexing:
//
//   - LinearTree is a heap: children of i are 2i+1 and 2i+2, leaves start at 2^N-1.
//   - AreaTree is a heap: children of A are 4A+1..4A+4 in quadrant order
//     R00 (low x, low y), R10, R01, R11.
//
// Complexity:
//
//   - LinearTree.SetLevel: O(2^N). Node: O(1). Edge: O(N).
//   - AreaTree.ConstructMono: O(4^N) nodes visited, O(1) merge tests per node.
//   - AreaTree.Rectangles: O(number of QuadNodes that are not mono).
//
// Errors:
//
//   - Nothing here returns an error. Violated preconditions (Edge on a None or
//     Mult node, non-dyadic segments, illegal rectangle edges) are programming
//     errors and panic with an assertion failure from cockroachdb/errors.
package mergetree
