// Package climb extracts isocontours from a grid.Grid by adaptive skeleton
// climbing.
//
// A Climber owns one row LinearTree and one column LinearTree per grid line
// plus one AreaTree, all allocated in New and overwritten on every query.
// A query runs in three stages:
//
//  1. SetLevel classifies every row and column against the level and rebuilds
//     the area hierarchy, merging unit cells into maximal monotone rectangles.
//  2. Rectangles returns that tiling, each tile annotated with the edges the
//     level set crosses.
//  3. Components turns one annotated tile into line segments. Saddle cells
//     (all four edges crossed) are resolved with the sign of the bilinear
//     determinant; an exact zero becomes a four-way branch point.
//
// ExtractContour chains the three stages and returns an unshared vertex and
// edge soup; MakeUnique compacts it into an indexed polyline graph.
//
// Preconditions:
//
//   - The level must differ from every sample. A sample equal to the level
//     leaves its intervals unclassified, which can produce a rectangle with an
//     illegal crossing pattern and an assertion panic. CheckLevel reports
//     violations; ClearLevel moves the level to the next float64 that is safe.
//   - depth bounds the side of every rectangle to 2^depth cells. A negative
//     depth leaves merging unconstrained.
//
// Concurrency: a Climber is not safe for concurrent use. Separate Climbers
// share nothing mutable and may run in parallel, even over the same Grid.
package climb
