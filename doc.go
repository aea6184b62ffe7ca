// Package isoclimb extracts isocontours from sampled 2D scalar fields by
// adaptive skeleton climbing: instead of visiting every grid cell like
// marching squares, it merges large monotone regions first and emits
// geometry per merged rectangle.
//
// What is in the box?
//
//	• grid:      immutable (2^N+1)×(2^N+1) sample grids, bilinear evaluation
//	• mergetree: per-line sign-change trees and the 4-ary area merge tree
//	• climb:     the query orchestrator: tiling, saddle handling, MakeUnique
//	• contour:   polylines, connected pieces, WKT and GeoJSON export
//	• cmd/isoclimb: command-line front end
//
// Quick example:
//
//	g, _ := grid.From2D([][]float64{
//		{0, 0, 0},
//		{0, 4, 0},
//		{0, 0, 0},
//	})
//	c, _ := climb.New(g)
//	vs, es := climb.MakeUnique(c.ExtractContour(1, -1))
//	// vs: (1,0.25) (0.25,1) (1.75,1) (1,1.75), es: a closed diamond
//
// The depth argument bounds the side of every merged rectangle to 2^depth
// cells; -1 lets merging climb all the way to the root.
package isoclimb
