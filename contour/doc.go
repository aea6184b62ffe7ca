// Package contour turns the compacted vertex/edge graph produced by
// climb.MakeUnique into polylines and exports them as geometry.
//
// What:
//
//   - Graph indexes the vertices and edges and answers degree queries.
//   - Components groups vertices into connected pieces (BFS).
//   - Polylines chains edges into open runs between endpoints or branch
//     points, then closes the remaining cycles.
//   - MultiLineString, MarshalWKT and FeatureCollection export polylines
//     through github.com/twpayne/go-geom.
//
// Complexity:
//
//   - New: O(V+E). Components: O(V+E). Polylines: O(V+E).
//
// Errors:
//
//   - ErrEdgeOutOfRange: an edge refers to a vertex that does not exist.
package contour
