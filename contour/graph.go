// SPDX-License-Identifier: MIT

package contour

import (
	"github.com/cockroachdb/errors"
	"github.com/golang/geo/r2"

	"github.com/katalvlaran/isoclimb/climb"
)

// New indexes vs and es. The slices are retained, not copied.
// Returns ErrEdgeOutOfRange if an edge refers to a missing vertex.
func New(vs []r2.Point, es []climb.Edge) (*Graph, error) {
	incident := make([][]int, len(vs))
	for i, e := range es {
		if e.From < 0 || e.From >= len(vs) || e.To < 0 || e.To >= len(vs) {
			return nil, errors.Wrapf(ErrEdgeOutOfRange, "edge %d %s with %d vertices", i, e, len(vs))
		}
		incident[e.From] = append(incident[e.From], i)
		if e.To != e.From {
			incident[e.To] = append(incident[e.To], i)
		}
	}
	return &Graph{Vertices: vs, Edges: es, incident: incident}, nil
}

// Degree returns the number of edges touching v.
func (g *Graph) Degree(v int) int { return len(g.incident[v]) }

// other returns the endpoint of edge e opposite v.
func (g *Graph) other(e, v int) int {
	if g.Edges[e].From == v {
		return g.Edges[e].To
	}
	return g.Edges[e].From
}

// Bounds returns the smallest rectangle containing every vertex, or an empty
// rectangle for an empty graph.
func (g *Graph) Bounds() r2.Rect {
	if len(g.Vertices) == 0 {
		return r2.EmptyRect()
	}
	return r2.RectFromPoints(g.Vertices...)
}

// Components finds all connected pieces of the graph.
// Returns a slice of components; each component lists vertex indices in BFS
// order from its smallest index. Isolated vertices form their own component.
//
// Time:   O(V+E).
// Memory: O(V) for visited flags and output.
func (g *Graph) Components() [][]int {
	seen := make([]bool, len(g.Vertices))
	var comps [][]int
	for v0 := range g.Vertices {
		if seen[v0] {
			continue
		}
		queue := []int{v0}
		seen[v0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, e := range g.incident[u] {
				w := g.other(e, u)
				if !seen[w] {
					seen[w] = true
					queue = append(queue, w)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// Polylines decomposes the edges into maximal chains.
//
// Open chains start at every vertex whose degree is not 2 (curve ends on the
// grid border and saddle branch points) and run until the next such vertex.
// Edges left over form cycles through degree-2 vertices only; each becomes
// one closed polyline starting at its smallest vertex index.
// Every edge appears in exactly one polyline.
func (g *Graph) Polylines() []Polyline {
	used := make([]bool, len(g.Edges))
	var out []Polyline

	for v := range g.Vertices {
		if g.Degree(v) == 2 {
			continue
		}
		for _, e := range g.incident[v] {
			if !used[e] {
				out = append(out, g.walk(v, e, used))
			}
		}
	}
	for v := range g.Vertices {
		for _, e := range g.incident[v] {
			if !used[e] {
				pl := g.walk(v, e, used)
				// The walk ends where it began.
				pl.Points = pl.Points[:len(pl.Points)-1]
				pl.Closed = true
				out = append(out, pl)
			}
		}
	}
	return out
}

// walk follows unused edges from start through degree-2 vertices.
func (g *Graph) walk(start, e int, used []bool) Polyline {
	pts := []r2.Point{g.Vertices[start]}
	cur := start
	for {
		used[e] = true
		cur = g.other(e, cur)
		pts = append(pts, g.Vertices[cur])
		if cur == start || g.Degree(cur) != 2 {
			return Polyline{Points: pts}
		}
		next := -1
		for _, f := range g.incident[cur] {
			if !used[f] {
				next = f
				break
			}
		}
		if next < 0 {
			return Polyline{Points: pts}
		}
		e = next
	}
}
