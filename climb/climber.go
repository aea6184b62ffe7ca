// SPDX-License-Identifier: MIT

package climb

import (
	"log/slog"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/golang/geo/r2"

	"github.com/katalvlaran/isoclimb/grid"
	"github.com/katalvlaran/isoclimb/mergetree"
)

// Climber answers isocontour queries over one grid.
// Tree storage is allocated once in New and reused by every query.
type Climber struct {
	g    *grid.Grid
	rows []mergetree.LinearTree
	cols []mergetree.LinearTree
	area *mergetree.AreaTree

	level float64
	depth int
	ready bool

	logger *slog.Logger
}

// New prepares a Climber over g. The grid is read but never modified, so
// several Climbers may share it.
// Complexity: O(Size²) memory for the trees.
func New(g *grid.Grid, opts ...Option) (*Climber, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	n, size := g.N(), g.Size()
	c := &Climber{
		g:      g,
		rows:   make([]mergetree.LinearTree, size),
		cols:   make([]mergetree.LinearTree, size),
		area:   mergetree.NewAreaTree(n),
		depth:  -1,
		logger: slog.Default(),
	}
	for i := 0; i < size; i++ {
		c.rows[i] = mergetree.NewLinearTree(n)
		c.cols[i] = mergetree.NewLinearTree(n)
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(slog.String("component", "climb"), slog.Int("order", n))
	return c, nil
}

// Grid returns the grid the Climber was built over.
func (c *Climber) Grid() *grid.Grid { return c.g }

// Level returns the level of the last SetLevel call.
func (c *Climber) Level() float64 { return c.level }

// Depth returns the depth of the last SetLevel call.
func (c *Climber) Depth() int { return c.depth }

// CheckLevel reports whether level is usable: finite and distinct from every
// sample.
func (c *Climber) CheckLevel(level float64) error {
	if math.IsNaN(level) || math.IsInf(level, 0) {
		return errors.Wrapf(ErrLevelNotFinite, "level %g", level)
	}
	if c.g.HasSample(level) {
		return errors.Wrapf(ErrLevelOnSample, "level %g", level)
	}
	return nil
}

// ClearLevel returns level when no sample equals it, and otherwise the
// nearest float64 above level that matches no sample.
func (c *Climber) ClearLevel(level float64) float64 {
	for c.g.HasSample(level) {
		level = math.Nextafter(level, math.Inf(1))
	}
	return level
}

// SetLevel classifies every row and column against level and rebuilds the
// area hierarchy under the given depth budget.
// Complexity: O(Size²).
func (c *Climber) SetLevel(level float64, depth int) {
	data, size := c.g.Values(), c.g.Size()
	for y := range c.rows {
		c.rows[y].SetLevel(level, data, y*size, 1)
	}
	for x := range c.cols {
		c.cols[x].SetLevel(level, data, x, size)
	}
	c.area.ConstructMono(c.rows, c.cols, depth)
	c.level, c.depth, c.ready = level, depth, true
}

// Rectangles returns the maximal monotone tiling for the current level.
// SetLevel must have been called.
func (c *Climber) Rectangles() []mergetree.Rectangle {
	if !c.ready {
		panic(errors.AssertionFailedf("climb: Rectangles before SetLevel"))
	}
	return c.area.Rectangles()
}

// ExtractContour runs a full query and returns the raw vertex and edge soup.
// Crossings shared by neighbouring rectangles appear once per rectangle; pass
// the result through MakeUnique for an indexed graph. Both slices are freshly
// allocated and sized exactly.
func (c *Climber) ExtractContour(level float64, depth int) ([]r2.Point, []Edge) {
	vs, es, _ := c.Extract(level, depth)
	return vs, es
}

// Extract is ExtractContour that also reports the Stats of the same build.
func (c *Climber) Extract(level float64, depth int) ([]r2.Point, []Edge, Stats) {
	c.SetLevel(level, depth)
	rects := c.Rectangles()
	st := c.stats(rects)

	vs := make([]r2.Point, 0, st.Vertices)
	es := make([]Edge, 0, st.Edges)
	for _, r := range rects {
		if r.Type != 0 {
			vs, es = c.Components(level, r, vs, es)
		}
	}
	c.logger.Debug("extracted contour",
		slog.Float64("level", level),
		slog.Int("depth", depth),
		slog.Int("rectangles", st.Rectangles),
		slog.Int("crossing", st.Crossing),
		slog.Int("saddles", st.Saddles),
		slog.Int("vertices", len(vs)),
		slog.Int("edges", len(es)))
	return vs, es, st
}

// Stats runs SetLevel and reports the size of the resulting tiling and of
// the soup ExtractContour would emit.
func (c *Climber) Stats(level float64, depth int) Stats {
	c.SetLevel(level, depth)
	return c.stats(c.Rectangles())
}

func (c *Climber) stats(rects []mergetree.Rectangle) Stats {
	st := Stats{Level: c.level, Depth: c.depth, Rectangles: len(rects)}
	for _, r := range rects {
		switch {
		case r.Type == 0:
			continue
		case r.Type == mergetree.Saddle:
			st.Saddles++
			if c.determinant(c.level, r.X, r.Y) == 0 {
				st.Vertices += 5
				st.Edges += 4
			} else {
				st.Vertices += 4
				st.Edges += 2
			}
		default:
			st.Vertices += 2
			st.Edges++
		}
		st.Crossing++
	}
	return st
}
