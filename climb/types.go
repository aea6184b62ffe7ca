// SPDX-License-Identifier: MIT

package climb

import (
	"fmt"
	"log/slog"
)

// Edge joins two vertices by index.
type Edge struct {
	From, To int
}

// String implements fmt.Stringer.
func (e Edge) String() string { return fmt.Sprintf("(%d,%d)", e.From, e.To) }

// key identifies e regardless of orientation.
func (e Edge) key() Edge {
	if e.From > e.To {
		return Edge{From: e.To, To: e.From}
	}
	return e
}

// Option configures a Climber.
type Option func(c *Climber)

// WithLogger routes query diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Climber) {
		if l != nil {
			c.logger = l
		}
	}
}

// Stats summarizes the most recent query of a Climber.
type Stats struct {
	Level      float64
	Depth      int
	Rectangles int // tiles in the tiling
	Crossing   int // tiles with a nonzero type
	Saddles    int // type 15 tiles
	Vertices   int // raw vertices ExtractContour emits
	Edges      int // raw edges ExtractContour emits
}

// String implements fmt.Stringer.
func (s Stats) String() string {
	return fmt.Sprintf("level=%g depth=%d rectangles=%d crossing=%d saddles=%d vertices=%d edges=%d",
		s.Level, s.Depth, s.Rectangles, s.Crossing, s.Saddles, s.Vertices, s.Edges)
}
