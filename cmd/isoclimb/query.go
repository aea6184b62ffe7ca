// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/golang/geo/r2"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/isoclimb/climb"
	"github.com/katalvlaran/isoclimb/grid"
)

// result is the compacted contour at one level.
type result struct {
	level    float64
	vertices []r2.Point
	edges    []climb.Edge
	stats    climb.Stats
}

// extractAll runs one query per level. Each worker owns its Climber; the grid
// is shared read-only. Results keep the order of levels.
func extractAll(ctx context.Context, g *grid.Grid, levels []float64, depth, workers int, logger *slog.Logger) ([]result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]result, len(levels))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, level := range levels {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := climb.New(g, climb.WithLogger(logger))
			if err != nil {
				return err
			}
			raw, rawEdges, st := c.Extract(level, depth)
			vs, es := climb.MakeUnique(raw, rawEdges)
			out[i] = result{level: level, vertices: vs, edges: es, stats: st}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
