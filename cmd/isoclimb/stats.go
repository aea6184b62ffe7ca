// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/isoclimb/climb"
)

func newStatsCmd(a *app) *cobra.Command {
	var q queryFlags
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "report tiling and contour sizes for each level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := q.load(cmd.InOrStdin(), a.logger)
			if err != nil {
				return err
			}
			c, err := climb.New(g, climb.WithLogger(a.logger))
			if err != nil {
				return err
			}
			cells := g.Cells() * g.Cells()
			w := cmd.OutOrStdout()
			for _, level := range q.levels {
				vs, es, st := c.Extract(level, q.depth)
				uv, ue := climb.MakeUnique(vs, es)
				fmt.Fprintf(w, "%s unique_vertices=%d unique_edges=%d cells=%d\n",
					st, len(uv), len(ue), cells)
			}
			return nil
		},
	}
	q.register(cmd.Flags())
	return cmd
}
