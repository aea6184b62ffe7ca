// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/isoclimb/climb"
)

func newRectsCmd(a *app) *cobra.Command {
	var (
		q        queryFlags
		crossing bool
	)
	cmd := &cobra.Command{
		Use:   "rects",
		Short: "print the maximal monotone rectangles for each level",
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
			w := cmd.OutOrStdout()
			for _, level := range q.levels {
				c.SetLevel(level, q.depth)
				rects := c.Rectangles()
				fmt.Fprintf(w, "level %g: %d rectangles\n", level, len(rects))
				for _, r := range rects {
					if crossing && r.Type == 0 {
						continue
					}
					fmt.Fprintln(w, r)
				}
			}
			return nil
		},
	}
	q.register(cmd.Flags())
	cmd.Flags().BoolVar(&crossing, "crossing", false, "only print rectangles the contour crosses")
	return cmd
}
