// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/katalvlaran/isoclimb/contour"
)

const (
	formatWKT     = "wkt"
	formatGeoJSON = "geojson"
	formatRaw     = "raw"
)

func newExtractCmd(a *app) *cobra.Command {
	var (
		q         queryFlags
		format    string
		precision int
		workers   int
	)
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "extract contour polylines at one or more levels",
		Long: `
Extract the isocontours of the grid at every --level and write them to stdout.

  wkt      one line per level: the level, a tab, a MULTILINESTRING
  geojson  a FeatureCollection with one MultiLineString feature per level
  raw      the compacted vertex and edge lists
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case formatWKT, formatGeoJSON, formatRaw:
			default:
				return errors.Newf("unknown format %q", format)
			}
			g, err := q.load(cmd.InOrStdin(), a.logger)
			if err != nil {
				return err
			}
			results, err := extractAll(cmd.Context(), g, q.levels, q.depth, workers, a.logger)
			if err != nil {
				return err
			}
			return writeResults(cmd.OutOrStdout(), results, format, precision)
		},
	}
	q.register(cmd.Flags())
	cmd.Flags().StringVarP(&format, "format", "f", formatWKT, "output format: wkt, geojson or raw")
	cmd.Flags().IntVar(&precision, "precision", -1, "decimal digits in wkt output; negative keeps all")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "levels extracted in parallel; 0 uses GOMAXPROCS")
	return cmd
}

func writeResults(w io.Writer, results []result, format string, precision int) error {
	switch format {
	case formatWKT:
		for _, r := range results {
			lines, err := polylines(r)
			if err != nil {
				return err
			}
			s, err := contour.MarshalWKT(lines, precision)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%g\t%s\n", r.level, s); err != nil {
				return err
			}
		}
		return nil

	case formatGeoJSON:
		fc := &geojson.FeatureCollection{}
		for _, r := range results {
			lines, err := polylines(r)
			if err != nil {
				return err
			}
			f, err := contour.Feature(r.level, lines, map[string]interface{}{
				"depth":      r.stats.Depth,
				"rectangles": r.stats.Rectangles,
				"vertices":   len(r.vertices),
				"edges":      len(r.edges),
			})
			if err != nil {
				return err
			}
			fc.Features = append(fc.Features, f)
		}
		enc := json.NewEncoder(w)
		return errors.Wrap(enc.Encode(fc), "encode geojson")

	default:
		for _, r := range results {
			fmt.Fprintf(w, "level %g: %d vertices, %d edges\n", r.level, len(r.vertices), len(r.edges))
			for i, p := range r.vertices {
				fmt.Fprintf(w, "v%d %g %g\n", i, p.X, p.Y)
			}
			for i, e := range r.edges {
				fmt.Fprintf(w, "e%d %d %d\n", i, e.From, e.To)
			}
		}
		return nil
	}
}

func polylines(r result) ([]contour.Polyline, error) {
	cg, err := contour.New(r.vertices, r.edges)
	if err != nil {
		return nil, errors.Wrapf(err, "level %g", r.level)
	}
	return cg.Polylines(), nil
}
