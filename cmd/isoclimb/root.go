// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/isoclimb/climb"
	"github.com/katalvlaran/isoclimb/grid"
)

// queryFlags are shared by every subcommand that runs a query.
type queryFlags struct {
	input  string
	levels []float64
	depth  int
	strict bool
}

func (q *queryFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&q.input, "input", "i", "-", "grid file; - reads stdin")
	fs.Float64SliceVarP(&q.levels, "level", "l", []float64{0}, "contour level; repeat for several")
	fs.IntVarP(&q.depth, "depth", "d", -1, "largest rectangle side is 2^depth cells; negative is unbounded")
	fs.BoolVar(&q.strict, "strict", true, "reject levels equal to a grid sample instead of nudging them upward")
}

// load reads the grid and validates every level against it. Without
// --strict, a level equal to a sample is replaced in q.levels by the next
// float64 above it that matches no sample.
func (q *queryFlags) load(stdin io.Reader, logger *slog.Logger) (*grid.Grid, error) {
	g, err := readGridFile(q.input, stdin)
	if err != nil {
		return nil, err
	}
	lo, hi := g.MinMax()
	logger.Debug("loaded grid",
		slog.String("input", q.input),
		slog.Int("order", g.N()),
		slog.Float64("min", lo),
		slog.Float64("max", hi))

	checker, err := climb.New(g)
	if err != nil {
		return nil, err
	}
	for i, level := range q.levels {
		err := checker.CheckLevel(level)
		switch {
		case err == nil:
		case q.strict || errors.Is(err, climb.ErrLevelNotFinite):
			return nil, err
		default:
			safe := checker.ClearLevel(level)
			if err := checker.CheckLevel(safe); err != nil {
				return nil, errors.Wrapf(err, "level %g has no usable neighbour", level)
			}
			logger.Warn("level equals a grid sample; using the next representable level",
				slog.Float64("level", level), slog.Float64("using", safe))
			q.levels[i] = safe
		}
	}
	return g, nil
}

// app carries process-wide state into subcommands. logger is replaced once
// the persistent flags are parsed.
type app struct {
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	var (
		verbose   bool
		logFormat string
		a         = &app{logger: slog.Default()}
	)
	root := &cobra.Command{
		Use:           "isoclimb",
		Short:         "extract isocontours by adaptive skeleton climbing",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(cmd.ErrOrStderr(), logFormat, verbose)
			if err != nil {
				return err
			}
			a.logger = l
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log query diagnostics")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")

	root.AddCommand(
		newExtractCmd(a),
		newRectsCmd(a),
		newStatsCmd(a),
	)
	return root
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer, format string, verbose bool) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: slog.LevelWarn}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, errors.Newf("unknown log format %q", format)
	}
}
