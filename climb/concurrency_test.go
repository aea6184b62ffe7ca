package climb_test

import (
	"math/rand"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/isoclimb/climb"
)

// TestConcurrentClimbers runs independent Climbers over one shared grid in
// parallel and compares each result with a sequential run.
func TestConcurrentClimbers(t *testing.T) {
	g := randomGrid(t, rand.New(rand.NewSource(5)), 5)
	levels := []float64{-6.5, -3.5, -0.5, 0.5, 2.5, 4.5, 7.5}

	type result struct {
		vs []r2.Point
		es []climb.Edge
	}
	want := make([]result, len(levels))
	seq, err := climb.New(g)
	require.NoError(t, err)
	for i, level := range levels {
		vs, es := climb.MakeUnique(seq.ExtractContour(level, -1))
		want[i] = result{vs, es}
	}

	got := make([]result, len(levels))
	var eg errgroup.Group
	for i, level := range levels {
		eg.Go(func() error {
			c, err := climb.New(g)
			if err != nil {
				return err
			}
			vs, es := climb.MakeUnique(c.ExtractContour(level, -1))
			got[i] = result{vs, es}
			return nil
		})
	}
	require.NoError(t, eg.Wait())
	require.Equal(t, want, got)
}
