package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isoclimb/climb"
)

const peak = "0 0 0\n0 4 0\n0 0 0\n"

// run executes the root command with args and stdin, returning stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()
	return out.String(), err
}

func TestExtract_WKT(t *testing.T) {
	out, err := run(t, peak, "extract", "-l", "1", "-l", "2")
	require.NoError(t, err)
	assert.Equal(t,
		"1\tMULTILINESTRING ((1 0.25, 0.25 1, 1 1.75, 1.75 1, 1 0.25))\n"+
			"2\tMULTILINESTRING ((1 0.5, 0.5 1, 1 1.5, 1.5 1, 1 0.5))\n",
		out)
}

func TestExtract_GeoJSON(t *testing.T) {
	out, err := run(t, peak, "extract", "-l", "1,3", "-f", "geojson", "-w", "1")
	require.NoError(t, err)

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Properties map[string]float64 `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 2)
	assert.Equal(t, 1.0, fc.Features[0].Properties["level"])
	assert.Equal(t, 3.0, fc.Features[1].Properties["level"])
	assert.Equal(t, 4.0, fc.Features[0].Properties["edges"])
}

func TestExtract_Raw(t *testing.T) {
	out, err := run(t, peak, "extract", "-l", "1", "--format", "raw")
	require.NoError(t, err)
	assert.Equal(t, "level 1: 4 vertices, 4 edges\n"+
		"v0 1 0.25\nv1 0.25 1\nv2 1.75 1\nv3 1 1.75\n"+
		"e0 0 1\ne1 0 2\ne2 3 1\ne3 3 2\n", out)
}

func TestExtract_Errors(t *testing.T) {
	_, err := run(t, peak, "extract", "-l", "0")
	assert.ErrorIs(t, err, climb.ErrLevelOnSample)

	_, err = run(t, peak, "extract", "-l", "0", "--strict=false")
	assert.NoError(t, err)

	_, err = run(t, peak, "extract", "-f", "svg", "-l", "1")
	assert.ErrorContains(t, err, "unknown format")

	_, err = run(t, peak, "--log-format", "xml", "extract", "-l", "1")
	assert.ErrorContains(t, err, "unknown log format")
}

// TestNonStrictLevel runs a level that equals an interior sample. The level
// is moved just above the sample and every depth must extract cleanly.
func TestNonStrictLevel(t *testing.T) {
	const dent = "-1 1 1\n-1 0 1\n-1 1 1\n"

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs([]string{"rects", "-l", "0", "-d", "0", "--strict=false", "--crossing"})
	root.SetIn(strings.NewReader(dent))
	root.SetOut(&out)
	root.SetErr(&errOut)
	require.NotPanics(t, func() { require.NoError(t, root.Execute()) })
	assert.Equal(t, "level 5e-324: 4 rectangles\n"+
		"(0,0 1x1) type=6 xmax=0 ymin=0\n"+
		"(1,0 1x1) type=9 xmin=0 ymax=1\n"+
		"(0,1 1x1) type=10 xmax=1 ymax=0\n"+
		"(1,1 1x1) type=5 xmin=1 ymin=1\n", out.String())
	assert.Contains(t, errOut.String(), "level equals a grid sample")

	out2, err := run(t, dent, "rects", "-l", "0", "--strict=false")
	require.NoError(t, err)
	assert.Equal(t, "level 5e-324: 1 rectangles\n(0,0 2x2) type=12 ymin=0 ymax=0\n", out2)

	for _, depth := range []string{"-1", "0", "1"} {
		out, err := run(t, dent, "extract", "-l", "0", "-d", depth, "--strict=false", "-f", "raw")
		require.NoError(t, err, "depth %s", depth)
		assert.Contains(t, out, "level 5e-324:")
	}

	_, err = run(t, dent, "extract", "-l", "0")
	assert.ErrorIs(t, err, climb.ErrLevelOnSample)
}

func TestRects(t *testing.T) {
	const corner = "[[1,1,1],[1,1,1],[1,1,5]]"
	out, err := run(t, corner, "rects", "-l", "3")
	require.NoError(t, err)
	assert.Equal(t, "level 3: 1 rectangles\n(0,0 2x2) type=10 xmax=1 ymax=1\n", out)

	out, err = run(t, corner, "rects", "-l", "3", "-d", "0", "--crossing")
	require.NoError(t, err)
	assert.Equal(t, "level 3: 4 rectangles\n(1,1 1x1) type=10 xmax=1 ymax=1\n", out)
}

func TestStats(t *testing.T) {
	out, err := run(t, peak, "stats", "-l", "1", "-d", "0")
	require.NoError(t, err)
	assert.Equal(t,
		"level=1 depth=0 rectangles=4 crossing=4 saddles=0 vertices=8 edges=4 "+
			"unique_vertices=4 unique_edges=4 cells=4\n", out)
}
