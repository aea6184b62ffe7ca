package mergetree_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isoclimb/mergetree"
)

// buildTrees sets every row and column tree of a (2^n+1)² grid to level and
// constructs an AreaTree over them.
func buildTrees(n int, data []float64, level float64, depth int) *mergetree.AreaTree {
	side := 1<<n + 1
	rows := make([]mergetree.LinearTree, side)
	cols := make([]mergetree.LinearTree, side)
	for i := 0; i < side; i++ {
		rows[i] = mergetree.NewLinearTree(n)
		rows[i].SetLevel(level, data, i*side, 1)
		cols[i] = mergetree.NewLinearTree(n)
		cols[i].SetLevel(level, data, i, side)
	}
	area := mergetree.NewAreaTree(n)
	area.ConstructMono(rows, cols, depth)
	return area
}

// randomGrid fills a (2^n+1)² grid with non-zero integers in [-9, 9].
func randomGrid(rnd *rand.Rand, n int) []float64 {
	side := 1<<n + 1
	data := make([]float64, side*side)
	for i := range data {
		v := float64(rnd.Intn(9) + 1)
		if rnd.Intn(2) == 0 {
			v = -v
		}
		data[i] = v
	}
	return data
}

// checkPartition asserts that rects tile the 2^n×2^n cells exactly once.
func checkPartition(t *testing.T, n int, rects []mergetree.Rectangle) {
	t.Helper()
	cells := 1 << n
	cover := make([]int, cells*cells)
	area := 0
	for _, r := range rects {
		area += r.Area()
		for y := r.Y; y < r.Y+r.Height; y++ {
			for x := r.X; x < r.X+r.Width; x++ {
				cover[y*cells+x]++
			}
		}
	}
	require.Equal(t, cells*cells, area, "total rectangle area")
	for i, c := range cover {
		require.Equal(t, 1, c, "cell %d covered %d times", i, c)
	}
}

// TestAreaTree_Uniform collapses a grid without crossings into one rectangle.
func TestAreaTree_Uniform(t *testing.T) {
	data := make([]float64, 9*9)
	for i := range data {
		data[i] = float64(i + 1)
	}
	area := buildTrees(3, data, -1, -1)

	rects := area.Rectangles()
	require.Len(t, rects, 1)
	assert.Equal(t, mergetree.Rectangle{X: 0, Y: 0, Width: 8, Height: 8}, rects[0])
	assert.True(t, area.Node(0).Mono)
}

// TestAreaTree_DepthZero keeps every unit cell separate.
func TestAreaTree_DepthZero(t *testing.T) {
	data := make([]float64, 5*5)
	for i := range data {
		data[i] = 1
	}
	area := buildTrees(2, data, 0, 0)
	rects := area.Rectangles()
	require.Len(t, rects, 16)
	checkPartition(t, 2, rects)
	for _, r := range rects {
		assert.Equal(t, 1, r.Area())
	}
}

// TestAreaTree_SingleCell covers N=0, where the root is a leaf.
func TestAreaTree_SingleCell(t *testing.T) {
	area := buildTrees(0, []float64{1, -1, -1, 1}, 0, -1)
	require.Equal(t, 1, area.Len())
	rects := area.Rectangles()
	require.Len(t, rects, 1)
	assert.Equal(t, mergetree.Saddle, rects[0].Type)
}

// TestAreaTree_YXPreferred exercises a tile where merging rows first
// yields fewer rectangles than merging columns first.
func TestAreaTree_YXPreferred(t *testing.T) {
	data := []float64{
		-2, -1, -2,
		1, -2, 1,
		2, 2, 2,
	}
	rects := buildTrees(1, data, 0, -1).Rectangles()
	require.Len(t, rects, 1)
	assert.Equal(t, mergetree.Rectangle{X: 0, Y: 0, Width: 2, Height: 2, Type: mergetree.XMin | mergetree.XMax}, rects[0])
}

// TestAreaTree_TieKeepsXY keeps the x-then-y result when both orders
// produce the same number of rectangles.
func TestAreaTree_TieKeepsXY(t *testing.T) {
	data := []float64{
		-1, -1, 1,
		-2, -1, -2,
		2, -2, -1,
	}
	rects := buildTrees(1, data, 0, -1).Rectangles()
	require.Equal(t, []mergetree.Rectangle{
		{X: 0, Y: 0, Width: 2, Height: 1, Type: mergetree.XMax | mergetree.YMin, YMin: 1},
		{X: 0, Y: 1, Width: 2, Height: 1, Type: mergetree.XMin | mergetree.YMax, XMin: 1},
	}, rects)
}

// TestAreaTree_RandomInvariants checks the tiling, the saddle restriction and
// the depth bound on random grids.
func TestAreaTree_RandomInvariants(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for trial := 0; trial < 60; trial++ {
		n := trial % 6
		data := randomGrid(rnd, n)
		for _, depth := range []int{-1, 0, 1, 2, 3} {
			t.Run(fmt.Sprintf("trial_%d_n_%d_depth_%d", trial, n, depth), func(t *testing.T) {
				rects := buildTrees(n, data, 0.5, depth).Rectangles()
				checkPartition(t, n, rects)
				for _, r := range rects {
					require.True(t, r.Type.Legal(), "type %d", r.Type)
					if r.Type == mergetree.Saddle {
						require.Equal(t, 1, r.Area(), "saddle on %s", r)
					}
					if depth >= 0 {
						require.LessOrEqual(t, r.Width, 1<<depth)
						require.LessOrEqual(t, r.Height, 1<<depth)
					}
				}
			})
		}
	}
}

// TestAreaTree_Rebuild verifies that reusing one arena gives the same
// rectangles as a freshly allocated one.
func TestAreaTree_Rebuild(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	n := 4
	data := randomGrid(rnd, n)
	side := 1<<n + 1
	rows := make([]mergetree.LinearTree, side)
	cols := make([]mergetree.LinearTree, side)
	for i := range rows {
		rows[i] = mergetree.NewLinearTree(n)
		cols[i] = mergetree.NewLinearTree(n)
	}
	area := mergetree.NewAreaTree(n)
	for _, level := range []float64{-3.5, 0.5, 4.5, 0.5} {
		for i := 0; i < side; i++ {
			rows[i].SetLevel(level, data, i*side, 1)
			cols[i].SetLevel(level, data, i, side)
		}
		area.ConstructMono(rows, cols, -1)
		assert.Equal(t, buildTrees(n, data, level, -1).Rectangles(), area.Rectangles(), "level %v", level)
	}
}

// TestRectangle_Bounds checks the r2 view of a rectangle.
func TestRectangle_Bounds(t *testing.T) {
	r := mergetree.Rectangle{X: 2, Y: 4, Width: 2, Height: 1}
	b := r.Bounds()
	assert.Equal(t, 2.0, b.X.Lo)
	assert.Equal(t, 4.0, b.X.Hi)
	assert.Equal(t, 4.0, b.Y.Lo)
	assert.Equal(t, 5.0, b.Y.Hi)
	assert.True(t, r.Contains(3, 4))
	assert.False(t, r.Contains(3, 5))
}
