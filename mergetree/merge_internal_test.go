package mergetree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setup builds the line trees of a 3×3 grid without constructing the area tree.
func setup(data []float64, level float64) *AreaTree {
	rows := make([]LinearTree, 3)
	cols := make([]LinearTree, 3)
	for i := 0; i < 3; i++ {
		rows[i] = NewLinearTree(1)
		rows[i].SetLevel(level, data, i*3, 1)
		cols[i] = NewLinearTree(1)
		cols[i].SetLevel(level, data, i, 3)
	}
	t := NewAreaTree(1)
	t.rows, t.cols, t.depth = rows, cols, -1
	return t
}

func unitQuadrants() [4]QuadRectangle {
	return [4]QuadRectangle{
		{X: 0, Y: 0, W: 1, H: 1, Valid: true},
		{X: 1, Y: 0, W: 1, H: 1, Valid: true},
		{X: 0, Y: 1, W: 1, H: 1, Valid: true},
		{X: 1, Y: 1, W: 1, H: 1, Valid: true},
	}
}

func TestMergeOrders_Independent(t *testing.T) {
	tree := setup([]float64{
		-2, -1, -2,
		1, -2, 1,
		2, 2, 2,
	}, 0)
	in := unitQuadrants()

	xy := tree.mergeXY(in)
	yx := tree.mergeYX(in)
	assert.Equal(t, unitQuadrants(), in, "inputs are not mutated")
	assert.Equal(t, 2, countValid(xy))
	assert.Equal(t, 1, countValid(yx))
	assert.True(t, isMono(yx, 2))
	assert.False(t, isMono(xy, 2))
}

func TestDoXMerge_Rejections(t *testing.T) {
	// Row 0 reads -1 → 1 → -1: each cell has one crossing on its bottom edge,
	// but the merged bottom edge is MULT.
	tree := setup([]float64{
		-1, 1, -1,
		-1, 1, -1,
		-1, 1, -1,
	}, 0)
	q := unitQuadrants()
	assert.False(t, tree.doXMerge(&q[R00], &q[R10]), "mixed bottom edge")
	assert.True(t, q[R10].Valid)

	// A merge of a valid and an invalid quadrant never happens.
	q = unitQuadrants()
	q[R10].Valid = false
	assert.False(t, tree.doXMerge(&q[R00], &q[R10]))

	// Mismatched heights.
	q = unitQuadrants()
	q[R00].H = 2
	assert.False(t, tree.doXMerge(&q[R00], &q[R10]))
}

func TestDoYMerge_CrossingBudget(t *testing.T) {
	// The lower cell is cut across its xmin/ymin corner and the upper one
	// across its xmax/ymax corner. No merged edge is MULT, yet the merged
	// rectangle would carry four crossings.
	tree := setup([]float64{
		-1, 1, 1,
		1, 1, 1,
		1, -1, 1,
	}, 0)
	q := unitQuadrants()
	require.Equal(t, None, tree.rows[1].Span(0, 1))
	require.Equal(t, Incr, tree.cols[0].Span(0, 2))
	require.Equal(t, Decr, tree.cols[1].Span(0, 2))
	assert.False(t, tree.doYMerge(&q[R00], &q[R01]))
	assert.True(t, q[R01].Valid)

	// Joining across a crossed boundary is fine.
	tree = setup([]float64{
		-1, 1, 1,
		-1, 1, 1,
		-1, 1, 1,
	}, 0)
	q = unitQuadrants()
	assert.True(t, tree.doYMerge(&q[R00], &q[R01]))
	assert.Equal(t, QuadRectangle{X: 0, Y: 0, W: 1, H: 2, Valid: true}, q[R00])
	assert.False(t, q[R01].Valid)
}
