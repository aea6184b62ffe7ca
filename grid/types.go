// SPDX-License-Identifier: MIT

package grid

// MaxOrder bounds N so that the merge-tree arenas stay addressable:
// a grid of order N needs (4^(N+1)-1)/3 area nodes.
const MaxOrder = 15

// Grid is an immutable (2^N+1)×(2^N+1) field of finite samples.
// Size is 2^N+1 samples per side; Cells is 2^N unit cells per side.
type Grid struct {
	n    int
	size int
	data []float64
}
