// SPDX-License-Identifier: MIT

package climb

import "github.com/golang/geo/r2"

// MakeUnique merges vertices that compare exactly equal, remaps es onto the
// surviving indices and drops edges that repeat an unordered pair. Surviving
// vertices and edges keep their first-occurrence order and orientation.
// The result is freshly allocated and never nil; the inputs are not modified.
//
// MakeUnique is idempotent.
// Complexity: O(len(vs) + len(es)) expected.
func MakeUnique(vs []r2.Point, es []Edge) ([]r2.Point, []Edge) {
	index := make(map[r2.Point]int, len(vs))
	remap := make([]int, len(vs))
	outV := make([]r2.Point, 0, len(vs))
	for i, p := range vs {
		j, ok := index[p]
		if !ok {
			j = len(outV)
			index[p] = j
			outV = append(outV, p)
		}
		remap[i] = j
	}

	seen := make(map[Edge]struct{}, len(es))
	outE := make([]Edge, 0, len(es))
	for _, e := range es {
		e = Edge{From: remap[e.From], To: remap[e.To]}
		if _, dup := seen[e.key()]; dup {
			continue
		}
		seen[e.key()] = struct{}{}
		outE = append(outE, e)
	}
	return outV, outE
}
