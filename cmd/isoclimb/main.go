// SPDX-License-Identifier: MIT

// Command isoclimb extracts isocontours from a sampled scalar grid.
//
// Usage:
//
//	isoclimb extract -i terrain.txt -l 0 -l 0.5 --format wkt
//	isoclimb rects -i terrain.json -l 0 -d 2
//	isoclimb stats -i - -l 0 < terrain.txt
//
// The grid is read as JSON ([[...],[...]]) or as whitespace-separated rows;
// it must be square with a side of 2^N+1 samples.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "isoclimb:", err)
		os.Exit(1)
	}
}
