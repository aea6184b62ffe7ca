// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/isoclimb/grid"
)

// readGridFile opens path, or reads stdin for "-".
func readGridFile(path string, stdin io.Reader) (*grid.Grid, error) {
	if path == "-" {
		return readGrid(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open grid")
	}
	defer f.Close()
	g, err := readGrid(f)
	return g, errors.Wrapf(err, "%s", path)
}

// readGrid parses a JSON array of rows, or whitespace-separated rows of
// numbers with blank lines and #-comments ignored.
func readGrid(r io.Reader) (*grid.Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read grid")
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var rows [][]float64
		if err := json.Unmarshal(trimmed, &rows); err != nil {
			return nil, errors.Wrap(err, "decode json grid")
		}
		return grid.From2D(rows)
	}

	var rows [][]float64
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(strings.ReplaceAll(text, ",", " "))
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "scan grid")
	}
	return grid.From2D(rows)
}
