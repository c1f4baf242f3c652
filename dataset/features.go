// SPDX-License-Identifier: MIT
// Package dataset: feature-matrix loaders (sparse JSON and dense CSV)
// plus the node-count reconciliation step.

package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/anembed/core"
	"gonum.org/v1/gonum/mat"
)

// LoadFeatures dispatches on the configured layout name
// (core.FeaturesSparse or core.FeaturesDense).
func LoadFeatures(path, layout string) (*mat.Dense, error) {
	switch layout {
	case core.FeaturesSparse:
		return LoadSparseFeatures(path)
	case core.FeaturesDense:
		return LoadDenseFeatures(path)
	default:
		return nil, fmt.Errorf("features: unknown layout %q: %w", layout, core.ErrConfiguration)
	}
}

// LoadSparseFeatures reads a JSON object mapping node id (string key) to
// the list of active feature-column indices, e.g.
//
//	{"0": [0, 3], "1": [1], "3": []}
//
// Active cells become 1.0, everything else 0.0. Absent keys imply an
// all-zero row; n is the maximum key + 1 and f the maximum index + 1.
func LoadSparseFeatures(path string) (*mat.Dense, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("features: open %s: %w", path, err)
	}

	var raw map[string][]int
	if err = json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("features: %s: not a node→indices map (%v): %w", path, err, core.ErrInputFormat)
	}

	maxNode, maxCol := -1, -1
	parsed := make(map[int][]int, len(raw))
	for key, cols := range raw {
		node, err := strconv.Atoi(key)
		if err != nil || node < 0 {
			return nil, fmt.Errorf("features: %s: key %q is not a node id: %w", path, key, core.ErrInputFormat)
		}
		if node > maxNode {
			maxNode = node
		}
		for _, c := range cols {
			if c < 0 {
				return nil, fmt.Errorf("features: %s: node %d has negative column %d: %w", path, node, c, core.ErrInputFormat)
			}
			if c > maxCol {
				maxCol = c
			}
		}
		parsed[node] = cols
	}
	if maxNode < 0 {
		return nil, fmt.Errorf("features: %s: %w", path, ErrNoNodes)
	}
	if maxCol < 0 {
		return nil, fmt.Errorf("features: %s: %w", path, ErrNoFeatures)
	}

	x := mat.NewDense(maxNode+1, maxCol+1, nil)
	for node, cols := range parsed {
		for _, c := range cols {
			x.Set(node, c, 1.0)
		}
	}

	return x, nil
}

// LoadDenseFeatures reads a tabular CSV: header row, first column the
// node id (which must be the ascending contiguous sequence 0,1,2,...),
// remaining columns real-valued features.
func LoadDenseFeatures(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("features: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, inputErr(path, 1, "missing header", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("features: %s: %w", path, ErrNoFeatures)
	}
	width := len(header) - 1

	var (
		rows [][]float64
		line = 1
	)
	for {
		line++
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, inputErr(path, line, "bad record", err)
		}
		id, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, inputErr(path, line, fmt.Sprintf("non-integer node id %q", rec[0]), err)
		}
		if id != len(rows) {
			return nil, fmt.Errorf("%s:%d: id %d where %d expected: %w", path, line, id, len(rows), ErrIDOrder)
		}
		row := make([]float64, width)
		for j, cell := range rec[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, inputErr(path, line, fmt.Sprintf("non-numeric feature %q", cell), err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("features: %s: %w", path, ErrNoNodes)
	}

	x := mat.NewDense(len(rows), width, nil)
	for i, row := range rows {
		x.SetRow(i, row)
	}

	return x, nil
}

// Reconcile fixes the pipeline node count as the maximum id observed on
// either side plus one, zero-padding the shorter side: a node known only
// from edges gets an all-zero (uninformative, still valid) feature row;
// a node known only from features stays isolated in the graph. The
// padded pair is what the proximity builder consumes.
func Reconcile(g *Graph, x *mat.Dense) (*Graph, *mat.Dense, error) {
	if g == nil || x == nil {
		return nil, nil, fmt.Errorf("reconcile: nil input: %w", core.ErrDimensionMismatch)
	}

	rows, cols := x.Dims()
	n := g.NumNodes()
	if rows > n {
		n = rows
	}
	if n == 0 || cols == 0 {
		return nil, nil, fmt.Errorf("reconcile: empty node or feature set: %w", core.ErrDimensionMismatch)
	}

	g = g.grow(n)
	if rows < n {
		padded := mat.NewDense(n, cols, nil)
		padded.Slice(0, rows, 0, cols).(*mat.Dense).Copy(x)
		x = padded
	}

	return g, x, nil
}
