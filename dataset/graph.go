// SPDX-License-Identifier: MIT
// Package dataset: edge-list ingestion and the immutable Graph view.

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Graph is the normalized adjacency view of the input edge list: node
// ids are contiguous 0..n-1, edges are undirected, deduplicated, and
// free of self-loops. Immutable after construction.
type Graph struct {
	n   int
	adj [][]int
}

// NewGraph builds a Graph over n nodes from undirected edge pairs.
// Self-loops are dropped and parallel edges folded, mirroring the edge
// file loader. Returns an error if n is not positive or an endpoint is
// out of range.
func NewGraph(n int, edges [][2]int) (*Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("graph: node count %d: %w", n, ErrNoNodes)
	}

	adj := make([][]int, n)
	seen := make(map[[2]int]struct{}, len(edges))
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("graph: edge (%d,%d) outside 0..%d: %w", u, v, n-1, ErrNodeRange)
		}
		if u == v {
			continue // self-information is re-folded during normalization
		}
		if u > v {
			u, v = v, u
		}
		if _, dup := seen[[2]int{u, v}]; dup {
			continue
		}
		seen[[2]int{u, v}] = struct{}{}
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}

	return &Graph{n: n, adj: adj}, nil
}

// NumNodes returns n, the contiguous node count (max observed id + 1).
func (g *Graph) NumNodes() int { return g.n }

// Degree returns the number of distinct neighbors of node i (self-loops
// excluded). Zero for isolated nodes.
func (g *Graph) Degree(i int) int { return len(g.adj[i]) }

// Neighbors returns the neighbor list of node i. The returned slice is
// owned by the Graph and must not be mutated.
func (g *Graph) Neighbors(i int) []int { return g.adj[i] }

// grow returns a Graph with the same edges over at least n nodes. Used
// by Reconcile when the feature matrix mentions ids beyond the edge
// list; the extra nodes are isolated.
func (g *Graph) grow(n int) *Graph {
	if n <= g.n {
		return g
	}
	adj := make([][]int, n)
	copy(adj, g.adj)

	return &Graph{n: n, adj: adj}
}

// LoadEdgeList reads an edge-list CSV (header row, two integer columns,
// one undirected edge per row) and returns the Graph over ids
// 0..max-observed+1. Malformed records wrap core.ErrInputFormat with the
// path and 1-based line number.
func LoadEdgeList(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edges: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	r.TrimLeadingSpace = true

	// Header row is mandatory and skipped.
	if _, err = r.Read(); err != nil {
		return nil, inputErr(path, 1, "missing header", err)
	}

	var (
		edges [][2]int
		maxID = -1
		line  = 1
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
		u, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, inputErr(path, line, fmt.Sprintf("non-integer source %q", rec[0]), err)
		}
		v, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, inputErr(path, line, fmt.Sprintf("non-integer target %q", rec[1]), err)
		}
		if u < 0 || v < 0 {
			return nil, inputErr(path, line, fmt.Sprintf("negative node id in (%d,%d)", u, v), nil)
		}
		if u > maxID {
			maxID = u
		}
		if v > maxID {
			maxID = v
		}
		edges = append(edges, [2]int{u, v})
	}
	if maxID < 0 {
		return nil, inputErr(path, line, "no edges", nil)
	}

	return NewGraph(maxID+1, edges)
}
