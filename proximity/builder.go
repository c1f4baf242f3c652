// SPDX-License-Identifier: MIT
// Package proximity: propagator construction and k-hop feature fusion.

package proximity

import (
	"fmt"

	"github.com/katalvlaran/anembed/core"
	"github.com/katalvlaran/anembed/dataset"
	"gonum.org/v1/gonum/mat"
)

// selfLoopDegree is the degree contribution of the folded-in self-loop
// (an undirected self-loop adds two endpoint slots).
const selfLoopDegree = 2

// Propagator returns the n×n lazy random-walk matrix S = I − γ·D⁻¹·L
// over g with one unit self-loop per node. Rows sum to one, so repeated
// application never grows magnitudes.
//
// Complexity: O(n²) memory, O(n + E) non-trivial writes.
func Propagator(g *dataset.Graph, gamma float64) *mat.Dense {
	n := g.NumNodes()
	s := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		deg := float64(g.Degree(i))
		inv := 1.0 / (deg + selfLoopDegree) // ≥ 1/2 even for isolated nodes
		s.Set(i, i, 1-gamma*deg*inv)
		for _, j := range g.Neighbors(i) {
			s.Set(i, j, gamma*inv)
		}
	}

	return s
}

// Build produces the fused proximity matrix P = Sᵏ·X for the binarized
// pipeline: k hops of neighbor mixing applied to the feature matrix,
// then the lower-control clamp. X must already be reconciled to g's
// node count.
//
// Complexity: O(k·n²·f).
func Build(g *dataset.Graph, x *mat.Dense, cfg *core.Config) (*mat.Dense, error) {
	n := g.NumNodes()
	rows, cols := x.Dims()
	if rows != n {
		return nil, fmt.Errorf("proximity: %d feature rows for %d nodes: %w", rows, n, core.ErrDimensionMismatch)
	}

	s := Propagator(g, cfg.Gamma)

	p := mat.NewDense(n, cols, nil)
	p.Copy(x)
	hop := mat.NewDense(n, cols, nil)
	for h := 0; h < cfg.Order; h++ {
		hop.Mul(s, p)
		p, hop = hop, p
	}

	core.StabilizeInPlace(p, cfg.LowerControl)
	if err := core.EnsureFinite(p, "proximity"); err != nil {
		return nil, err
	}

	return p, nil
}

// Target produces the n×n matrix Sᵏ (propagator power) for the
// continuous pipeline, clamped like Build's output.
//
// Complexity: O(k·n³) for k > 1.
func Target(g *dataset.Graph, cfg *core.Config) (*mat.Dense, error) {
	s := Propagator(g, cfg.Gamma)

	n := g.NumNodes()
	p := mat.NewDense(n, n, nil)
	p.Copy(s)
	hop := mat.NewDense(n, n, nil)
	for h := 1; h < cfg.Order; h++ {
		hop.Mul(p, s)
		p, hop = hop, p
	}

	core.StabilizeInPlace(p, cfg.LowerControl)
	if err := core.EnsureFinite(p, "proximity target"); err != nil {
		return nil, err
	}

	return p, nil
}
