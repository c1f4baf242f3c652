// SPDX-License-Identifier: MIT
// Package fscnmf: the four-factor alternating update loop.

package fscnmf

import (
	"fmt"

	"github.com/katalvlaran/anembed/core"
	"gonum.org/v1/gonum/mat"
)

// Result carries the frozen factors. Embedding is the deliverable; the
// four factors are exposed for inspection and tests.
type Result struct {
	// Embedding is the blended n×d output: γ·B1 + (1−γ)·U.
	Embedding *mat.Dense
	// B1 (n×d) and B2 (d×n) reconstruct the link target S ≈ B1·B2.
	B1, B2 *mat.Dense
	// U (n×d) and V (d×f) reconstruct the feature matrix X ≈ U·V.
	U, V *mat.Dense
}

// Embed runs the continuous engine on the proximity target s (n×n, from
// proximity.Target) and feature matrix x (n×f) and returns the blended
// n×Dimensions embedding. Convenience wrapper over Fit.
func Embed(s, x *mat.Dense, cfg *core.Config) (*mat.Dense, error) {
	res, err := Fit(s, x, cfg)
	if err != nil {
		return nil, err
	}

	return res.Embedding, nil
}

// Fit runs Iterations alternating rounds of the four ridge updates and
// returns the frozen factors.
//
// Errors:
//   - core.ErrDimensionMismatch — s is not square or x disagrees on n.
//   - core.ErrNumericInstability — non-finite factor despite the clamp.
func Fit(s, x *mat.Dense, cfg *core.Config) (*Result, error) {
	n, m := s.Dims()
	xr, f := x.Dims()
	if n != m {
		return nil, fmt.Errorf("fscnmf: target is %d×%d, want square: %w", n, m, core.ErrDimensionMismatch)
	}
	if xr != n {
		return nil, fmt.Errorf("fscnmf: %d feature rows for %d nodes: %w", xr, n, core.ErrDimensionMismatch)
	}
	d := cfg.Dimensions

	// Seed-controlled uniform initialization keeps reruns reproducible.
	rng := cfg.NewRand()
	uniform := func(r, c int) *mat.Dense {
		out := mat.NewDense(r, c, nil)
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				out.Set(i, j, rng.Float64())
			}
		}
		return out
	}
	b1, b2 := uniform(n, d), uniform(d, n)
	u, v := uniform(n, d), uniform(d, f)

	floor := cfg.LowerControl
	for it := 0; it < cfg.Iterations; it++ {
		if err := updateEmbedding(b1, s, b2, u, cfg.AlignLink, cfg.NormLinkEmbedding, floor, "link embedding"); err != nil {
			return nil, err
		}
		if err := updateBasis(b2, b1, s, cfg.NormLinkBasis, floor, "link basis"); err != nil {
			return nil, err
		}
		if err := updateEmbedding(u, x, v, b1, cfg.AlignAttr, cfg.NormAttrEmbedding, floor, "attribute embedding"); err != nil {
			return nil, err
		}
		if err := updateBasis(v, u, x, cfg.NormAttrBasis, floor, "attribute basis"); err != nil {
			return nil, err
		}
	}

	emb := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			emb.Set(i, j, cfg.Gamma*b1.At(i, j)+(1-cfg.Gamma)*u.At(i, j))
		}
	}
	if err := core.EnsureFinite(emb, "fscnmf blend"); err != nil {
		return nil, err
	}

	return &Result{Embedding: emb, B1: b1, B2: b2, U: u, V: v}, nil
}

// updateEmbedding refreshes a node-side factor E (n×d) toward
// reconstructing target ≈ E·basis while being pulled to the other
// side's embedding:
//
//	E = (target·basisᵀ + align·other) · (basis·basisᵀ + (align+norm)·I)⁻¹
//
// then clamps E to [floor, +∞).
func updateEmbedding(e *mat.Dense, target, basis, other *mat.Dense, align, norm, floor float64, op string) error {
	d, _ := basis.Dims()

	var gram mat.Dense
	gram.Mul(basis, basis.T())
	ridge := core.Floor(align+norm, floor)
	for j := 0; j < d; j++ {
		gram.Set(j, j, gram.At(j, j)+ridge)
	}

	var inv mat.Dense
	if err := inv.Inverse(&gram); err != nil {
		return fmt.Errorf("fscnmf: %s gram inverse (%v): %w", op, err, core.ErrNumericInstability)
	}

	var num mat.Dense
	num.Mul(target, basis.T())
	var aligned mat.Dense
	aligned.Scale(align, other)
	num.Add(&num, &aligned)

	e.Mul(&num, &inv)
	core.FloorInPlace(e, floor)

	return core.EnsureFinite(e, "fscnmf "+op)
}

// updateBasis refreshes a latent-side factor W (d×c) toward
// reconstructing target ≈ emb·W:
//
//	W = (embᵀ·emb + norm·I)⁻¹ · embᵀ·target
//
// then clamps W to [floor, +∞).
func updateBasis(w *mat.Dense, emb, target *mat.Dense, norm, floor float64, op string) error {
	_, d := emb.Dims()

	var gram mat.Dense
	gram.Mul(emb.T(), emb)
	ridge := core.Floor(norm, floor)
	for j := 0; j < d; j++ {
		gram.Set(j, j, gram.At(j, j)+ridge)
	}

	var inv mat.Dense
	if err := inv.Inverse(&gram); err != nil {
		return fmt.Errorf("fscnmf: %s gram inverse (%v): %w", op, err, core.ErrNumericInstability)
	}

	var num mat.Dense
	num.Mul(emb.T(), target)
	w.Mul(&inv, &num)
	core.FloorInPlace(w, floor)

	return core.EnsureFinite(w, "fscnmf "+op)
}
