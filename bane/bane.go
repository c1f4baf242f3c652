// SPDX-License-Identifier: MIT
// Package bane: the ridge/CCD optimization loop.

package bane

import (
	"fmt"

	"github.com/katalvlaran/anembed/core"
	"gonum.org/v1/gonum/mat"
)

// Result carries the frozen optimization state: the binary embedding and
// the tracked objective after every CCD sweep (instrumentation for
// convergence inspection; the stopping rule remains the round budget).
type Result struct {
	// Embedding is the n×d code matrix; every entry is exactly −1 or +1.
	Embedding *mat.Dense
	// Basis is the final d×d continuous factor G.
	Basis *mat.Dense
	// Objectives holds ‖P−B·G‖²_F + α‖G‖²_F after each CCD sweep,
	// in sweep order across all approximation rounds. Non-increasing.
	Objectives []float64
}

// Embed runs the full binarized engine on the fused proximity matrix p
// (n×f, from proximity.Build) and returns the n×Dimensions embedding.
// Convenience wrapper over Fit.
func Embed(p *mat.Dense, cfg *core.Config) (*mat.Dense, error) {
	res, err := Fit(p, cfg)
	if err != nil {
		return nil, err
	}

	return res.Embedding, nil
}

// Fit runs base SVD reduction followed by ApproximationRounds outer
// alternations of {ridge basis update, target rescale, BinarizationRounds
// CCD sweeps} and returns the frozen state.
//
// Errors:
//   - core.ErrDimensionMismatch — Dimensions exceeds min(n, f).
//   - core.ErrNumericInstability — non-finite state despite the clamp.
func Fit(p *mat.Dense, cfg *core.Config) (*Result, error) {
	base, err := reduce(p, cfg.Dimensions)
	if err != nil {
		return nil, err
	}
	n, d := base.Dims()

	// Random-sign initialization, seed-controlled for reproducibility.
	rng := cfg.NewRand()
	b := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			if rng.NormFloat64() < 0 {
				b.Set(i, j, -1)
			} else {
				b.Set(i, j, 1)
			}
		}
	}

	// The ridge weight doubles as the singularity guard: it never drops
	// below the lower-control floor.
	ridge := core.Floor(cfg.Alpha, cfg.LowerControl)

	var (
		g          = mat.NewDense(d, d, nil)
		q          = mat.NewDense(n, d, nil)
		coupling   = mat.NewDense(d, d, nil)
		objectives = make([]float64, 0, cfg.ApproximationRounds*cfg.BinarizationRounds)
	)
	for round := 0; round < cfg.ApproximationRounds; round++ {
		if err = updateBasis(g, b, base, ridge); err != nil {
			return nil, err
		}

		// Q = P·Gᵀ rescales the target once per basis refresh.
		q.Mul(base, g.T())
		// coupling = G·Gᵀ feeds the per-bit marginal below.
		coupling.Mul(g, g.T())

		for sweep := 0; sweep < cfg.BinarizationRounds; sweep++ {
			ccdSweep(b, q, coupling)
			objectives = append(objectives, objective(base, b, g, ridge))
		}
		if err = core.EnsureFinite(b, "bane embedding"); err != nil {
			return nil, err
		}
	}

	return &Result{Embedding: b, Basis: g, Objectives: objectives}, nil
}

// reduce performs the base truncated SVD step: the top-d left singular
// vectors of p, scaled by their singular values. Deterministic for a
// fixed input.
func reduce(p *mat.Dense, d int) (*mat.Dense, error) {
	n, f := p.Dims()
	if d > n || d > f {
		return nil, fmt.Errorf("bane: %d dimensions exceed %d×%d proximity: %w", d, n, f, core.ErrDimensionMismatch)
	}

	var svd mat.SVD
	if ok := svd.Factorize(p, mat.SVDThin); !ok {
		return nil, fmt.Errorf("bane: base SVD did not converge: %w", core.ErrNumericInstability)
	}

	var u mat.Dense
	svd.UTo(&u)
	sigma := svd.Values(nil)

	base := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			base.Set(i, j, u.At(i, j)*sigma[j])
		}
	}
	if err := core.EnsureFinite(base, "bane base reduction"); err != nil {
		return nil, err
	}

	return base, nil
}

// updateBasis solves the continuous subproblem in closed form:
// G = (BᵀB + ridge·I)⁻¹·Bᵀ·P. The ridge term keeps the normal matrix
// invertible; a failed inverse is fatal.
func updateBasis(g, b, p *mat.Dense, ridge float64) error {
	_, d := b.Dims()

	var normal mat.Dense
	normal.Mul(b.T(), b)
	for j := 0; j < d; j++ {
		normal.Set(j, j, normal.At(j, j)+ridge)
	}

	var inv mat.Dense
	if err := inv.Inverse(&normal); err != nil {
		return fmt.Errorf("bane: normal matrix inverse (%v): %w", err, core.ErrNumericInstability)
	}

	var bp mat.Dense
	bp.Mul(b.T(), p)
	g.Mul(&inv, &bp)

	return core.EnsureFinite(g, "bane basis")
}

// ccdSweep runs one full cyclic coordinate descent pass over B in fixed
// row-major order. For bit (i,k) the marginal objective is linear in the
// bit with slope −2·(Q[i,k] − Σ_{j≠k} B[i,j]·(G·Gᵀ)[k,j]), so the
// minimizing value is the sign of that margin; an exact zero margin
// keeps the current bit, which preserves the non-worsening guarantee.
// Each update reads the just-updated bits of the same sweep (in-place,
// not a snapshot).
func ccdSweep(b, q, coupling *mat.Dense) {
	n, d := b.Dims()
	for i := 0; i < n; i++ {
		for k := 0; k < d; k++ {
			margin := q.At(i, k)
			for j := 0; j < d; j++ {
				if j == k {
					continue
				}
				margin -= b.At(i, j) * coupling.At(k, j)
			}
			if margin > 0 {
				b.Set(i, k, 1)
			} else if margin < 0 {
				b.Set(i, k, -1)
			}
		}
	}
}

// objective evaluates ‖P − B·G‖²_F + ridge·‖G‖²_F.
func objective(p, b, g *mat.Dense, ridge float64) float64 {
	var rec mat.Dense
	rec.Mul(b, g)
	rec.Sub(p, &rec)

	fro := mat.Norm(&rec, 2)
	reg := mat.Norm(g, 2)

	return fro*fro + ridge*reg*reg
}
