// Package fscnmf implements the continuous factorization engine: fused
// structure-and-content non-negative matrix factorization. It factors
// the proximity target and the feature matrix side by side and blends
// the two node-side factors into one embedding.
//
// 🚀 What is FSCNMF?
//
//	Two coupled factorizations with aligned latent spaces:
//
//	    S ≈ B₁·B₂   (link side:       n×n ≈ n×d · d×n)
//	    X ≈ U·V     (attribute side:  n×f ≈ n×d · d×f)
//
//	joint objective: reconstruction of both sides, norm regularization
//	on every factor, and two alignment terms — α₁‖B₁−U‖² pulling the
//	link embedding toward the attribute embedding and β₁‖U−B₁‖² pulling
//	the other way.
//
// Algorithm Outline:
//  1. Initialize B₁, B₂, U, V with seed-controlled uniform [0,1) draws.
//  2. For each iteration, closed-form ridge updates in a fixed order:
//     B₁ = (S·B₂ᵀ + α₁·U)·(B₂·B₂ᵀ + (α₁+α₂)·I)⁻¹
//     B₂ = (B₁ᵀ·B₁ + α₃·I)⁻¹·B₁ᵀ·S
//     U  = (X·Vᵀ + β₁·B₁)·(V·Vᵀ + (β₁+β₂)·I)⁻¹
//     V  = (UᵀU + β₃·I)⁻¹·Uᵀ·X
//     after each update the factor is clamped to [lower-control, +∞) —
//     the same floor discipline as the binarized engine, here also
//     enforcing non-negativity.
//  3. Run exactly Iterations rounds (the budget is the stopping rule).
//  4. Blend: E = γ·B₁ + (1−γ)·U.
//
// Failure semantics:
//
//	The ridge diagonals are floor-clamped so the d×d inverses stay
//	defined; any non-finite value that still appears in a factor is
//	fatal (core.ErrNumericInstability), surfaced before export.
//
// Determinism:
//
//	Fixed inputs + fixed seed reproduce the embedding to floating-point
//	tolerance.
//
// Complexity:
//
//	O(Iterations·(n²·d + n·f·d + d³)).
package fscnmf
