// Package bane implements the binarized factorization engine: it turns
// the fused proximity matrix into ±1 node codes by mixed-integer
// optimization — a continuous basis solved in closed form against a
// discrete embedding refined by cyclic coordinate descent (CCD).
//
// 🚀 What is BANE?
//
//	Binarized Attributed Network Embedding. Approximate
//
//	    min ‖P − B·G‖²_F + α·‖G‖²_F    s.t. B ∈ {−1,+1}^{n×d}
//
//	where P is the (SVD-reduced) proximity matrix, G the continuous
//	basis and B the binary embedding — the deliverable.
//
// Algorithm Outline:
//  1. Base reduction: truncated SVD of the fused n×f proximity matrix;
//     keep the top-d left singular vectors scaled by their singular
//     values. P is n×d from here on.
//  2. Initialize B with random signs (seed-controlled).
//  3. For each approximation round (outer alternation):
//     a. Continuous step — ridge update of the basis,
//     G = (BᵀB + α·I)⁻¹·Bᵀ·P,
//     with α floor-clamped so the normal matrix stays invertible.
//     b. Rescale the target: Q = P·Gᵀ.
//     c. Discrete step — for each binarization round, one full CCD
//     sweep over B in fixed row-major order (node 0's d bits, then
//     node 1's, ...). Each bit moves to the sign that minimizes its
//     marginal objective holding all other bits fixed; exact ties
//     keep the current sign, so a sweep never worsens the objective.
//  4. Stop when the round budget is exhausted. The budget is the
//     authoritative stopping rule — there is no hidden convergence
//     test and no early exit.
//
// State machine:
//
//	Uninitialized → (B random signs, G least squares)
//	             → {ContinuousStep ⇄ DiscreteSweep}*
//	             → RoundBudgetExhausted → Frozen.
//
// Failure semantics:
//
//	Near-singular normal matrices are mitigated by the clamp floor, not
//	an exception. A NaN/±Inf that still appears in G or B is fatal and
//	surfaces as core.ErrNumericInstability — optimization cannot proceed
//	with non-finite state and nothing is exported.
//
// Determinism:
//
//	Fixed inputs + fixed seed reproduce the embedding; the tracked
//	objective sequence is non-increasing sweep over sweep.
//
// Complexity:
//
//	Per outer round: O(n·d²) for the ridge solve (plus O(d³) inverse)
//	and O(n·d²) per CCD sweep.
package bane
