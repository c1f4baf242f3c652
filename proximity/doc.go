// Package proximity builds the Weisfeiler-Lehman proximity matrix: the
// multi-hop fusion of adjacency structure and node attributes consumed
// by the factorization engines.
//
// 🚀 What is WL proximity?
//
//	Iterated neighborhood aggregation. Each hop replaces a node's
//	attribute vector with a γ-weighted mix of its neighbors' vectors
//	and its own, so after k hops a row summarizes the node's k-hop
//	structural+attribute context — the Weisfeiler-Lehman relabeling
//	idea carried over to continuous features.
//
// Algorithm Outline:
//  1. Fold self-information into the graph (one unit self-loop per node)
//     and build the lazy random-walk propagator
//     S = I − γ·D⁻¹·L,
//     which is row-stochastic: S[i][i] = 1 − γ·dᵢ/(dᵢ+2) and
//     S[i][j] = γ/(dᵢ+2) for every neighbor j. Row-stochasticity bounds
//     propagated magnitudes at every hop.
//  2. Initialize P₀ = X (the n×f feature matrix).
//  3. For hop = 1..k: Pₕ = S·Pₕ₋₁ — each application mixes newly
//     propagated neighbor information against the current hop with
//     weight γ.
//  4. Clamp near-zero entries of the final Pₖ to the lower-control
//     floor so downstream divisions and logarithms stay defined.
//
// Edge cases:
//   - Isolated nodes have S row eᵢ: they propagate only their own
//     features and never produce NaN.
//   - An all-zero feature row stays an (uninformative, valid) all-zero
//     row up to the clamp floor.
//
// Determinism:
//
//	Output is a pure function of (graph, X, k, γ); equality across runs
//	holds to floating-point tolerance, not bit identity, because dense
//	multiplication may reassociate accumulation.
//
// Complexity:
//
//	Propagator: O(n²) memory, O(n + E) fill.
//	Build: O(k·n²·f) time for k hops of dense S·P.
package proximity
