// Package dataset ingests the attributed graph and exports the learned
// embedding. It is the pure I/O boundary of the pipeline: everything in
// here is format handling, nothing in here is numeric.
//
// 🚀 What lives here?
//
//   - Graph — immutable adjacency built from an edge-list CSV
//     (header row, two integer columns, zero-indexed node ids).
//     Input self-loops are dropped; duplicate edges are folded.
//   - Feature loaders — sparse (JSON map: node id → active column
//     indices) and dense (CSV: id column + real-valued feature columns).
//     Both yield an n×f row-per-node matrix; the two layouts of the same
//     underlying features load to the same matrix.
//   - Reconcile — fixes n as the maximum node id observed on either
//     side plus one, zero-padding the shorter side: a node may appear
//     only in edges (empty feature row) or only in features (isolated).
//   - WriteEmbedding — CSV exporter: header "id,x_0..x_{d-1}", one row
//     per node, ascending node id, values untouched.
//
// Errors:
//
//	All failures wrap the core sentinels: core.ErrInputFormat carries the
//	file path and offending line; geometry problems surface as
//	core.ErrDimensionMismatch. Match with errors.Is.
package dataset
