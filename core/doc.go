// Package core carries the cross-cutting primitives shared by every
// stage of the embedding pipeline: the explicit configuration record,
// the sentinel error taxonomy, and the numeric-safety guards.
//
// 🚀 What lives here?
//
//   - Config — one validated hyperparameter record, passed by pointer
//     through Loader → ProximityBuilder → FactorizationEngine → Exporter.
//     Each stage reads only the fields it needs; there is no ambient or
//     package-level configuration state anywhere in the module.
//   - Sentinel errors — ErrInputFormat, ErrDimensionMismatch,
//     ErrNumericInstability, ErrConfiguration. Stages wrap them with
//     fmt.Errorf("stage: %w", ...) so callers can match via errors.Is
//     and still see which stage failed.
//   - Numeric guards — Floor, Stabilize, EnsureFinite: the single home
//     of the lower-control clamp applied at every division, logarithm
//     and matrix-inverse site in the module.
//
// Determinism:
//
//	NewRand derives a math/rand source from Config.Seed, so repeated
//	runs with the same inputs and seed reproduce the same embedding.
package core
