// Package anembed learns low-dimensional node representations for
// attributed graphs — binary codes via mixed-integer factorization or
// real-valued factors via regularized alternating updates.
//
// 🚀 What is anembed?
//
//	A batch embedding toolkit that jointly factors link structure and
//	node attributes:
//		• Weisfeiler-Lehman proximity: multi-hop fusion of adjacency & features
//		• Binarized embeddings (BANE): ±1 codes via cyclic coordinate descent
//		• Continuous embeddings (FSCNMF): structure/content factor blending
//		• CSV / JSON ingestion, CSV export, single-shot CLI
//
// ✨ Why choose anembed?
//
//   - Deterministic – seed-controlled initialization, bit-stable reruns
//   - Numerically guarded – one shared clamp floor at every division,
//     inverse and logarithm site
//   - Explicit configuration – one validated record threaded through the
//     pipeline, no package-level state
//
// Under the hood, everything is organized under five packages:
//
//	core/      — configuration record, error taxonomy, numeric guards
//	dataset/   — edge-list & feature loaders, embedding exporter
//	proximity/ — WL propagator construction and k-hop feature fusion
//	bane/      — binarized factorization engine (ridge + CCD)
//	fscnmf/    — continuous factorization engine (four-factor updates)
//
// Control flow is a straight pipeline:
//
//	dataset → proximity → bane|fscnmf → dataset (export)
//
// Quick ASCII example:
//
//	    0───1───2───3        features: {0:[0], 1:[1], 2:[0,1], 3:[]}
//
//	a 4-node path with sparse binary attributes embeds into a 4×d
//	matrix of ±1 codes, rows ordered by node id.
//
// Dive into cmd/anembed for the CLI surface and DESIGN.md for the
// internal design notes.
//
//	go get github.com/katalvlaran/anembed
package anembed
