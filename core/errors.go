// SPDX-License-Identifier: MIT
// Package core: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors shared across the
// pipeline. Stages MUST return these sentinels (wrapped with stage context)
// and tests MUST check them via errors.Is. No stage panics on
// user-triggered error conditions.

package core

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "anembed: ..." for consistency and to
// allow easy grepping across logs. Wrap with fmt.Errorf("stage: %w", ErrX)
// at the call site — callers still match with errors.Is.

var (
	// ErrInputFormat indicates a malformed edge or feature file: wrong
	// column count, a non-integer node id, an unreadable record. Wrapping
	// must include the file path and offending line. Fatal; no partial
	// output is written.
	ErrInputFormat = errors.New("anembed: malformed input file")

	// ErrDimensionMismatch indicates that the feature row count cannot be
	// reconciled with the node count implied by the edge list, or that a
	// requested factor shape is infeasible (e.g. dimensions exceeding the
	// fused matrix width). Fatal.
	ErrDimensionMismatch = errors.New("anembed: dimension mismatch")

	// ErrNumericInstability indicates a NaN or ±Inf that survived the
	// lower-control clamp during optimization. The run aborts before
	// export — the output file never contains a non-finite value.
	ErrNumericInstability = errors.New("anembed: non-finite value in optimization state")

	// ErrConfiguration indicates an out-of-range hyperparameter (non-positive
	// dimensions, order, round counts, ...). Detected before any I/O.
	ErrConfiguration = errors.New("anembed: invalid configuration")
)
