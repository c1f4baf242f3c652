// SPDX-License-Identifier: MIT
// Package dataset: sentinel errors. Every sentinel wraps one of the
// core taxonomy members, so callers may match either the precise
// condition or the coarse class via errors.Is.

package dataset

import (
	"fmt"

	"github.com/katalvlaran/anembed/core"
)

var (
	// ErrNoNodes — the edge list or feature file yields an empty node set.
	ErrNoNodes = fmt.Errorf("dataset: empty node set: %w", core.ErrInputFormat)

	// ErrNodeRange — an edge endpoint falls outside the contiguous id range.
	ErrNodeRange = fmt.Errorf("dataset: node id out of range: %w", core.ErrInputFormat)

	// ErrNoFeatures — the feature file defines zero feature columns.
	ErrNoFeatures = fmt.Errorf("dataset: no feature columns: %w", core.ErrInputFormat)

	// ErrIDOrder — a dense feature file whose id column is not the
	// ascending contiguous sequence 0,1,2,...
	ErrIDOrder = fmt.Errorf("dataset: id column not contiguous ascending: %w", core.ErrInputFormat)
)

// inputErr tags a malformed-record failure with file path and 1-based
// line number, wrapping core.ErrInputFormat. cause may be nil.
func inputErr(path string, line int, msg string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%s:%d: %s (%v): %w", path, line, msg, cause, core.ErrInputFormat)
	}

	return fmt.Errorf("%s:%d: %s: %w", path, line, msg, core.ErrInputFormat)
}
