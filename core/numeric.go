// SPDX-License-Identifier: MIT
// Package core: numeric-safety guards.
//
// Purpose:
//   - Provide a single, canonical home for the lower-control clamp used
//     at every division, logarithm and matrix-inverse site in the module.
//   - Keep the engines minimal by delegating finiteness checks here.
//
// Determinism & Performance:
//   - All guards are pure and allocate nothing.
//   - EnsureFinite runs O(r·c) over the raw backing slice.

package core

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Floor lifts x to at least floor. Used where a value feeds a division,
// logarithm or inverse and must stay strictly positive (proximity rows,
// continuous-engine factors, ridge diagonals).
//
// Complexity: O(1).
func Floor(x, floor float64) float64 {
	if x < floor {
		return floor
	}

	return x
}

// FloorInPlace applies Floor to every entry of m.
//
// Complexity: O(r·c).
func FloorInPlace(m *mat.Dense, floor float64) {
	raw := m.RawMatrix()
	for i := 0; i < raw.Rows; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
		for j, v := range row {
			if v < floor {
				row[j] = floor
			}
		}
	}
}

// Stabilize pushes a near-zero x away from zero, preserving sign; an
// exact zero becomes +floor. Use for values that later appear as a
// divisor or logarithm argument but may legitimately be negative.
//
// Complexity: O(1).
func Stabilize(x, floor float64) float64 {
	if math.Abs(x) >= floor {
		return x
	}
	if x < 0 {
		return -floor
	}

	return floor
}

// StabilizeInPlace applies Stabilize to every entry of m.
//
// Complexity: O(r·c).
func StabilizeInPlace(m *mat.Dense, floor float64) {
	raw := m.RawMatrix()
	for i := 0; i < raw.Rows; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
		for j, v := range row {
			row[j] = Stabilize(v, floor)
		}
	}
}

// EnsureFinite scans m and returns ErrNumericInstability (tagged with op
// and the offending position) if any entry is NaN or ±Inf. The engines
// call it after every factor update: a non-finite value that survived
// the clamp floor is fatal, never exported.
//
// Complexity: O(r·c).
func EnsureFinite(m *mat.Dense, op string) error {
	raw := m.RawMatrix()
	for i := 0; i < raw.Rows; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%s: entry (%d,%d) is %v: %w", op, i, j, v, ErrNumericInstability)
			}
		}
	}

	return nil
}
