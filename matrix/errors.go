// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All kernels MUST return these sentinels and tests
// MUST check them via errors.Is. No kernel panics on user-triggered
// error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to
// allow easy grepping across logs. Do not %w-wrap these sentinels when
// returning directly; if context is essential, wrap at the facade with
// fmt.Errorf("op: %w", ErrX) — callers still match via errors.Is.
var (
	// ErrBadShape is returned when a requested shape is invalid
	// (rows <= 0, cols <= 0, or an empty row set in FromRows).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside
	// valid bounds. Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: Add with different shapes, Mul with a.Cols != b.Rows,
	// vector length not matching the expected size, ragged input rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument)
	// or a nil vector was passed into a kernel.
	ErrNilMatrix = errors.New("matrix: nil matrix or vector")

	// ErrAsymmetry signals that a matrix expected to be symmetric
	// violated symmetry within the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value where a finite value is
	// required (e.g. a symmetry tolerance).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
