// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Kernels return these sentinels (optionally wrapped with an operation tag via
// %w); tests and callers match them with errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNonRectangular indicates a [][]float64 source whose rows differ in length.
	ErrNonRectangular = errors.New("matrix: all rows must have the same length")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeValue signals a negative entry where a mass distribution is required.
	ErrNegativeValue = errors.New("matrix: negative value encountered")

	// ErrNotStochastic signals that entries do not sum to 1 within tolerance.
	ErrNotStochastic = errors.New("matrix: entries do not sum to 1")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
