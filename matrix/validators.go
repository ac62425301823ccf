// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/mass checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; none allocate beyond an interface fallback copy.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape → Values).

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed nil *Dense.
// Returns ErrNilMatrix on failure. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Returns wrapped ErrDimensionMismatch. Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateNonNegative ensures every entry of m is finite and ≥ 0.
//
// Errors: ErrNilMatrix, ErrNaNInf, ErrNegativeValue.
// Complexity: O(r*c).
// AI-Hints: a belief is a mass function; run this before treating m as one.
func ValidateNonNegative(m Matrix) error {
	d, err := denseOf(m)
	if err != nil {
		return validatorErrorf("ValidateNonNegative", err)
	}
	for _, v := range d.data {
		if isNonFinite(v) {
			return validatorErrorf("ValidateNonNegative", ErrNaNInf)
		}
	}
	if floats.Min(d.data) < 0 {
		return validatorErrorf("ValidateNonNegative", ErrNegativeValue)
	}

	return nil
}

// ValidateStochastic ensures m is a probability mass function: entries finite,
// non-negative, summing to 1 within eps (DefaultEpsilon unless WithEpsilon is given).
//
// Errors: ErrNilMatrix, ErrNaNInf, ErrNegativeValue, ErrNotStochastic.
// Complexity: O(r*c).
func ValidateStochastic(m Matrix, opts ...Option) error {
	if err := ValidateNonNegative(m); err != nil {
		return validatorErrorf("ValidateStochastic", err)
	}
	o := gatherOptions(opts...)
	total, err := Total(m)
	if err != nil {
		return validatorErrorf("ValidateStochastic", err)
	}
	if math.Abs(total-1) > o.eps {
		return validatorErrorf("ValidateStochastic", ErrNotStochastic)
	}

	return nil
}
