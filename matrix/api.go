// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing constructors on top of NewFilled and denseOf.
//   - Each facade delegates to the canonical implementation.

package matrix

// NewUniform returns an r×c matrix with every entry equal to 1/(r*c),
// i.e. the uniform probability mass function over the cells.
// Errors: ErrInvalidDimensions for a zero-area shape.
// Complexity: O(r*c).
func NewUniform(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return NewFilled(rows, cols, 1.0/float64(rows*cols), opts...)
}

// CloneDense returns an independent copy of m as a *Dense.
// Complexity: O(r*c).
func CloneDense(m Matrix) (*Dense, error) {
	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf("CloneDense", err)
	}

	return d.copyDense(), nil
}
