// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the element-wise kernels the histogram filter is composed of:
//     Total, Scale, Hadamard, Axpy, Roll, ArgMax, AllClose.
//   - Keep all loops deterministic and cache-friendly over the flat row-major buffer.
//
// Design:
//   - Every kernel validates its operands first and allocates a fresh *Dense for output.
//   - Non-Dense operands are copied once through At (denseOf) and then share the fast path.
//   - Flat-slice arithmetic is delegated to gonum.org/v1/gonum/floats.
//
// AI-Hints:
//   - Prefer passing *Dense to avoid the fallback copy.
//   - Roll accumulates (+=) so that a non-bijective shift never loses mass.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Operation name constants for unified error wrapping.
const (
	opTotal    = "Total"
	opScale    = "Scale"
	opHadamard = "Hadamard"
	opAxpy     = "Axpy"
	opRoll     = "Roll"
	opArgMax   = "ArgMax"
	opAllClose = "AllClose"
	opDenseOf  = "denseOf"
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseOf returns m itself when it is a *Dense, or a Dense copy built via At.
// The returned value must be treated as read-only by callers.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func denseOf(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols(), WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opDenseOf, err)
	}
	var v float64
	for i := 0; i < out.r; i++ {
		base := i * out.c
		for j := 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opDenseOf, err)
			}
			out.data[base+j] = v
		}
	}

	return out, nil
}

// emptyLike allocates a zero Dense with the shape and numeric policy of d.
func emptyLike(d *Dense) *Dense {
	return &Dense{
		r:              d.r,
		c:              d.c,
		data:           make([]float64, len(d.data)),
		validateNaNInf: d.validateNaNInf,
	}
}

// checkFinite enforces the numeric policy of d over its whole buffer.
func checkFinite(tag string, d *Dense) error {
	if !d.validateNaNInf {
		return nil
	}
	for k, v := range d.data {
		if isNonFinite(v) {
			return denseErrorf(tag, k/d.c, k%d.c, ErrNaNInf)
		}
	}

	return nil
}

// WrapIndex maps any integer i onto [0, n) with toroidal semantics:
// WrapIndex(-1, 4) == 3, WrapIndex(9, 4) == 1. n must be > 0.
// Complexity: O(1).
func WrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}

	return i
}

// Total returns Σ m[i,j].
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Total(m Matrix) (float64, error) {
	d, err := denseOf(m)
	if err != nil {
		return 0, matrixErrorf(opTotal, err)
	}

	return floats.Sum(d.data), nil
}

// Scale returns alpha*m as a new Dense.
// Errors: ErrNilMatrix; ErrNaNInf when alpha or any product is non-finite under the policy.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if d.validateNaNInf && isNonFinite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	out := emptyLike(d)
	floats.ScaleTo(out.data, alpha, d.data)
	if err = checkFinite(opScale, out); err != nil {
		return nil, err
	}

	return out, nil
}

// Hadamard returns the element-wise product a ⊙ b as a new Dense.
// The result inherits the numeric policy of a.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(r*c).
func Hadamard(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	da, err := denseOf(a)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	out := emptyLike(da)
	floats.MulTo(out.data, da.data, db.data)
	if err = checkFinite(opHadamard, out); err != nil {
		return nil, err
	}

	return out, nil
}

// Axpy returns y + alpha*x as a new Dense (the BLAS "axpy" shape).
// The result inherits the numeric policy of y.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(r*c).
//
// AI-Hints:
//   - Chain Axpy calls to accumulate weighted sums without mutating any operand.
func Axpy(alpha float64, x, y Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(x, y); err != nil {
		return nil, matrixErrorf(opAxpy, err)
	}
	dx, err := denseOf(x)
	if err != nil {
		return nil, matrixErrorf(opAxpy, err)
	}
	dy, err := denseOf(y)
	if err != nil {
		return nil, matrixErrorf(opAxpy, err)
	}
	if dy.validateNaNInf && isNonFinite(alpha) {
		return nil, matrixErrorf(opAxpy, ErrNaNInf)
	}
	out := emptyLike(dy)
	floats.AddScaledTo(out.data, dy.data, alpha, dx.data)
	if err = checkFinite(opAxpy, out); err != nil {
		return nil, err
	}

	return out, nil
}

// Roll shifts every element of m by (dy, dx) on a torus:
//
//	out[(i+dy) mod r][(j+dx) mod c] += m[i][j]
//
// MAIN DESCRIPTION:
//   - Deterministic translation with wrap-around; dy/dx may have any sign or magnitude.
//
// Behavior highlights:
//   - Accumulates rather than assigns; for a pure translation this is a bijection
//     and the two are identical, but mass is conserved either way.
//   - Roll(m, r, 0) and Roll(m, 0, c) reproduce m exactly.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Roll(m Matrix, dy, dx int) (*Dense, error) {
	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opRoll, err)
	}
	out := emptyLike(d)
	r, c := d.r, d.c
	// Reduce once so the inner loop only needs a single conditional subtraction.
	sy, sx := WrapIndex(dy, r), WrapIndex(dx, c)
	var i, j, ni, nj int
	for i = 0; i < r; i++ {
		ni = i + sy
		if ni >= r {
			ni -= r
		}
		src, dst := i*c, ni*c
		for j = 0; j < c; j++ {
			nj = j + sx
			if nj >= c {
				nj -= c
			}
			out.data[dst+nj] += d.data[src+j]
		}
	}

	return out, nil
}

// ArgMax returns the coordinates and value of the largest element.
// Ties resolve to the first cell in row-major order.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func ArgMax(m Matrix) (row, col int, v float64, err error) {
	d, err := denseOf(m)
	if err != nil {
		return 0, 0, 0, matrixErrorf(opArgMax, err)
	}
	k := floats.MaxIdx(d.data) // first index on ties; len(data) > 0 by construction

	return k / d.c, k % d.c, d.data[k], nil
}

// AllClose reports whether a and b agree element-wise within atol or rtol
// (|a-b| ≤ atol, or relative difference ≤ rtol). Identical shapes required.
// Negative tolerances are normalized to their absolute values.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (non-finite tolerance).
// Complexity: O(r*c), early exit on the first violation.
//
// AI-Hints:
//   - AllClose with small atol is the invariance check of choice in unit tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	if rtol < 0 {
		rtol = -rtol
	}
	if atol < 0 {
		atol = -atol
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := denseOf(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for k := range da.data {
		if !scalar.EqualWithinAbsOrRel(da.data[k], db.data[k], atol, rtol) {
			return false, nil
		}
	}

	return true, nil
}
