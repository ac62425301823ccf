// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Kernels in ops_elementwise.go operate on the flat data slice directly.
//   - DefaultValidateNaNInf is on; insert only finite values unless you explicitly disable it.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxApply  = "Apply"  // method tag used in error wrappers
	ctxFrom   = "From"   // ctor tag for NewDenseFrom
	ctxFilled = "Filled" // ctor tag for NewFilled
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel is preserved for errors.Is.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set/Apply.
type Dense struct {
	r, c           int       // row and column counts
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: resolve options; allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - A zero-area belief is meaningless; callers surface ErrInvalidDimensions as
//     their own degenerate-grid error.
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewFilled creates an r×c matrix with every element set to v.
// Errors: ErrInvalidDimensions; ErrNaNInf when v is non-finite under the policy.
// Complexity: O(r*c).
func NewFilled(rows, cols int, v float64, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if m.validateNaNInf && isNonFinite(v) {
		return nil, denseErrorf(ctxFilled, 0, 0, ErrNaNInf)
	}
	for k := range m.data {
		m.data[k] = v
	}

	return m, nil
}

// NewDenseFrom deep-copies a rectangular [][]float64 into a new Dense.
// MAIN DESCRIPTION:
//   - Literal-friendly constructor used by tests, examples and config loaders.
//
// Errors:
//   - ErrInvalidDimensions when src has no rows or no columns.
//   - ErrNonRectangular when any row length differs from the first.
//   - ErrNaNInf (wrapped with coordinates) for non-finite values under the policy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(src [][]float64, opts ...Option) (*Dense, error) {
	if len(src) == 0 || len(src[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(src), len(src[0])
	for _, row := range src {
		if len(row) != c {
			return nil, ErrNonRectangular
		}
	}
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		base := i * c
		for j := 0; j < c; j++ {
			v := src[i][j]
			if m.validateNaNInf && isNonFinite(v) {
				return nil, denseErrorf(ctxFrom, i, j, ErrNaNInf)
			}
			m.data[base+j] = v
		}
	}

	return m, nil
}

// Generate builds an r×c matrix whose (i,j) element is f(i,j).
// The callback is invoked once per cell in row-major order.
// Errors: ErrInvalidDimensions; ErrNaNInf (wrapped) when f yields non-finite values under the policy.
// Complexity: O(r*c) calls of f.
func Generate(rows, cols int, f func(i, j int) float64, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if err = m.Apply(func(i, j int, _ float64) float64 { return f(i, j) }); err != nil {
		return nil, err
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// Errors: ErrOutOfRange for bounds; ErrNaNInf for non-finite values when the policy is on.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// The dynamic type of the result is *Dense.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.copyDense()
}

// copyDense is Clone with a concrete return type for internal kernels.
func (m *Dense) copyDense() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// Slices returns the contents as a freshly allocated [][]float64 (row-major).
// Mutating the result does not affect m.
// Complexity: O(r*c).
func (m *Dense) Slices() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// Flat returns a row-major copy of the elements (len == r*c).
// Complexity: O(r*c).
func (m *Dense) Flat() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// String renders the matrix as one bracketed row per line, e.g. "[0.25, 0.25]\n".
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
// Complexity: O(r*c).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// MAIN DESCRIPTION:
//   - In-place map with policy enforcement and deterministic order.
//
// Behavior highlights:
//   - Respects validateNaNInf (rejects NaN/±Inf when enabled).
//   - Early error aborts; elements written before the error remain updated.
//
// Errors:
//   - ErrNaNInf (wrapped with coordinates) when f produced a non-finite value.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// Notes:
//   - For all-or-nothing semantics, transform a clone and swap on success.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && isNonFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
