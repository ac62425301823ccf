// SPDX-License-Identifier: MIT

// Package matrix provides the dense float grid that carries belief mass
// through the histogram filter, together with the element-wise kernels the
// filter is built from.
//
// The matrix package provides:
//
//   - Dense: row-major H×W storage with bounds-safe At/Set (errors, never panics).
//   - Kernels: Total, Scale, Hadamard, Axpy, Roll (toroidal shift), ArgMax, AllClose.
//   - Validators: nil, shape, non-negativity and stochastic (sum==1) checks.
//   - Options: per-instance numeric policy (NaN/Inf rejection) via functional options.
//
// Every kernel allocates a fresh *Dense for its result; inputs are never mutated.
// Kernels accept the Matrix interface and take a flat-slice fast path when the
// operand is a *Dense. Flat loops delegate to gonum.org/v1/gonum/floats.
//
// Complexity: all kernels are O(r*c) time and O(r*c) space for the result.
package matrix
