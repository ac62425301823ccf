// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/histfilter/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels through their At-based fallback copy.
type hide struct{ matrix.Matrix }

// MustDenseFrom builds a *Dense from a literal or fails the test.
func MustDenseFrom(tb testing.TB, src [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(src)
	require.NoError(tb, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}
