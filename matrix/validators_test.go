// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/histfilter/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	dense := func(r, c int) matrix.Matrix {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}
	var typedNil *matrix.Dense

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, dense(2, 2), matrix.ErrNilMatrix},
		{"typed nil", typedNil, dense(2, 2), matrix.ErrNilMatrix},
		{"second nil", dense(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", dense(2, 3), dense(2, 3), nil},
		{"row mismatch", dense(2, 3), dense(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", dense(2, 3), dense(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateStochastic covers the mass-function checks.
func TestValidateStochastic(t *testing.T) {
	t.Parallel()

	loose := func(src [][]float64) matrix.Matrix {
		m, err := matrix.NewDenseFrom(src, matrix.WithNoValidateNaNInf())
		require.NoError(t, err)
		return m
	}
	nan := func() float64 { z := 0.0; return z / z }()

	tests := []struct {
		name    string
		m       matrix.Matrix
		opts    []matrix.Option
		wantErr error
	}{
		{"uniform", loose([][]float64{{0.25, 0.25}, {0.25, 0.25}}), nil, nil},
		{"point mass", loose([][]float64{{0, 1}}), nil, nil},
		{"negative", loose([][]float64{{1.5, -0.5}}), nil, matrix.ErrNegativeValue},
		{"nan", loose([][]float64{{nan, 1}}), nil, matrix.ErrNaNInf},
		{"short", loose([][]float64{{0.5, 0.4}}), nil, matrix.ErrNotStochastic},
		{"short but tolerated", loose([][]float64{{0.5, 0.4}}), []matrix.Option{matrix.WithEpsilon(0.2)}, nil},
		{"nil", nil, nil, matrix.ErrNilMatrix},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateStochastic(tc.m, tc.opts...)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestWithEpsilonPanics ensures nonsensical tolerances are rejected at construction.
func TestWithEpsilonPanics(t *testing.T) {
	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
}
