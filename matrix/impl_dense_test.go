// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/histfilter/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows(), Cols() and Shape() report the constructed size.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))
	require.Equal(t, 7.89, MustAt(t, m, 1, 2))
}

// TestSetNaNInfPolicy checks the per-instance numeric policy.
func TestSetNaNInfPolicy(t *testing.T) {
	strict, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	loose, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(-1)))

	// Clone keeps the policy.
	cl := loose.Clone()
	require.NoError(t, cl.Set(0, 0, math.NaN()))

	// Later options win.
	restored, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, restored.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

// TestNewDenseFrom covers literal construction and its error cases.
func TestNewDenseFrom(t *testing.T) {
	m := MustDenseFrom(t, [][]float64{{1, 2}, {3, 4}})
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.Slices())

	cases := []struct {
		name string
		src  [][]float64
		err  error
	}{
		{"NoRows", [][]float64{}, matrix.ErrInvalidDimensions},
		{"NoCols", [][]float64{{}}, matrix.ErrInvalidDimensions},
		{"Ragged", [][]float64{{1, 2}, {3}}, matrix.ErrNonRectangular},
		{"NaN", [][]float64{{1, math.NaN()}}, matrix.ErrNaNInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewDenseFrom(tc.src)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNewDenseFrom_DeepCopy verifies that mutating the source does not leak into the Dense.
func TestNewDenseFrom_DeepCopy(t *testing.T) {
	src := [][]float64{{1, 2}}
	m := MustDenseFrom(t, src)
	src[0][0] = 99
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	out := m.Slices()
	out[0][1] = 42
	require.Equal(t, 2.0, MustAt(t, m, 0, 1))

	flat := m.Flat()
	require.Equal(t, []float64{1, 2}, flat)
	flat[0] = 7
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

// TestNewFilledAndGenerate checks the fill and generator constructors.
func TestNewFilledAndGenerate(t *testing.T) {
	f, err := matrix.NewFilled(2, 2, 0.5)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0.5, 0.5}, {0.5, 0.5}}, f.Slices())

	_, err = matrix.NewFilled(2, 2, math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	g, err := matrix.Generate(2, 3, func(i, j int) float64 { return float64(10*i + j) })
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1, 2}, {10, 11, 12}}, g.Slices())

	_, err = matrix.Generate(1, 1, func(int, int) float64 { return math.Inf(1) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestCloneIndependence verifies Clone returns an independent *Dense.
func TestCloneIndependence(t *testing.T) {
	m := MustDenseFrom(t, [][]float64{{1, 2}})
	cl := m.Clone()
	require.IsType(t, &matrix.Dense{}, cl)
	require.NoError(t, cl.Set(0, 0, 5))
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

// TestDoAndApply checks visitor order, early stop and in-place mapping.
func TestDoAndApply(t *testing.T) {
	m := MustDenseFrom(t, [][]float64{{1, 2}, {3, 4}})

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return v < 3
	})
	assert.Equal(t, []float64{1, 2, 3}, seen)

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * 2 }))
	assert.Equal(t, [][]float64{{2, 4}, {6, 8}}, m.Slices())

	err := m.Apply(func(i, j int, v float64) float64 { return v * math.Inf(1) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestString checks the bracketed row rendering.
func TestString(t *testing.T) {
	m := MustDenseFrom(t, [][]float64{{0.25, 0.5}, {1, 0}})
	require.Equal(t, "[0.25, 0.5]\n[1, 0]\n", m.String())
}
