package smoothing

import (
	"fmt"
	"math"

	"github.com/katalvlaran/histfilter/matrix"
)

// Normalize returns a copy of m scaled so that its entries sum to 1.
// Subnormal totals are divided directly; a total that overflows is first
// rescaled by the largest entry.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNaNInf, matrix.ErrNegativeValue from validation.
//   - ErrZeroMass when Σm is 0.
//
// Complexity: O(H·W).
func Normalize(m matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNonNegative(m); err != nil {
		return nil, fmt.Errorf("Normalize: %w", err)
	}
	d, err := matrix.CloneDense(m)
	if err != nil {
		return nil, fmt.Errorf("Normalize: %w", err)
	}
	total, err := matrix.Total(d)
	if err != nil {
		return nil, fmt.Errorf("Normalize: %w", err)
	}
	if total == 0 {
		return nil, fmt.Errorf("Normalize: %w", ErrZeroMass)
	}
	if math.IsInf(total, 1) {
		_, _, peak, _ := matrix.ArgMax(d)
		if err = d.Apply(func(_, _ int, v float64) float64 { return v / peak }); err != nil {
			return nil, fmt.Errorf("Normalize: %w", err)
		}
		if total, err = matrix.Total(d); err != nil {
			return nil, fmt.Errorf("Normalize: %w", err)
		}
	}

	inv := 1 / total
	if !math.IsInf(inv, 0) {
		return matrix.Scale(d, inv)
	}
	if err = d.Apply(func(_, _ int, v float64) float64 { return v / total }); err != nil {
		return nil, fmt.Errorf("Normalize: %w", err)
	}

	return d, nil
}

// Blur spreads the mass of m over neighboring cells (toroidal) with the
// kernel for factor f, then renormalizes.
//
// Algorithm:
//  1. out = Center·m
//  2. for each tap: out += Weight·Roll(m, tap.DY, tap.DX)
//  3. Normalize(out)
//
// Errors: ErrInvalidBlurFactor, ErrZeroMass, and matrix validation sentinels.
// Complexity: O(k·H·W).
func Blur(m matrix.Matrix, f float64, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	k, err := NewKernel(f, o.conn)
	if err != nil {
		return nil, fmt.Errorf("Blur: %w", err)
	}
	if err = matrix.ValidateNonNegative(m); err != nil {
		return nil, fmt.Errorf("Blur: %w", err)
	}

	out, err := matrix.Scale(m, k.Center)
	if err != nil {
		return nil, fmt.Errorf("Blur: %w", err)
	}
	var shifted *matrix.Dense
	for _, t := range k.Taps {
		if t.Weight == 0 {
			continue
		}
		if shifted, err = matrix.Roll(m, t.Offset.DY, t.Offset.DX); err != nil {
			return nil, fmt.Errorf("Blur: %w", err)
		}
		if out, err = matrix.Axpy(t.Weight, shifted, out); err != nil {
			return nil, fmt.Errorf("Blur: %w", err)
		}
	}

	return Normalize(out)
}
