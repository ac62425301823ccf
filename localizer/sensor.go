package localizer

import (
	"fmt"
	"math"

	"github.com/katalvlaran/histfilter/matrix"
	"github.com/katalvlaran/histfilter/world"
)

// SensorModel holds the relative measurement weights of a color sensor.
// PHit weights cells whose color matches the reading, PMiss the others.
// They need not sum to 1; only their ratio matters after normalization.
type SensorModel struct {
	PHit  float64
	PMiss float64
}

// Validate returns ErrInvalidSensorModel unless both weights are finite and ≥ 0.
// Both weights being 0 is valid here; Sense reports it as ErrZeroEvidence.
func (s SensorModel) Validate() error {
	for _, p := range [...]float64{s.PHit, s.PMiss} {
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return fmt.Errorf("SensorModel{%v,%v}: %w", s.PHit, s.PMiss, ErrInvalidSensorModel)
		}
	}

	return nil
}

// Likelihood returns the per-cell measurement weight for reading color on grid:
//
//	L[r][c] = hit·PHit + (1−hit)·PMiss,  hit = grid[r][c] == color
//
// Complexity: O(H·W).
func (s SensorModel) Likelihood(grid world.Grid, color world.Color) (*matrix.Dense, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	mask, err := grid.MatchMask(color)
	if err != nil {
		return nil, fmt.Errorf("Likelihood: %w", ErrDegenerateGrid)
	}
	// Select rather than blend so PHit and PMiss come through bit-exact.
	err = mask.Apply(func(_, _ int, hit float64) float64 {
		if hit == 1 {
			return s.PHit
		}
		return s.PMiss
	})
	if err != nil {
		return nil, fmt.Errorf("Likelihood: %w", err)
	}

	return mask, nil
}
