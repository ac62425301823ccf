package localizer

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/histfilter/matrix"
	"github.com/katalvlaran/histfilter/smoothing"
	"github.com/katalvlaran/histfilter/world"
)

// InitializeBeliefs returns the uniform prior over grid: every cell holds 1/(H·W).
//
// Errors:
//   - ErrDegenerateGrid when grid has zero area.
//
// Complexity: O(H·W).
func InitializeBeliefs(grid world.Grid) (*matrix.Dense, error) {
	if grid.Empty() {
		return nil, fmt.Errorf("InitializeBeliefs: %w", ErrDegenerateGrid)
	}

	return matrix.NewUniform(grid.Rows(), grid.Cols())
}

// Sense folds a color observation into beliefs (Bayes' rule):
//
//	unnorm[r][c] = beliefs[r][c] · (hit·pHit + (1−hit)·pMiss)
//	posterior    = unnorm / Σ unnorm
//
// Algorithm:
//  1. Validate grid, sensor weights, belief shape and non-negativity.
//  2. Build the likelihood from the grid's match mask (SensorModel.Likelihood).
//  3. Weight the prior element-wise (Hadamard).
//  4. Renormalize; a zero normalizer is reported as ErrZeroEvidence instead
//     of yielding NaN.
//
// Errors:
//   - ErrDegenerateGrid, ErrInvalidSensorModel, ErrShapeMismatch, ErrZeroEvidence.
//   - matrix.ErrNilMatrix, matrix.ErrNegativeValue, matrix.ErrNaNInf for malformed beliefs.
//
// Complexity: O(H·W). Neither grid nor beliefs is modified.
func Sense(color world.Color, grid world.Grid, beliefs matrix.Matrix, pHit, pMiss float64) (*matrix.Dense, error) {
	if grid.Empty() {
		return nil, fmt.Errorf("Sense: %w", ErrDegenerateGrid)
	}
	model := SensorModel{PHit: pHit, PMiss: pMiss}
	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("Sense: %w", err)
	}
	if err := validateBelief(grid, beliefs); err != nil {
		return nil, fmt.Errorf("Sense: %w", err)
	}

	likelihood, err := model.Likelihood(grid, color)
	if err != nil {
		return nil, fmt.Errorf("Sense: %w", err)
	}
	unnorm, err := matrix.Hadamard(beliefs, likelihood)
	if err != nil {
		return nil, fmt.Errorf("Sense: %w", err)
	}
	posterior, err := smoothing.Normalize(unnorm)
	if errors.Is(err, smoothing.ErrZeroMass) {
		return nil, fmt.Errorf("Sense(%q): %w", color, ErrZeroEvidence)
	}
	if err != nil {
		return nil, fmt.Errorf("Sense: %w", err)
	}

	return posterior, nil
}

// Move applies a motion command to beliefs: every cell's mass travels by
// (dy, dx) with wrap-around on both axes, then the result is blurred by
// blurring (see smoothing.Blur) to model positional uncertainty.
//
// Behavior highlights:
//   - dy/dx may have any sign or magnitude; they are reduced modulo (H, W).
//   - blurring == 0 gives a pure shift, so Move(H, 0, b, 0) reproduces b.
//   - opts tune the blur (e.g. smoothing.WithConnectivity).
//
// Errors:
//   - ErrDegenerateGrid for a nil or zero-area belief.
//   - smoothing.ErrInvalidBlurFactor, matrix.ErrNegativeValue, smoothing.ErrZeroMass.
//
// Complexity: O(k·H·W) for a k-tap kernel.
func Move(dy, dx int, beliefs matrix.Matrix, blurring float64, opts ...smoothing.Option) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(beliefs); err != nil {
		return nil, fmt.Errorf("Move: %w: %w", ErrDegenerateGrid, err)
	}
	if beliefs.Rows() <= 0 || beliefs.Cols() <= 0 {
		return nil, fmt.Errorf("Move: %w", ErrDegenerateGrid)
	}

	shifted, err := matrix.Roll(beliefs, dy, dx)
	if err != nil {
		return nil, fmt.Errorf("Move: %w", err)
	}
	blurred, err := smoothing.Blur(shifted, blurring, opts...)
	if err != nil {
		return nil, fmt.Errorf("Move(%d,%d): %w", dy, dx, err)
	}

	return blurred, nil
}

// validateBelief checks that beliefs is a non-negative H×W array matching grid.
func validateBelief(grid world.Grid, beliefs matrix.Matrix) error {
	if err := matrix.ValidateNotNil(beliefs); err != nil {
		return err
	}
	if beliefs.Rows() != grid.Rows() || beliefs.Cols() != grid.Cols() {
		return fmt.Errorf("belief %dx%d vs grid %dx%d: %w",
			beliefs.Rows(), beliefs.Cols(), grid.Rows(), grid.Cols(), ErrShapeMismatch)
	}

	return matrix.ValidateNonNegative(beliefs)
}
