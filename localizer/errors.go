package localizer

import (
	"errors"
	"fmt"
)

// ErrDomain is the parent of every numeric domain fault (degenerate grid,
// zero evidence). Match either the parent or the specific sentinel with errors.Is.
var ErrDomain = errors.New("localizer: domain error")

var (
	// ErrDegenerateGrid indicates a grid or belief with zero rows or zero columns.
	ErrDegenerateGrid = fmt.Errorf("%w: grid has zero area", ErrDomain)

	// ErrZeroEvidence indicates that the sensor update's normalizer is zero:
	// the observation is impossible under every cell that carries prior mass.
	ErrZeroEvidence = fmt.Errorf("%w: observation has zero total likelihood", ErrDomain)
)

var (
	// ErrShapeMismatch indicates a belief whose dimensions differ from the grid's.
	ErrShapeMismatch = errors.New("localizer: belief shape does not match grid")

	// ErrInvalidSensorModel indicates a negative, NaN or infinite sensor weight.
	ErrInvalidSensorModel = errors.New("localizer: sensor weights must be finite and non-negative")
)
