package smoothing

import "errors"

var (
	// ErrZeroMass indicates a distribution whose total is 0, which cannot
	// be rescaled to sum to 1.
	ErrZeroMass = errors.New("smoothing: distribution has zero total mass")

	// ErrInvalidBlurFactor indicates a blur factor outside [0,1] or NaN.
	ErrInvalidBlurFactor = errors.New("smoothing: blur factor must be within [0,1]")
)
