package simulate

import "errors"

var (
	// ErrInvalidConfig is returned when a scenario fails validation.
	ErrInvalidConfig = errors.New("simulate: invalid config")
)
