package localizer

import (
	"fmt"

	"github.com/katalvlaran/histfilter/matrix"
	"github.com/katalvlaran/histfilter/smoothing"
	"github.com/katalvlaran/histfilter/world"
)

// Localizer binds a grid to a fixed noise model. It is an immutable value:
// methods take the current belief and return the next one.
type Localizer struct {
	grid   world.Grid
	sensor SensorModel
	blur   float64
	conn   world.Connectivity
}

// New returns a Localizer over grid. Returns ErrDegenerateGrid for a zero-area grid.
func New(grid world.Grid, opts ...Option) (Localizer, error) {
	if grid.Empty() {
		return Localizer{}, fmt.Errorf("New: %w", ErrDegenerateGrid)
	}
	o := gatherOptions(opts...)

	return Localizer{grid: grid, sensor: o.sensor, blur: o.blur, conn: o.conn}, nil
}

// Grid returns the map the localizer was built with.
func (l Localizer) Grid() world.Grid { return l.grid }

// SensorModel returns the configured hit/miss weights.
func (l Localizer) SensorModel() SensorModel { return l.sensor }

// Blur returns the configured motion blur factor.
func (l Localizer) Blur() float64 { return l.blur }

// Initial returns the uniform prior over the grid.
func (l Localizer) Initial() (*matrix.Dense, error) {
	return InitializeBeliefs(l.grid)
}

// Sense returns the posterior after reading color.
func (l Localizer) Sense(beliefs matrix.Matrix, color world.Color) (*matrix.Dense, error) {
	return Sense(color, l.grid, beliefs, l.sensor.PHit, l.sensor.PMiss)
}

// Move returns the belief after commanding a (dy, dx) move.
func (l Localizer) Move(beliefs matrix.Matrix, dy, dx int) (*matrix.Dense, error) {
	if err := validateBelief(l.grid, beliefs); err != nil {
		return nil, fmt.Errorf("Move: %w", err)
	}

	return Move(dy, dx, beliefs, l.blur, smoothing.WithConnectivity(l.conn))
}
