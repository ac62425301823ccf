package localizer

import (
	"math"

	"github.com/katalvlaran/histfilter/world"
)

// Defaults used by New when no Option overrides them.
const (
	// DefaultPHit weights cells whose color matches the reading.
	DefaultPHit = 3.0
	// DefaultPMiss weights cells whose color does not match the reading.
	DefaultPMiss = 1.0
	// DefaultBlur is the fraction of mass spread to neighbors on every move.
	DefaultBlur = 0.12
	// DefaultConnectivity is the blur neighborhood.
	DefaultConnectivity = world.Conn8
)

const (
	panicSensorInvalid = "localizer: WithSensorModel: weights must be finite and non-negative"
	panicBlurInvalid   = "localizer: WithBlur: factor must be within [0,1]"
	panicConnInvalid   = "localizer: WithConnectivity: unknown connectivity"
)

// Option configures a Localizer. Constructors panic on nonsensical values
// (programmer error); runtime data errors are returned by the operations.
type Option func(*Options)

// Options stores the effective Localizer configuration.
type Options struct {
	sensor SensorModel
	blur   float64
	conn   world.Connectivity
}

// WithSensorModel sets the hit/miss weights.
func WithSensorModel(pHit, pMiss float64) Option {
	s := SensorModel{PHit: pHit, PMiss: pMiss}
	if s.Validate() != nil {
		panic(panicSensorInvalid)
	}

	return func(o *Options) { o.sensor = s }
}

// WithBlur sets the motion blur factor.
func WithBlur(f float64) Option {
	if math.IsNaN(f) || f < 0 || f > 1 {
		panic(panicBlurInvalid)
	}

	return func(o *Options) { o.blur = f }
}

// WithConnectivity selects the blur neighborhood.
func WithConnectivity(conn world.Connectivity) Option {
	if conn != world.Conn4 && conn != world.Conn8 {
		panic(panicConnInvalid)
	}

	return func(o *Options) { o.conn = conn }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		sensor: SensorModel{PHit: DefaultPHit, PMiss: DefaultPMiss},
		blur:   DefaultBlur,
		conn:   DefaultConnectivity,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
