package smoothing

import "github.com/katalvlaran/histfilter/world"

// DefaultConnectivity is the neighborhood used by Blur when no option is given.
const DefaultConnectivity = world.Conn8

const panicConnectivityInvalid = "smoothing: WithConnectivity: unknown connectivity"

// Option configures Blur.
type Option func(*Options)

// Options holds the resolved Blur configuration.
type Options struct {
	conn world.Connectivity
}

// WithConnectivity selects the kernel neighborhood. Panics on values other
// than world.Conn4 and world.Conn8.
func WithConnectivity(conn world.Connectivity) Option {
	if conn != world.Conn4 && conn != world.Conn8 {
		panic(panicConnectivityInvalid)
	}

	return func(o *Options) { o.conn = conn }
}

func gatherOptions(opts ...Option) Options {
	o := Options{conn: DefaultConnectivity}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
