package simulate

import "go.uber.org/zap"

// Option configures a Simulation.
type Option func(*Options)

// Options stores the effective Simulation configuration.
type Options struct {
	logger *zap.Logger
}

// WithLogger routes step and run events to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("simulate: WithLogger: nil logger")
	}

	return func(o *Options) { o.logger = l }
}

func gatherOptions(opts ...Option) Options {
	o := Options{logger: zap.NewNop()}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
