package world

import (
	"github.com/go-kit/kit/log"
)

// Option customizes a World at construction time.
type Option func(*config)

// config aggregates the knobs applied by New.
type config struct {
	logger log.Logger
}

// newConfig returns the defaults with opts applied in order.
func newConfig(opts ...Option) config {
	cfg := config{
		logger: log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger attaches a logger that receives one debug line per Drain.
// Panics on nil.
func WithLogger(l log.Logger) Option {
	if l == nil {
		panic("world: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
