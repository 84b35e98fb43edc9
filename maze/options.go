package maze

import "math/rand"

// Option configures the random source used by Random selectors and
// Route.TravelTimeRandom.
type Option func(*options)

// options holds the resolved randomness configuration.
type options struct {
	// rng is the explicit source; nil means the process-wide math/rand source.
	rng *rand.Rand
}

// WithRand uses r as the random source. Panics on nil.
// A *rand.Rand is not safe for concurrent use; share it across goroutines
// only with external locking.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("maze: WithRand(nil)")
	}

	return func(o *options) { o.rng = r }
}

// WithSeed uses a fresh deterministic source seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// resolveOptions applies opts in order; later options win.
func resolveOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// intn returns a uniform integer in [0, n). n must be positive.
func (o options) intn(n int) int {
	if o.rng == nil {
		return rand.Intn(n)
	}

	return o.rng.Intn(n)
}
