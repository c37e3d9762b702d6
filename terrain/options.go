// SPDX-License-Identifier: MIT
// Package: rainfall/terrain
//
// options.go — functional options for the generators.
//
// Option constructors panic on meaningless values; generators themselves
// return errors and never panic.

package terrain

import "math/rand"

// Option customizes a generator by mutating its config.
type Option func(*config)

// WithRand provides an explicit RNG, overriding the seed argument.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("terrain: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed replaces the RNG with a fresh source seeded by seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxHeight sets the exclusive upper bound of uniform heights and the
// ridge amplitude. Panics if h <= 0.
func WithMaxHeight(h float64) Option {
	if h <= 0 {
		panic("terrain: WithMaxHeight(h<=0)")
	}
	return func(c *config) {
		c.maxHeight = h
	}
}

// WithFrequency sets the ridge frequency in cycles per column.
// Panics if f <= 0.
func WithFrequency(f float64) Option {
	if f <= 0 {
		panic("terrain: WithFrequency(f<=0)")
	}
	return func(c *config) {
		c.frequency = f
	}
}

// WithTrend adds k*i to ridge column i. Any value is accepted.
func WithTrend(k float64) Option {
	return func(c *config) {
		c.trend = k
	}
}

// WithNoise adds Gaussian noise with standard deviation sigma to ridges.
// Panics if sigma < 0.
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic("terrain: WithNoise(sigma<0)")
	}
	return func(c *config) {
		c.noiseSigma = sigma
	}
}
