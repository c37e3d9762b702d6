// SPDX-License-Identifier: MIT
// Package: rainfall/terrain
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • rng        = nil   (each generator seeds its own source from 'seed')
//   • maxHeight  = 200   (matches the classic 0..199 benchmark terrain)
//   • frequency  = 1/16  (ridge period of 16 columns)
//   • trend      = 0
//   • noiseSigma = 0

package terrain

import "math/rand"

const (
	defaultMaxHeight = 200.0
	defaultFrequency = 0.0625
	defaultTrend     = 0.0
	defaultNoise     = 0.0
)

// config aggregates all generator knobs. It is passed by value.
type config struct {
	rng        *rand.Rand
	maxHeight  float64 // > 0
	frequency  float64 // > 0, cycles per column
	trend      float64 // added per column index
	noiseSigma float64 // >= 0
}

// newConfig returns the defaults with opts applied in order; last wins.
func newConfig(opts ...Option) config {
	cfg := config{
		maxHeight:  defaultMaxHeight,
		frequency:  defaultFrequency,
		trend:      defaultTrend,
		noiseSigma: defaultNoise,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFrom returns cfg.rng when set (shared stream), else a local source
// seeded with seed.
func rngFrom(cfg config, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}
