// SPDX-License-Identifier: MIT
// Package: rainfall/terrain
//
// ridges.go — deterministic triangular ridge profile.
//
// Shape:
//   • base(i) = A · (1 − |2·frac(i·f0) − 1|), a triangle wave in [0, A]
//     whose peaks sit at frac = 0.5 and whose valleys trap water.
//   • + trend·i, a linear tilt that makes one side drain.
//   • + σ·N(0,1), Gaussian noise drawn from the seeded RNG.
//
// With defaults the profile is a noiseless saw of period 16 and amplitude 200.

package terrain

import (
	"fmt"
	"math"
)

// triangle constants, named to keep the wave formula readable.
const (
	triDouble = 2.0
	triCenter = 1.0
	unitOne   = 1.0
)

// Ridges returns n heights following a triangular ridge profile.
//
// Errors:
//   - ErrBadSize if n < 1.
//
// Complexity: O(n) time, O(n) memory.
func Ridges(n int, seed int64, opts ...Option) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: Ridges(n=%d)", ErrBadSize, n)
	}
	cfg := newConfig(opts...)
	rng := rngFrom(cfg, seed)

	out := make([]float64, n)
	var frac, y float64
	for i := range out {
		frac = math.Mod(float64(i)*cfg.frequency, unitOne)
		y = cfg.maxHeight * (unitOne - math.Abs(triDouble*frac-triCenter))

		y += cfg.trend * float64(i)

		// Only draw when enabled so the noiseless path does not consume the RNG.
		if cfg.noiseSigma > 0 {
			y += cfg.noiseSigma * rng.NormFloat64()
		}
		out[i] = y
	}

	return out, nil
}
