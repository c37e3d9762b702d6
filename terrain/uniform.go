// SPDX-License-Identifier: MIT
// Package: rainfall/terrain
//
// uniform.go — uniformly random terrains.
//
// These are the classic rainfall benchmark inputs:
// every column drawn independently from [0, maxHeight).

package terrain

import "fmt"

// UniformInts returns n integer heights drawn uniformly from
// [0, int(maxHeight)), at least [0, 1).
//
// Errors:
//   - ErrBadSize if n < 1.
//
// Complexity: O(n) time, O(n) memory.
func UniformInts(n int, seed int64, opts ...Option) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: UniformInts(n=%d)", ErrBadSize, n)
	}
	cfg := newConfig(opts...)
	rng := rngFrom(cfg, seed)
	bound := max(int(cfg.maxHeight), 1)

	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(bound)
	}

	return out, nil
}

// UniformFloats returns n real heights drawn uniformly from [0, maxHeight).
//
// Errors:
//   - ErrBadSize if n < 1.
//
// Complexity: O(n) time, O(n) memory.
func UniformFloats(n int, seed int64, opts ...Option) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: UniformFloats(n=%d)", ErrBadSize, n)
	}
	cfg := newConfig(opts...)
	rng := rngFrom(cfg, seed)

	out := make([]float64, n)
	for i := range out {
		out[i] = cfg.maxHeight * rng.Float64()
	}

	return out, nil
}
