package world_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zibibbo-zibibbi/rainfall/oracle"
	"github.com/zibibbo-zibibbi/rainfall/terrain"
	"github.com/zibibbo-zibibbi/rainfall/world"
)

// TestDrain_MatchesOracleInts compares Drain with the prefix/suffix formula on
// seeded random terrains, including narrow height ranges that produce many
// repeated peaks and plateaus.
func TestDrain_MatchesOracleInts(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 2000; trial++ {
		n := 1 + rng.Intn(40)
		span := 1 + rng.Intn(8)
		offset := rng.Intn(2*span+1) - span // shift some terrains below zero
		heights := make([]int, n)
		for i := range heights {
			heights[i] = rng.Intn(span+1) + offset
		}

		w, err := world.New(heights)
		require.NoError(t, err)
		w.Drain()

		want := oracle.PrefixSuffix(heights)
		require.Equal(t, want, w.Water(), "terrain %v", heights)
		require.GreaterOrEqual(t, w.Water(), 0, "terrain %v", heights)

		// Drain a second time: the total must not move.
		w.Drain()
		require.Equal(t, want, w.Water(), "second drain of %v", heights)
	}
}

// TestDrain_MatchesOracleFloats does the same over float64 terrains produced
// by the terrain generators.
func TestDrain_MatchesOracleFloats(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		uniform, err := terrain.UniformFloats(64, seed, terrain.WithMaxHeight(50))
		require.NoError(t, err)
		ridges, err := terrain.Ridges(64, seed, terrain.WithNoise(0.3), terrain.WithTrend(-0.05))
		require.NoError(t, err)

		for _, heights := range [][]float64{uniform, ridges} {
			got, err := world.Trap(heights)
			require.NoError(t, err)
			assert.InDelta(t, oracle.PrefixSuffix(heights), got, 1e-6, "seed %d", seed)
			assert.GreaterOrEqual(t, got, -1e-9, "seed %d", seed)
		}
	}
}

// TestDrain_ProfileMatchesOracle checks per-column water, not just the sum.
func TestDrain_ProfileMatchesOracle(t *testing.T) {
	heights, err := terrain.UniformInts(500, 11, terrain.WithMaxHeight(20))
	require.NoError(t, err)

	w, err := world.New(heights)
	require.NoError(t, err)
	w.Drain()

	profile := w.Profile()
	for i := range heights {
		// Water on a single column equals the oracle applied to the
		// terrain with that column's neighbours collapsed to their maxima.
		left, right := heights[i], heights[i]
		for _, h := range heights[:i] {
			left = max(left, h)
		}
		for _, h := range heights[i+1:] {
			right = max(right, h)
		}
		assert.Equal(t, min(left, right)-heights[i], profile[i], "column %d", i)
	}
}
