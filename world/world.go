package world

import (
	"fmt"

	"github.com/zibibbo-zibibbi/rainfall/column"
)

// New builds a World from heights, listed left to right.
//
// Construction:
//  1. height = max(heights); floor = min(0, min(heights)).
//  2. Allocate len(heights)+2 columns in one slice.
//  3. Place sentinels (wall=floor, water=0, settled=height−floor) at both ends.
//  4. Seed column i with water = height − hᵢ and add it to the total.
//
// The resulting total is an upper bound: every column dammed to the world
// height. Call Drain before reading Water.
//
// Errors:
//   - ErrInvalidArgument if heights is empty or holds NaN/±Inf.
//
// Complexity: O(n) time, O(n) memory.
func New[T column.Number](heights []T, opts ...Option) (*World[T], error) {
	if len(heights) == 0 {
		return nil, fmt.Errorf("%w: terrain must contain at least one column", ErrInvalidArgument)
	}

	height, lowest := heights[0], heights[0]
	for i, h := range heights {
		if !finite(h) {
			return nil, fmt.Errorf("%w: height %v at column %d is not finite", ErrInvalidArgument, h, i)
		}
		height = max(height, h)
		lowest = min(lowest, h)
	}
	var floor T
	floor = min(floor, lowest)

	cfg := newConfig(opts...)
	w := &World[T]{
		columns:   make([]column.Column[T], len(heights)+2),
		height:    height,
		floor:     floor,
		leftStop:  -1,
		rightStop: -1,
		logger:    cfg.logger,
	}

	last := len(w.columns) - 1
	w.columns[0] = column.Sentinel(floor, height-floor)
	for i, h := range heights {
		water := height - h
		w.total += water
		w.columns[i+1] = column.New(h, water)
	}
	w.columns[last] = column.Sentinel(floor, height-floor)

	return w, nil
}

// finite reports whether v is neither NaN nor infinite. Integers always are.
func finite[T column.Number](v T) bool {
	return v-v == 0
}

// Len returns the number of terrain columns, excluding sentinels.
func (w *World[T]) Len() int {
	return len(w.columns) - 2
}

// Height returns the tallest wall in the terrain.
func (w *World[T]) Height() T {
	return w.height
}

// Floor returns the level of the open ends: zero, or the lowest wall when
// the terrain dips below zero.
func (w *World[T]) Floor() T {
	return w.floor
}

// Column returns a copy of terrain column i (0-based, sentinels excluded).
// Panics if i is out of range, like slice indexing.
func (w *World[T]) Column(i int) column.Column[T] {
	return w.columns[i+1]
}
