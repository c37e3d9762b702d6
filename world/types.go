package world

import (
	"github.com/go-kit/kit/log"

	"github.com/zibibbo-zibibbi/rainfall/column"
)

// World is a terrain profile being drained.
//
// columns holds count+2 entries: index 0 and count+1 are sentinels, 1..count
// are the input heights in order. total is the water accumulator; it starts
// as the provisional upper bound and is only final once Drain has run.
//
// A World is owned by a single caller and is not safe for concurrent use.
type World[T column.Number] struct {
	columns []column.Column[T]
	total   T
	height  T // tallest input wall
	floor   T // sentinel wall, min(0, lowest input wall)

	drained   bool
	leftStop  int // index where sweep A stopped, -1 before Drain
	rightStop int // index where sweep B stopped, -1 before Drain

	logger log.Logger
}
