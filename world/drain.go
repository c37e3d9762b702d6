package world

import (
	"github.com/go-kit/kit/log/level"

	"github.com/zibibbo-zibibbi/rainfall/column"
)

// Drain runs the two sweeps that let water escape through the open ends.
//
// Sweep A walks x = 0..width−2 and resolves columns[x+1] against the
// snapshot of columns[x]; sweep B walks x = width−2..0 and resolves
// columns[x] against columns[x+1]. Each sweep stops at the first column from
// which nothing escapes; every successful step subtracts that column's
// settled amount from the total.
//
// Drain never fails. Calling it again leaves Water unchanged, since every
// column it would visit first is already settled or has nothing to lose.
//
// Complexity: O(n) time, O(1) extra memory.
func (w *World[T]) Drain() {
	width := len(w.columns)

	w.leftStop = width - 1
	for x := 0; x < width-1; x++ {
		if !w.columns[x+1].Resolve(w.columns[x].Snapshot()) {
			w.leftStop = x + 1
			break
		}
		w.total -= w.columns[x+1].Settled()
	}

	w.rightStop = 0
	for x := width - 2; x >= 0; x-- {
		if !w.columns[x].Resolve(w.columns[x+1].Snapshot()) {
			w.rightStop = x
			break
		}
		w.total -= w.columns[x].Settled()
	}

	w.drained = true
	level.Debug(w.logger).Log(
		"msg", "terrain drained",
		"columns", w.Len(),
		"left_stop", w.leftStop,
		"right_stop", w.rightStop,
		"water", w.total,
	)
}

// Water returns the accumulated total. Before Drain this is the provisional
// upper bound set by New, not the retained volume; see Drained.
func (w *World[T]) Water() T {
	return w.total
}

// Drained reports whether Drain has run at least once.
func (w *World[T]) Drained() bool {
	return w.drained
}

// Stops returns the column indices (sentinels included, so terrain column i
// is index i+1) at which sweep A and sweep B stopped. Both are -1 before
// Drain.
func (w *World[T]) Stops() (left, right int) {
	return w.leftStop, w.rightStop
}

// Profile returns the water resting on each terrain column, left to right.
// The slice is freshly allocated.
func (w *World[T]) Profile() []T {
	out := make([]T, w.Len())
	for i := range out {
		out[i] = w.columns[i+1].Water()
	}

	return out
}

// Trap builds a World from heights, drains it and returns the retained water.
//
// Errors:
//   - ErrInvalidArgument, as for New.
func Trap[T column.Number](heights []T, opts ...Option) (T, error) {
	w, err := New(heights, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	w.Drain()

	return w.Water(), nil
}
