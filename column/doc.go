// Package column models the hydrological state of a single terrain position
// in a one-dimensional rainfall profile.
//
// A Column holds three values:
//
//	wall    — height of solid ground (fixed after construction)
//	water   — water currently believed to rest on top of the wall
//	settled — amount already known to have escaped past this column;
//	          zero means "not resolved yet", anything else means "final"
//
// Columns interact only pairwise. Resolve lowers a column's water to the
// surface imposed by one neighbour, recording how much drained away:
//
//	neighbour          receiver
//	  ~~~~~~~ surface
//	  |     |           ~~~~~~~   <- water dropped to the neighbour surface
//	  |     |           |     |
//
// The neighbour is always passed as a Level, a value snapshot of its wall and
// water, so a sweep reads each neighbour as it was before the current step.
//
// Complexity: every operation is O(1) time and memory.
package column
