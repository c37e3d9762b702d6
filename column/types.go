package column

import "golang.org/x/exp/constraints"

// Number is the numeric domain a terrain is expressed in: signed integers or
// floating point values. Unsigned types are excluded because the drain
// arithmetic subtracts heights that may cross zero.
type Number interface {
	constraints.Signed | constraints.Float
}

// Level is an immutable snapshot of a neighbour column: its ground height and
// the water resting on it. It never carries the settled marker.
type Level[T Number] struct {
	Wall  T // ground height
	Water T // water on top of Wall
}

// Surface returns the absolute height of the water surface, Wall+Water.
// Complexity: O(1).
func (l Level[T]) Surface() T {
	return l.Wall + l.Water
}

// Column is one terrain position. The zero value is a column of height zero
// with no water that has not been resolved yet.
type Column[T Number] struct {
	wall    T
	water   T
	settled T
}
