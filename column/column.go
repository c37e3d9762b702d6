package column

// New returns an unresolved column with the given ground height and initial
// water amount.
func New[T Number](wall, water T) Column[T] {
	return Column[T]{wall: wall, water: water}
}

// Sentinel returns an already-resolved, waterless column standing at floor.
// Sentinels model the open ends of a terrain: their surface is the lowest
// level water can drain to, and a non-zero settled marks them as final.
func Sentinel[T Number](floor, settled T) Column[T] {
	return Column[T]{wall: floor, settled: settled}
}

// Wall returns the ground height.
func (c Column[T]) Wall() T { return c.wall }

// Water returns the water currently resting on the column.
func (c Column[T]) Water() T { return c.water }

// Settled returns the amount recorded as escaped when the column resolved.
func (c Column[T]) Settled() T { return c.settled }

// IsSettled reports whether the column has been resolved.
func (c Column[T]) IsSettled() bool { return c.settled != 0 }

// Snapshot captures the column's wall and water by value.
func (c Column[T]) Snapshot() Level[T] {
	return Level[T]{Wall: c.wall, Water: c.water}
}

// Resolve drops the column's water to the surface imposed by neighbour n.
//
// Steps:
//  1. If the column is already settled, return false without mutation.
//  2. newWater = max(n.Surface() − wall, 0).
//  3. settled = water − newWater; water = newWater.
//  4. Return settled > 0.
//
// When nothing escaped (settled == 0) the column already sat at the
// neighbour's surface; it stays unsettled and may be resolved again later.
//
// Only the receiver is mutated; n is a copy.
// Complexity: O(1).
func (c *Column[T]) Resolve(n Level[T]) bool {
	if c.settled != 0 {
		return false
	}

	var newWater T
	if surface := n.Surface(); surface > c.wall {
		newWater = surface - c.wall
	}

	c.settled = c.water - newWater
	c.water = newWater

	return c.settled > 0
}
