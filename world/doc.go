// Package world computes the volume of rain water retained by a
// one-dimensional terrain profile using the leak-and-drain method.
//
// 🚀 How it works
//
//	A World is a row of columns bracketed by two sentinels that stand for the
//	open ends of the terrain:
//
//	    S | h₁ h₂ … hₙ | S
//
//	Construction floods every column up to the tallest wall in the terrain
//	(the world height) and sums that water into a provisional total. Drain
//	then runs two sweeps, one inward from each sentinel. Each step resolves a
//	column against the snapshot of the neighbour it just processed: the water
//	above that neighbour's surface escapes and is subtracted from the total.
//	A sweep stops at the first column from which nothing escapes, which is
//	the first occurrence of the world height seen from that side.
//
// ✨ Properties:
//   - Total retained water equals Σ max(0, min(maxLeftᵢ, maxRightᵢ) − hᵢ).
//   - Exactly two sweeps, no fixpoint iteration.
//   - Generic over signed integers and floats.
//   - Drain is idempotent.
//
// ⚙️ Usage:
//
//	w, err := world.New([]int{0, 1, 0, 2, 1, 0, 1, 3, 2, 1, 2, 1})
//	if err != nil {
//	  // errors.Is(err, world.ErrInvalidArgument)
//	}
//	w.Drain()
//	fmt.Println(w.Water()) // 6
//
// Performance:
//
//   - Time:   O(n) construction, O(n) drain
//   - Memory: one contiguous slice of n+2 columns
package world
