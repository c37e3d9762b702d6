// Package rainfall computes how much rain water a one-dimensional terrain
// profile retains after a storm.
//
// 🚀 What is in here?
//
//	Given column heights h₁…hₙ, water settles wherever a column is lower than
//	the tallest walls on both of its sides. The leak-and-drain method used
//	here floods the whole terrain to its tallest wall, then lets water escape
//	through the two open ends, one neighbouring pair at a time:
//
//	    before Drain        after Drain
//	    █ ~ ~ ~ █ ~         █ ~ ~ ~ █
//	    █ ~ █ ~ █ ~         █ ~ █ ~ █
//	    █ █ █ █ █ ~         █ █ █ █ █
//
// Subpackages:
//
//	column/   — one terrain position and its pairwise Resolve step
//	world/    — the column array, the two drain sweeps and the water total
//	oracle/   — reference prefix/suffix-maximum formulas
//	terrain/  — seeded terrain generators and text terrain readers
//	cmd/rainfall — benchmark driver with logging, verification and metrics
//
// Quick start:
//
//	water, err := world.Trap([]int{0, 1, 0, 2, 1, 0, 1, 3, 2, 1, 2, 1})
//	// water == 6
//
//	go install github.com/zibibbo-zibibbi/rainfall/cmd/rainfall@latest
package rainfall
