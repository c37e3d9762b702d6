// Package oracle holds reference implementations of the trapping-rain-water
// formula
//
//	water = Σᵢ max(0, min(maxLeftᵢ, maxRightᵢ) − hᵢ)
//
// where maxLeftᵢ and maxRightᵢ are the tallest walls strictly left and right
// of column i. Edge columns have no wall on one side and hold nothing.
//
// They are independent of package world and serve as ground truth for its
// tests and for the CLI's -verify flag.
package oracle
