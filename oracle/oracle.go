package oracle

import "github.com/zibibbo-zibibbi/rainfall/column"

// PrefixSuffix evaluates the formula with explicit prefix and suffix maxima.
// Both maxima include column i itself, which folds the max(0, ·) clamp into
// the subtraction.
// Complexity: O(n) time, O(n) memory. Empty input yields 0.
func PrefixSuffix[T column.Number](heights []T) T {
	var total T
	n := len(heights)
	if n == 0 {
		return total
	}

	leftMax := make([]T, n)
	rightMax := make([]T, n)
	leftMax[0] = heights[0]
	for i := 1; i < n; i++ {
		leftMax[i] = max(heights[i], leftMax[i-1])
	}
	rightMax[n-1] = heights[n-1]
	for i := n - 2; i >= 0; i-- {
		rightMax[i] = max(heights[i], rightMax[i+1])
	}

	for i, h := range heights {
		total += min(leftMax[i], rightMax[i]) - h
	}

	return total
}

// TwoPointer evaluates the formula walking inward from both ends, always
// advancing the lower side: its running maximum is the binding wall.
// Complexity: O(n) time, O(1) memory. Empty input yields 0.
func TwoPointer[T column.Number](heights []T) T {
	var total T
	if len(heights) == 0 {
		return total
	}

	l, r := 0, len(heights)-1
	leftMax, rightMax := heights[l], heights[r]
	for l < r {
		if heights[l] < heights[r] {
			leftMax = max(leftMax, heights[l])
			total += leftMax - heights[l]
			l++
		} else {
			rightMax = max(rightMax, heights[r])
			total += rightMax - heights[r]
			r--
		}
	}

	return total
}
