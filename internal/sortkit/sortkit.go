// Package sortkit provides the three classic quadratic in-place sorts.
//
// All three sort ascending, mutate the slice they are given, and return that
// same slice so calls can be chained. For identical input they produce
// identical output: a non-decreasing permutation of the original elements.
package sortkit

// Bubble sorts values in place using repeated adjacent-pair swaps.
// A pass with zero swaps ends the sort early, so already-sorted input
// costs a single pass.
func Bubble(values []int) []int {
	n := len(values)
	for i := 0; i < n; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if values[j] > values[j+1] {
				values[j], values[j+1] = values[j+1], values[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return values
}

// Selection sorts values in place by repeatedly swapping the minimum of the
// unsorted suffix into position. Always performs the full O(n^2) comparison
// sweep regardless of input order.
func Selection(values []int) []int {
	n := len(values)
	for i := 0; i < n; i++ {
		minIndex := i
		for j := i + 1; j < n; j++ {
			if values[j] < values[minIndex] {
				minIndex = j
			}
		}
		values[i], values[minIndex] = values[minIndex], values[i]
	}
	return values
}

// Insertion sorts values in place by shifting each out-of-place element
// leftward into its sorted position. Linear on already-ascending input.
func Insertion(values []int) []int {
	for i := 1; i < len(values); i++ {
		key := values[i]
		j := i - 1
		for j >= 0 && values[j] > key {
			values[j+1] = values[j]
			j--
		}
		values[j+1] = key
	}
	return values
}
