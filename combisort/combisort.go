// SPDX-License-Identifier: MIT
package combisort

// Threshold is the run length below which Sort falls back to insertion sort.
const Threshold = 8

// Sort orders data ascending by key and returns the sorted slice.
// Equal keys keep their relative input order.
// See the package documentation for ownership of the returned slice.
func Sort[T any](data []T, key func(T) int) []T {
	return SortFunc(data, func(a, b T) int {
		return compareInts(key(a), key(b))
	})
}

// SortFunc is Sort driven by a three-way comparator: cmp(a, b) < 0 when a
// orders before b, > 0 when after, 0 when equal.
func SortFunc[T any](data []T, cmp func(a, b T) int) []T {
	if len(data) < Threshold {
		insertionSortFunc(data, cmp)
		return data
	}
	mid := len(data) / 2
	left := SortFunc(data[:mid], cmp)
	right := SortFunc(data[mid:], cmp)

	return mergeFunc(left, right, cmp)
}

// InsertionSort sorts data in place by key using adjacent swaps,
// shifting while the left key is strictly greater than the right.
// Complexity: O(n²) time, O(1) memory.
func InsertionSort[T any](data []T, key func(T) int) {
	insertionSortFunc(data, func(a, b T) int {
		return compareInts(key(a), key(b))
	})
}

// Merge combines two ascending slices into a new ascending slice.
// On equal keys the element from left is taken first; once either side is
// exhausted the tail of the other is appended unchanged.
// Complexity: O(len(left)+len(right)).
func Merge[T any](left, right []T, key func(T) int) []T {
	return mergeFunc(left, right, func(a, b T) int {
		return compareInts(key(a), key(b))
	})
}

func insertionSortFunc[T any](data []T, cmp func(a, b T) int) {
	for mark := 1; mark < len(data); mark++ {
		for j := mark; j > 0 && cmp(data[j-1], data[j]) > 0; j-- {
			data[j], data[j-1] = data[j-1], data[j]
		}
	}
}

func mergeFunc[T any](left, right []T, cmp func(a, b T) int) []T {
	result := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if cmp(left[i], right[j]) <= 0 {
			result = append(result, left[i])
			i++
		} else {
			result = append(result, right[j])
			j++
		}
	}
	result = append(result, left[i:]...)
	result = append(result, right[j:]...)

	return result
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
