// SPDX-License-Identifier: MIT

// Package combisort implements a hybrid "combination" sort: insertion sort
// for short runs, top-down merge sort for everything else.
//
// What:
//
//   - Sort orders a slice ascending by an integer key.
//   - Runs shorter than Threshold (8) are insertion-sorted in place.
//   - Longer runs are split at n/2, each half is sorted by the same hybrid
//     procedure, and the halves are merged into a freshly allocated slice.
//   - The threshold is re-checked at every level of the recursion, so the
//     leaves of a merge sort are always insertion sorts.
//
// Stability:
//
//   - Insertion sort only swaps while the left key is strictly greater.
//   - Merge takes from the left half on equal keys.
//   - Together these keep equal-keyed elements in their input order.
//
// Complexity:
//
//   - Time:   O(n log n) worst case; O(n) for n < Threshold already in order.
//   - Memory: O(n log n) total allocation across merge levels, O(log n) stack.
//
// Ownership:
//
//   - For len(data) < Threshold the input slice itself is sorted and returned.
//   - Otherwise the input is left in a partially sorted state (its halves are
//     sorted in place at the leaves) and a new slice is returned. Callers must
//     always use the returned slice.
package combisort
