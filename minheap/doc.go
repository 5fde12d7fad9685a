// Package minheap provides an indexed, array-backed binary min-heap of
// graph vertices, keyed by a mutable int64 value (typically the vertex's
// current best distance from a source).
//
// Overview:
//
//   - The heap is a complete binary tree stored in a 0-indexed slice:
//     parent(i) = (i-1)/2, leftChild(i) = 2i+1, rightChild(i) = 2i+2.
//   - Every enqueued vertex's current slot is tracked in a position table,
//     so DecreaseKey addresses its entry directly — no scan, O(log n).
//   - Each slot additionally records whether its left/right child exists,
//     so sift-down navigates the implicit tree without re-deriving bounds
//     from the current size at every step.
//
// Ordering rules:
//
//   - Sift-up swaps only while the entry's value is strictly less than its
//     parent's value; equal values are never reordered.
//   - Sift-down with two children swaps with the smaller child, preferring
//     the right child when right ≤ left; with one child it swaps when the
//     current value is ≥ that child's value.
//
// Invariants:
//
//   - Min-heap order: every slot's value ≤ both children's values.
//   - Position coherence: PositionOf(v) equals v's slot for every enqueued
//     vertex v, and NotInHeap otherwise. Every swap maintains both sides.
//
// Contract violations (programming defects, not runtime conditions):
//
//   - Pop on an empty heap panics.
//   - Push of an out-of-range or already-enqueued vertex panics.
//   - DecreaseKey on an absent vertex, or with a value larger than the
//     entry's current value, panics.
//
// Complexity:
//
//   - Push / Pop / DecreaseKey: O(log n)
//   - IsEmpty / Size / Contains / PositionOf / ValueAt: O(1)
//
// The heap does not own graph vertices; it stores only their integer
// indices, so one heap serves exactly one graph's index space at a time.
package minheap
