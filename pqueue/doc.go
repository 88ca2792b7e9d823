// SPDX-License-Identifier: MIT

// Package pqueue provides a generic binary-heap priority queue with a
// pluggable ordering.
//
// Overview:
//
//   - Heap[T] keeps a multiset of values and always yields the "best" one
//     first, where "best" is defined by a comparator fixed at construction:
//     better(a, b) == true means a is extracted before b.
//   - NewMin / NewMax cover the common cases for cmp.Ordered values
//     (a < b and a > b respectively); New accepts any strict ordering, e.g. a
//     lexicographic comparison over struct fields.
//
// Layout:
//
//   - The backing store is a dense, 1-indexed slice. Slot 0 is an unused zero
//     value; the children of index i live at 2i and 2i+1, the parent at i/2.
//   - Heap property: for every resident index i > 1, better(items[i], items[i/2])
//     is false. It holds after every public operation.
//
// Complexity:
//
//   - Push (sift-up / "swim"):     O(log n)
//   - Pop  (sift-down / "sink"):   O(log n)
//   - Peek, Len, IsEmpty:          O(1)
//   - Space:                       O(n)
//
// The heap never updates an element in place: callers that need to lower a
// priority push a better duplicate and discard the outdated copy when it
// surfaces ("lazy deletion"), as package dijkstra does.
//
// Thread safety:
//
//   - A Heap is not safe for concurrent mutation. Confine each instance to a
//     single goroutine (one heap per query).
package pqueue
