// SPDX-License-Identifier: MIT

package pqueue

import (
	"cmp"
	"errors"
	"iter"
)

// ErrNilComparator indicates that New was called without an ordering.
var ErrNilComparator = errors.New("pqueue: comparator is nil")

// Heap is a binary heap ordered by an injected comparator.
//
// items[0] is an unused sentinel slot; resident elements occupy items[1:].
// The zero value is not usable; construct with New, NewMin or NewMax.
type Heap[T any] struct {
	items  []T
	better func(a, b T) bool
}

// New returns an empty heap that extracts a before b whenever better(a, b).
// better must be a strict ordering (irreflexive, transitive).
//
// Panics with ErrNilComparator if better is nil.
func New[T any](better func(a, b T) bool) *Heap[T] {
	if better == nil {
		panic(ErrNilComparator.Error())
	}

	return &Heap[T]{
		items:  make([]T, 1), // sentinel slot 0
		better: better,
	}
}

// NewMin returns a heap that extracts the smallest value first.
func NewMin[T cmp.Ordered]() *Heap[T] {
	return New(func(a, b T) bool { return cmp.Less(a, b) })
}

// NewMax returns a heap that extracts the largest value first.
func NewMax[T cmp.Ordered]() *Heap[T] {
	return New(func(a, b T) bool { return cmp.Less(b, a) })
}

// Len returns the number of resident elements.
func (h *Heap[T]) Len() int { return len(h.items) - 1 }

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[T]) IsEmpty() bool { return h.Len() == 0 }

// Push inserts x and restores the heap property by sifting it up.
func (h *Heap[T]) Push(x T) {
	h.items = append(h.items, x)
	h.swim(h.Len())
}

// Peek returns the best element without removing it.
// The second result is false when the heap is empty.
func (h *Heap[T]) Peek() (T, bool) {
	if h.IsEmpty() {
		var zero T
		return zero, false
	}

	return h.items[1], true
}

// Pop removes and returns the best element.
// The second result is false when the heap is empty; that is not an error.
func (h *Heap[T]) Pop() (T, bool) {
	var zero T
	n := h.Len()
	if n == 0 {
		return zero, false
	}

	// 1) Move the root to the last slot and shrink.
	h.items[1], h.items[n] = h.items[n], h.items[1]
	best := h.items[n]
	h.items[n] = zero // release the reference held by the vacated slot
	h.items = h.items[:n]

	// 2) Restore the heap property from the root.
	if n > 1 {
		h.sink(1)
	}

	return best, true
}

// Drain returns an iterator that pops elements in comparator order until
// the heap is empty. Stopping the iteration early leaves the remaining
// elements in the heap.
func (h *Heap[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			x, ok := h.Pop()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

// Reset removes all elements, keeping the allocated capacity.
func (h *Heap[T]) Reset() {
	clear(h.items)
	h.items = h.items[:1]
}

// swim moves items[i] up while it is better than its parent.
func (h *Heap[T]) swim(i int) {
	for i > 1 {
		parent := i / 2
		if !h.better(h.items[i], h.items[parent]) {
			return
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

// sink moves items[i] down while one of its children is better than it.
func (h *Heap[T]) sink(i int) {
	n := h.Len()
	for 2*i <= n {
		child := h.bestChild(i, n)
		if !h.better(h.items[child], h.items[i]) {
			return
		}
		h.items[i], h.items[child] = h.items[child], h.items[i]
		i = child
	}
}

// bestChild returns the index of the preferred child of i. The right child
// wins only when the comparator strictly prefers it; otherwise (including a
// missing right child) the left child is chosen.
func (h *Heap[T]) bestChild(i, n int) int {
	left, right := 2*i, 2*i+1
	if right <= n && h.better(h.items[right], h.items[left]) {
		return right
	}

	return left
}
