package pqueue

// Resident exposes the backing store (without the sentinel slot) to tests.
func (h *Heap[T]) Resident() []T { return h.items[1:] }

// Vacated exposes the slots between length and capacity of the backing store.
func (h *Heap[T]) Vacated() []T { return h.items[len(h.items):cap(h.items)] }

// Sentinel returns the unused slot 0.
func (h *Heap[T]) Sentinel() T { return h.items[0] }

// Violation returns the first index i > 1 whose element the comparator
// prefers over its parent, or 0 when the heap property holds.
func (h *Heap[T]) Violation() int {
	for i := 2; i <= h.Len(); i++ {
		if h.better(h.items[i], h.items[i/2]) {
			return i
		}
	}

	return 0
}
