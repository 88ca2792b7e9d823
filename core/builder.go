// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Vertex and edge lifecycle on Builder, plus snapshotting.
//
// Concurrency:
//   - Every method takes mu (read lock for queries, write lock for mutation).
//   - Graph() returns a deep copy; the Builder never shares its maps.

package core

import "fmt"

// AddVertex inserts a vertex with no outgoing edges if missing (idempotent).
//
// Complexity: O(1) amortized.
func (b *Builder[V, W]) AddVertex(v V) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ensure(v)
}

// AddEdge stores the edge from→to with weight w, replacing any previous weight
// on the same arc. Both endpoints are created if missing, so the resulting
// Graph is always well-formed.
//
// Steps:
//  1. Validate weight (ErrNegativeWeight) and loop policy (ErrLoopNotAllowed).
//  2. Lock mu, ensure both endpoints exist.
//  3. Store from→to; mirror to→from when the Builder is undirected.
//
// Complexity: O(1) amortized.
func (b *Builder[V, W]) AddEdge(from, to V, w W) error {
	// 1) Input validation
	if badWeight(w) {
		return fmt.Errorf("%w: %v→%v weight=%v", ErrNegativeWeight, from, to, w)
	}
	if from == to && !b.cfg.allowLoops {
		return ErrLoopNotAllowed
	}

	// 2) Ensure vertices exist
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ensure(from)
	b.ensure(to)

	// 3) Store and mirror
	b.link(from, to, w)
	if b.cfg.undirected && from != to {
		b.link(to, from, w)
	}

	return nil
}

// RemoveEdge deletes the arc from→to (and its mirror on an undirected Builder).
// Vertices are kept, even when they become isolated.
//
// Errors: ErrEdgeNotFound if the arc does not exist.
func (b *Builder[V, W]) RemoveEdge(from, to V) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.adj[from][to]; !ok {
		return ErrEdgeNotFound
	}
	b.unlink(from, to)
	if b.cfg.undirected && from != to {
		b.unlink(to, from)
	}

	return nil
}

// HasVertex reports whether the vertex exists.
func (b *Builder[V, W]) HasVertex(v V) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.adj[v]

	return ok
}

// HasEdge reports whether the arc from→to exists.
func (b *Builder[V, W]) HasEdge(from, to V) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.adj[from][to]

	return ok
}

// Order returns the number of vertices.
func (b *Builder[V, W]) Order() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.adj)
}

// Size returns the number of stored directed arcs. An undirected edge counts
// twice, a self-loop once.
func (b *Builder[V, W]) Size() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.size
}

// Graph returns a deep copy of the accumulated adjacency.
// The snapshot is independent: later Builder mutations do not affect it.
//
// Complexity: O(V + E)
func (b *Builder[V, W]) Graph() Graph[V, W] {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.adj.Clone()
}

// Clear resets the Builder to an empty state while preserving its options.
func (b *Builder[V, W]) Clear() {
	b.mu.Lock()
	b.adj = make(Graph[V, W])
	b.size = 0
	b.mu.Unlock()
}

// ensure creates an empty neighbor map for v. Caller holds mu.
func (b *Builder[V, W]) ensure(v V) {
	if _, ok := b.adj[v]; !ok {
		b.adj[v] = make(map[V]W)
	}
}

// link stores from→to, keeping size in sync. Caller holds mu.
func (b *Builder[V, W]) link(from, to V, w W) {
	if _, ok := b.adj[from][to]; !ok {
		b.size++
	}
	b.adj[from][to] = w
}

// unlink removes from→to if present. Caller holds mu.
func (b *Builder[V, W]) unlink(from, to V) {
	if _, ok := b.adj[from][to]; ok {
		delete(b.adj[from], to)
		b.size--
	}
}
