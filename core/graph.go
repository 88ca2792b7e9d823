// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Read-only queries, validation and cloning on Graph.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending.
//   - Validate() is a single unordered pass; with several malformed arcs the
//     one reported may differ between calls.

package core

import (
	"fmt"
	"maps"
	"slices"
)

// HasVertex reports whether v is a vertex key of g.
func (g Graph[V, W]) HasVertex(v V) bool {
	_, ok := g[v]

	return ok
}

// Neighbors returns the outgoing arcs of v as neighbor → weight.
// The returned map is g's own storage and must be treated as read-only.
// It is nil when v is not a vertex.
func (g Graph[V, W]) Neighbors(v V) map[V]W {
	return g[v]
}

// Vertices returns all vertex keys sorted ascending.
//
// Complexity: O(V log V)
func (g Graph[V, W]) Vertices() []V {
	return slices.Sorted(maps.Keys(g))
}

// EdgeCount returns the number of directed arcs.
func (g Graph[V, W]) EdgeCount() int {
	n := 0
	for _, nbrs := range g {
		n += len(nbrs)
	}

	return n
}

// Validate checks the well-formedness invariants of g:
//
//  1. every arc target is itself a vertex key (ErrDanglingEdge);
//  2. every weight is non-negative and not NaN (ErrNegativeWeight).
//
// Complexity: O(V + E)
func (g Graph[V, W]) Validate() error {
	for u, nbrs := range g {
		for v, w := range nbrs {
			if _, ok := g[v]; !ok {
				return fmt.Errorf("%w: %v→%v", ErrDanglingEdge, u, v)
			}
			if badWeight(w) {
				return fmt.Errorf("%w: %v→%v weight=%v", ErrNegativeWeight, u, v, w)
			}
		}
	}

	return nil
}

// Clone returns a deep copy of g: new outer and inner maps with the same arcs.
// Cloning a nil Graph yields an empty, non-nil Graph.
//
// Complexity: O(V + E)
func (g Graph[V, W]) Clone() Graph[V, W] {
	out := make(Graph[V, W], len(g))
	for v, nbrs := range g {
		out[v] = maps.Clone(nbrs)
		if out[v] == nil {
			out[v] = make(map[V]W)
		}
	}

	return out
}
