// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"
	"maps"
	"slices"
)

// Reachable reports whether v has an entry in t.
func (t Table[V, W]) Reachable(v V) bool {
	_, ok := t[v]

	return ok
}

// Len returns the number of reachable vertices, start included.
func (t Table[V, W]) Len() int {
	return len(t)
}

// Distance returns the shortest distance to v and whether v is reachable.
// The start vertex has distance zero.
func (t Table[V, W]) Distance(v V) (W, bool) {
	hop, ok := t[v]
	if !ok || hop == nil {
		var zero W
		return zero, ok
	}

	return hop.Dist, true
}

// Start returns the vertex whose entry is nil. A table produced by
// ShortestPaths has exactly one; ok is false for an empty table.
func (t Table[V, W]) Start() (start V, ok bool) {
	for v, hop := range t {
		if hop == nil {
			return v, true
		}
	}

	return start, false
}

// Vertices returns all reachable vertices sorted ascending.
func (t Table[V, W]) Vertices() []V {
	return slices.Sorted(maps.Keys(t))
}

// PathTo rebuilds the path start → … → v by following predecessor links.
// The returned slice begins with the start and ends with v.
//
// Errors:
//   - ErrUnreachable if v is absent from t.
//   - ErrBrokenChain if a link leads outside t or loops without reaching a
//     nil entry.
//
// Complexity: O(path length)
func (t Table[V, W]) PathTo(v V) ([]V, error) {
	if _, ok := t[v]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, v)
	}

	path := []V{v}
	for cur := v; ; {
		hop, ok := t[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %v has no entry", ErrBrokenChain, cur)
		}
		if hop == nil {
			break
		}
		// A well-formed chain visits each entry at most once.
		if len(path) > len(t) {
			return nil, fmt.Errorf("%w: cycle through %v", ErrBrokenChain, cur)
		}
		cur = hop.Prev
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}
