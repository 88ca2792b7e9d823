// SPDX-License-Identifier: MIT

// Package core provides the graph representation consumed by the shortest-path
// engine: a sparse, directed, weighted adjacency map and a thread-safe Builder
// that produces it.
//
// The representation G = (V, E) is a nested map:
//
//	Graph[V, W] = map[V]map[V]W   // vertex → (neighbor → edge weight)
//
// Invariants of a well-formed Graph:
//
//   - Every vertex that appears as a neighbor is also a top-level key
//     (possibly with an empty neighbor map).
//   - Every weight is non-negative (and not NaN for float weights).
//
// Builder.AddEdge creates both endpoints, so graphs produced by a Builder are
// always well-formed. Graphs assembled by hand can be checked with
// Graph.Validate.
//
// Vertex identifiers are any cmp.Ordered type (strings, integers, OSM node IDs);
// the ordering is what lets shortest-path ties break deterministically.
// Weights are any integer or float type (Weight).
//
// Configuration Options (BuilderOption):
//
//	– WithUndirected()
//	    AddEdge stores both u→v and v→u with the same weight.
//
//	– WithLoops()
//	    Permits self-loops; otherwise AddEdge(v, v, w) → ErrLoopNotAllowed.
//
// Concurrency:
//
//   - Builder guards its adjacency with a sync.RWMutex; every method is safe
//     for concurrent use.
//   - Graph is a plain map. Any number of goroutines may read it concurrently;
//     none may write it while it is being read. Builder.Graph hands out an
//     independent deep copy, so a snapshot stays stable while the Builder keeps
//     changing.
//
// Errors:
//
//	ErrNegativeWeight  - edge weight is negative or NaN.
//	ErrLoopNotAllowed  - self-loop when loops are disabled.
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrDanglingEdge    - edge target is not a vertex key of the graph.
package core
