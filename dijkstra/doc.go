// SPDX-License-Identifier: MIT

// Package dijkstra provides a precise implementation of Dijkstra's
// single-source shortest-path algorithm on sparse directed graphs with
// non-negative edge weights.
//
// Overview:
//
//   - ShortestPaths computes, for every vertex reachable from a start vertex,
//     the minimum total edge weight and the immediately preceding vertex on one
//     shortest path achieving it.
//   - It relies on a pqueue.Heap ordered lexicographically by
//     (distance, vertex, predecessor), so equal-distance candidates are
//     extracted in a deterministic order.
//   - It uses "lazy deletion" instead of decrease-key: an improved candidate is
//     pushed as a new heap entry, and superseded entries are recognised as
//     stale when they surface and are discarded.
//
// Result:
//
//	Table[V, W] = map[V]*Hop[V, W]
//
//	  - table[start] == nil          (no predecessor, zero cost, settled)
//	  - table[v]     == &Hop{u, d}   (u precedes v on a shortest path, d = distance)
//	  - v absent                     (v is unreachable from start)
//
// Tie policy:
//
//   - A recorded distance is only replaced by a strictly smaller one. When two
//     paths reach a vertex with the same total weight, the predecessor found
//     first is kept.
//   - The start vertex is never overwritten, even by zero-weight cycles or
//     self-loops.
//
// Key features:
//
//   - WithMaxDistance: vertices farther than a cap are treated as unreachable.
//   - WithInfEdgeThreshold: edges with weight ≥ threshold are impassable.
//   - WithStats: observe how many entries were pushed, popped, discarded as
//     stale and settled.
//   - ShortestPathsContext: cancel a long query between loop iterations.
//   - Table.PathTo rebuilds the full start…v path from the predecessor links.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log E)
//   - Each edge relaxation pushes at most one heap entry (up to E pushes).
//   - Each vertex is settled at most once; stale entries cost one pop each.
//   - Space: O(V + E)
//   - O(V) for the table, O(E) worst-case heap entries under lazy deletion.
//
// Error handling (sentinel errors):
//
//   - ErrVertexNotFound:  the start vertex is not a key of the graph.
//   - ErrDanglingEdge:    an edge targets a vertex that is not a key (O(E) pre-scan).
//   - ErrNegativeWeight:  an edge weight is negative or NaN (O(E) pre-scan).
//   - ErrUnreachable:     Table.PathTo on a vertex absent from the table.
//   - ErrBadMaxDistance:  (panic) WithMaxDistance with a negative cap.
//   - ErrBadInfThreshold: (panic) WithInfEdgeThreshold with a non-positive threshold.
//
// Thread safety:
//
//   - A query only reads the graph; any number of queries may run
//     concurrently on the same core.Graph as long as nobody mutates it.
//   - Each query owns its heap and table; nothing is shared between queries.
//
// Example:
//
//	g := core.Graph[string, int]{
//	    "a": {"c": 12, "d": 60},
//	    "b": {"a": 10},
//	    "c": {"b": 20, "d": 32},
//	    "d": {},
//	}
//	table, err := dijkstra.ShortestPaths(g, "a")
//	// table["d"] == &Hop{Prev: "c", Dist: 44}
package dijkstra
