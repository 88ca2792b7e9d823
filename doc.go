// Package shortpath is an in-memory single-source shortest-path toolkit:
// a generic binary heap, a lazy-deletion Dijkstra engine, and loaders that
// turn graph files and OpenStreetMap extracts into queryable graphs.
//
// What is inside?
//
//   - Priority queue: 1-indexed binary heap with an injected comparator
//   - Shortest paths: Dijkstra with distance caps, impassable edges, stats
//   - Graph input: YAML documents, plain edge lists, OSM XML/PBF road networks
//   - Snapping: nearest routable node for a coordinate (R-tree)
//
// Under the hood, everything is organized into flat packages:
//
//	core/       — Graph adjacency map, validation, thread-safe Builder
//	pqueue/     — generic Heap[T] (Push, Pop, Peek, Drain)
//	dijkstra/   — ShortestPaths, Table (Distance, PathTo), options
//	graphfile/  — DecodeYAML, DecodeText, Load
//	osmgraph/   — OSM road network Load, Network.Index, Nearest
//	cmd/shortestpath — command-line front end
//
// Quick ASCII example:
//
//	    a ──12──► c ──32──► d
//	    ▲         │
//	    10        20
//	    │         ▼
//	    └──────── b
//
//	ShortestPaths(g, "a") → a:nil, c:(a,12), b:(c,32), d:(c,44)
//
//	go get github.com/katalvlaran/shortpath
package shortpath
