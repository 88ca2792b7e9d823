// SPDX-License-Identifier: MIT

// Package osmgraph turns OpenStreetMap road data into a core.Graph that the
// shortest-path engine can query, and snaps coordinates onto it.
//
// Loading:
//
//   - Load scans an OSM XML (osmxml) or PBF (osmpbf) stream in a single pass.
//   - Only car-accessible highways are kept (motorway … service); areas,
//     access=no/private and motor_vehicle=no are dropped.
//   - Direction follows the oneway tag: yes/true/1 forward only, -1/reverse
//     backward only, no both ways, reversible dropped. Motorways, motorway
//     links and roundabouts are one-way unless tagged otherwise.
//   - Each consecutive node pair of a way becomes an arc weighted by its
//     great-circle length in millimetres (uint32, at least 1). Parallel arcs
//     keep the lightest weight.
//   - WithBBox keeps only arcs whose endpoints both lie inside a box.
//
// Snapping:
//
//	idx := net.Index(osmgraph.WithMaxSnap(250))
//	id, meters, err := idx.Nearest(1.3521, 103.8198)
//
// Index stores every routable node in an R-tree (tidwall/rtree) over an
// equirectangular projection and answers nearest-node queries; points farther
// than the snap limit (500 m by default) yield ErrPointTooFar.
//
// Distances in uint32 millimetres overflow past ~4 295 km; keep queries
// regional or cap them with dijkstra.WithMaxDistance.
package osmgraph
