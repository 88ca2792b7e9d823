// SPDX-License-Identifier: MIT

package osmgraph

import (
	"math"

	"github.com/paulmach/osm"
	"github.com/tidwall/rtree"
)

// nearestCandidates is how many projected hits Nearest re-ranks by
// great-circle distance.
const nearestCandidates = 8

// Index answers nearest-node queries over a Network.
//
// Nodes are stored as points in an equirectangular projection centred on the
// network's mean latitude, in metres. The R-tree ranks nodes by projected
// distance and the closest nearestCandidates of them are re-ranked by exact
// great-circle distance, which is also the distance reported.
//
// The projection assumes a regional network (a city or a country). Far from
// the mean latitude, or across the 180° meridian, projected distances stop
// tracking ground distances and the node returned may not be the true
// nearest one.
type Index struct {
	tr      rtree.RTreeG[osm.NodeID]
	coords  map[osm.NodeID]Point
	cosLat  float64
	maxSnap float64
}

// Index builds a spatial index over every vertex of n that has coordinates.
//
// Complexity: O(V log V)
func (n *Network) Index(opts ...IndexOption) *Index {
	ix := &Index{coords: n.Coords, maxSnap: DefaultMaxSnap, cosLat: 1}
	for _, opt := range opts {
		opt(ix)
	}

	if len(n.Coords) > 0 {
		var sum float64
		for _, p := range n.Coords {
			sum += p.Lat
		}
		ix.cosLat = math.Cos(sum / float64(len(n.Coords)) * degToRad)
	}
	for id, p := range n.Coords {
		xy := ix.project(p)
		ix.tr.Insert(xy, xy, id)
	}

	return ix
}

// Len returns the number of indexed nodes.
func (ix *Index) Len() int {
	return ix.tr.Len()
}

// project maps p to planar metres.
func (ix *Index) project(p Point) [2]float64 {
	const k = earthRadiusMeters * degToRad

	return [2]float64{p.Lon * ix.cosLat * k, p.Lat * k}
}

// Nearest returns the indexed node closest to (lat, lon) and its distance in
// metres.
//
// Errors:
//   - ErrEmptyIndex if nothing is indexed.
//   - ErrPointTooFar if the closest node lies beyond the snap limit.
func (ix *Index) Nearest(lat, lon float64) (osm.NodeID, float64, error) {
	if ix.tr.Len() == 0 {
		return 0, 0, ErrEmptyIndex
	}

	q := Point{Lat: lat, Lon: lon}
	xy := ix.project(q)
	var best osm.NodeID
	bestDist := math.Inf(1)
	seen := 0
	ix.tr.Nearby(
		rtree.BoxDist[float64, osm.NodeID](xy, xy, nil),
		func(_, _ [2]float64, id osm.NodeID, _ float64) bool {
			if d := haversine(q, ix.coords[id]); d < bestDist || (d == bestDist && id < best) {
				best, bestDist = id, d
			}
			seen++

			return seen < nearestCandidates
		},
	)
	if seen == 0 {
		return 0, 0, ErrEmptyIndex
	}

	if bestDist > ix.maxSnap {
		return 0, bestDist, ErrPointTooFar
	}

	return best, bestDist, nil
}
