// SPDX-License-Identifier: MIT

package osmgraph

import "math"

const earthRadiusMeters = 6_371_000.0

// degToRad converts degrees to radians.
const degToRad = math.Pi / 180

// haversine returns the great-circle distance in metres between a and b.
func haversine(a, b Point) float64 {
	lat1 := a.Lat * degToRad
	lat2 := b.Lat * degToRad
	dLat := (b.Lat - a.Lat) * degToRad
	dLon := (b.Lon - a.Lon) * degToRad

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusMeters * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// millimetres converts a segment length to an arc weight. Zero-length
// segments weigh 1 so that duplicate nodes never form free cycles.
func millimetres(meters float64) uint32 {
	mm := uint32(math.Round(meters * 1000))
	if mm == 0 {
		return 1
	}

	return mm
}
