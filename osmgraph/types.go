// SPDX-License-Identifier: MIT

package osmgraph

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/paulmach/osm"

	"github.com/katalvlaran/shortpath/core"
)

// Sentinel errors for OSM loading and snapping.
var (
	// ErrUnknownFormat indicates a Format value other than XML or PBF.
	ErrUnknownFormat = errors.New("osmgraph: unknown input format")

	// ErrPointTooFar indicates no routable node within the snap limit.
	ErrPointTooFar = errors.New("osmgraph: point too far from road")

	// ErrEmptyIndex indicates a nearest-node query on a network without nodes.
	ErrEmptyIndex = errors.New("osmgraph: index has no nodes")

	// ErrBadBBox indicates a bounding box whose minimum exceeds its maximum.
	ErrBadBBox = errors.New("osmgraph: bounding box min exceeds max")

	// ErrBadMaxSnap indicates a non-positive snap limit.
	ErrBadMaxSnap = errors.New("osmgraph: max snap distance must be positive")
)

// DefaultMaxSnap is the snap limit in metres used when WithMaxSnap is not given.
const DefaultMaxSnap = 500.0

// Format selects the OSM encoding read by Load.
type Format int

const (
	// XML is the .osm text encoding.
	XML Format = iota
	// PBF is the .osm.pbf protobuf encoding.
	PBF
)

// FormatFromPath returns PBF for *.pbf paths and XML otherwise.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".pbf") {
		return PBF
	}

	return XML
}

// Point is a WGS84 coordinate in degrees.
type Point struct {
	Lat, Lon float64
}

// BBox is a geographic bounding box. The zero value means "no filter".
type BBox struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// IsZero reports whether b is unset.
func (b BBox) IsZero() bool {
	return b == BBox{}
}

// Contains reports whether p lies inside b, borders included.
func (b BBox) Contains(p Point) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat && p.Lon >= b.MinLon && p.Lon <= b.MaxLon
}

// Network is a routable road graph plus the coordinates of its vertices.
type Network struct {
	Graph  core.Graph[osm.NodeID, uint32]
	Coords map[osm.NodeID]Point
	Stats  LoadStats
}

// LoadStats summarizes what Load kept and dropped.
type LoadStats struct {
	Ways         int // routable ways kept
	Arcs         int // directed arcs in Graph
	MissingNodes int // segments dropped for lack of node coordinates
	OutsideBBox  int // segments dropped by WithBBox
}

// Option configures Load.
type Option func(*config)

type config struct {
	bbox BBox
}

// WithBBox keeps only segments with both endpoints inside b.
// Panics with ErrBadBBox if a minimum exceeds its maximum.
func WithBBox(b BBox) Option {
	if b.MinLat > b.MaxLat || b.MinLon > b.MaxLon {
		panic(ErrBadBBox.Error())
	}

	return func(c *config) { c.bbox = b }
}

// IndexOption configures Network.Index.
type IndexOption func(*Index)

// WithMaxSnap sets the snap limit in metres.
// Panics with ErrBadMaxSnap if meters is not positive.
func WithMaxSnap(meters float64) IndexOption {
	if !(meters > 0) {
		panic(ErrBadMaxSnap.Error())
	}

	return func(ix *Index) { ix.maxSnap = meters }
}
