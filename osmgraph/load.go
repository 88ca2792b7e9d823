// SPDX-License-Identifier: MIT

package osmgraph

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"

	"github.com/katalvlaran/shortpath/core"
)

// carHighways lists highway tag values accessible by car.
var carHighways = map[string]bool{
	"motorway":       true,
	"motorway_link":  true,
	"trunk":          true,
	"trunk_link":     true,
	"primary":        true,
	"primary_link":   true,
	"secondary":      true,
	"secondary_link": true,
	"tertiary":       true,
	"tertiary_link":  true,
	"unclassified":   true,
	"residential":    true,
	"living_street":  true,
	"service":        true,
}

// scanner is the common surface of osmxml.Scanner and osmpbf.Scanner.
type scanner interface {
	Scan() bool
	Object() osm.Object
	Err() error
	Close() error
}

// way is a routable way reduced to what the graph needs.
type way struct {
	nodes    []osm.NodeID
	forward  bool
	backward bool
}

// arc is a directed node pair.
type arc struct {
	from, to osm.NodeID
}

// carAccessible reports whether a way with these tags is drivable.
func carAccessible(tags osm.Tags) bool {
	if !carHighways[tags.Find("highway")] {
		return false
	}
	if tags.Find("area") == "yes" {
		return false
	}
	switch tags.Find("access") {
	case "no", "private":
		return false
	}

	return tags.Find("motor_vehicle") != "no"
}

// direction returns which way(s) a road may be driven along its node order.
func direction(tags osm.Tags) (forward, backward bool) {
	forward, backward = true, true

	// Implied oneway.
	switch hw := tags.Find("highway"); {
	case hw == "motorway", hw == "motorway_link", tags.Find("junction") == "roundabout":
		backward = false
	}

	// Explicit tag wins.
	switch tags.Find("oneway") {
	case "yes", "true", "1":
		forward, backward = true, false
	case "-1", "reverse":
		forward, backward = false, true
	case "no":
		forward, backward = true, true
	case "reversible":
		forward, backward = false, false
	}

	return forward, backward
}

// newScanner opens the decoder for format f over r.
func newScanner(ctx context.Context, r io.Reader, f Format) (scanner, error) {
	switch f {
	case XML:
		return osmxml.New(ctx, r), nil
	case PBF:
		s := osmpbf.New(ctx, r, runtime.GOMAXPROCS(0))
		s.SkipRelations = true

		return s, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, f)
	}
}

// Load reads OSM data from r and builds the car road network.
//
// The stream is read once: node coordinates and routable ways are collected
// together and joined afterwards, so r need not be seekable.
//
// Errors: ErrUnknownFormat, decoder errors (wrapped), ctx cancellation.
func Load(ctx context.Context, r io.Reader, f Format, opts ...Option) (*Network, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Scan
	sc, err := newScanner(ctx, r, f)
	if err != nil {
		return nil, err
	}
	coords := make(map[osm.NodeID]Point)
	var ways []way
	for sc.Scan() {
		switch o := sc.Object().(type) {
		case *osm.Node:
			coords[o.ID] = Point{Lat: o.Lat, Lon: o.Lon}
		case *osm.Way:
			if w, ok := routable(o); ok {
				ways = append(ways, w)
			}
		}
	}
	if err = sc.Err(); err != nil {
		_ = sc.Close()
		return nil, fmt.Errorf("osmgraph: scan: %w", err)
	}
	if err = sc.Close(); err != nil {
		return nil, fmt.Errorf("osmgraph: close scanner: %w", err)
	}

	// 2) Join ways with coordinates
	net, arcs := join(ways, coords, cfg.bbox)

	// 3) Build the graph; every weight is ≥ 1 so AddEdge cannot fail.
	b := core.NewBuilder[osm.NodeID, uint32]()
	for a, w := range arcs {
		if err = b.AddEdge(a.from, a.to, w); err != nil {
			return nil, fmt.Errorf("osmgraph: %w", err)
		}
	}
	net.Graph = b.Graph()
	net.Stats.Arcs = b.Size()
	for id := range net.Coords {
		if !b.HasVertex(id) {
			delete(net.Coords, id)
		}
	}

	return net, nil
}

// LoadFile opens path and calls Load with the format implied by its extension.
func LoadFile(ctx context.Context, path string, opts ...Option) (*Network, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("osmgraph: %w", err)
	}
	defer fh.Close()

	return Load(ctx, fh, FormatFromPath(path), opts...)
}

// routable reduces w to its drivable node sequence and direction flags.
func routable(w *osm.Way) (way, bool) {
	if len(w.Nodes) < 2 || !carAccessible(w.Tags) {
		return way{}, false
	}
	fwd, bwd := direction(w.Tags)
	if !fwd && !bwd {
		return way{}, false
	}
	ids := make([]osm.NodeID, len(w.Nodes))
	for i, wn := range w.Nodes {
		ids[i] = wn.ID
	}

	return way{nodes: ids, forward: fwd, backward: bwd}, true
}

// join turns ways into weighted arcs, keeping the lightest of parallel arcs.
// The returned Network carries coordinates and stats but no graph yet.
func join(ways []way, coords map[osm.NodeID]Point, box BBox) (*Network, map[arc]uint32) {
	net := &Network{Coords: make(map[osm.NodeID]Point)}
	arcs := make(map[arc]uint32)
	add := func(from, to osm.NodeID, w uint32) {
		if cur, ok := arcs[arc{from, to}]; !ok || w < cur {
			arcs[arc{from, to}] = w
		}
	}

	filter := !box.IsZero()
	for _, w := range ways {
		net.Stats.Ways++
		for i := 0; i+1 < len(w.nodes); i++ {
			u, v := w.nodes[i], w.nodes[i+1]
			if u == v {
				continue
			}
			pu, okU := coords[u]
			pv, okV := coords[v]
			if !okU || !okV {
				net.Stats.MissingNodes++
				continue
			}
			if filter && (!box.Contains(pu) || !box.Contains(pv)) {
				net.Stats.OutsideBBox++
				continue
			}

			mm := millimetres(haversine(pu, pv))
			if w.forward {
				add(u, v, mm)
			}
			if w.backward {
				add(v, u, mm)
			}
			net.Coords[u], net.Coords[v] = pu, pv
		}
	}

	return net, arcs
}
