// Command shortestpath loads a graph, runs a single-source shortest-path
// query and prints the distance table or one path.
//
//	shortestpath -graph city.yaml -from a
//	shortestpath -graph edges.txt -from a -to d
//	shortestpath -osm sg.osm.pbf -lat 1.3521 -lon 103.8198 -to 5234567 -bbox 1.15,103.6,1.48,104.1
package main

import (
	"cmp"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/paulmach/osm"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/graphfile"
	"github.com/katalvlaran/shortpath/osmgraph"
)

func main() {
	graphPath := flag.String("graph", "", "Graph file: .yaml/.yml document or 'from to weight' edge list")
	osmPath := flag.String("osm", "", "OpenStreetMap file (.osm or .osm.pbf)")
	from := flag.String("from", "", "Start vertex (OSM: node ID)")
	to := flag.String("to", "", "Print only the path to this vertex")
	lat := flag.Float64("lat", 0, "OSM: start latitude, snapped to the nearest node")
	lon := flag.Float64("lon", 0, "OSM: start longitude, snapped to the nearest node")
	bbox := flag.String("bbox", "", "OSM: bounding box minLat,minLng,maxLat,maxLng")
	snap := flag.Float64("snap", osmgraph.DefaultMaxSnap, "OSM: max snap distance in metres")
	maxDist := flag.Float64("max", -1, "Ignore vertices farther than this (OSM: millimetres); negative disables")
	wall := flag.Float64("wall", 0, "Treat edges with weight >= wall as impassable; 0 disables")
	timeout := flag.Duration("timeout", 0, "Abort the query after this long; 0 disables")
	flag.Parse()

	if (*graphPath == "") == (*osmPath == "") {
		fmt.Fprintln(os.Stderr, "Usage: shortestpath (-graph <file> | -osm <file>) (-from <id> | -lat <deg> -lon <deg>) [-to <id>] [-max d] [-wall w]")
		os.Exit(1)
	}

	ctx, cancel := context.Background(), context.CancelFunc(func() {})
	if *timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, *timeout)
	}

	var err error
	if *graphPath != "" {
		err = runGraphFile(ctx, *graphPath, *from, *to, *maxDist, *wall)
	} else {
		err = runOSM(ctx, *osmPath, *from, *to, *lat, *lon, *bbox, *snap, *maxDist, *wall)
	}
	cancel()
	if err != nil {
		log.Fatal(err)
	}
}

func runGraphFile(ctx context.Context, path, from, to string, maxDist, wall float64) error {
	if from == "" {
		return errors.New("-from is required with -graph")
	}

	log.Printf("Loading %s...", path)
	b, err := graphfile.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load graph: %w", err)
	}
	log.Printf("Graph: %d vertices, %d arcs", b.Order(), b.Size())

	var opts []dijkstra.Option[float64]
	if maxDist >= 0 {
		opts = append(opts, dijkstra.WithMaxDistance(maxDist))
	}
	if wall > 0 {
		opts = append(opts, dijkstra.WithInfEdgeThreshold(wall))
	}

	return query(ctx, b.Graph(), from, to, func(s string) (string, error) { return s, nil }, opts)
}

func runOSM(ctx context.Context, path, from, to string, lat, lon float64, bbox string, snap, maxDist, wall float64) error {
	opts, err := millimetreOptions(maxDist, wall)
	if err != nil {
		return err
	}

	var loadOpts []osmgraph.Option
	if bbox != "" {
		var b osmgraph.BBox
		if _, err := fmt.Sscanf(bbox, "%f,%f,%f,%f", &b.MinLat, &b.MinLon, &b.MaxLat, &b.MaxLon); err != nil {
			return fmt.Errorf("invalid bbox format (expected minLat,minLng,maxLat,maxLng): %w", err)
		}
		if b.MinLat > b.MaxLat || b.MinLon > b.MaxLon {
			return fmt.Errorf("invalid bbox %q: %w", bbox, osmgraph.ErrBadBBox)
		}
		loadOpts = append(loadOpts, osmgraph.WithBBox(b))
		log.Printf("Using bounding box filter: lat [%.4f, %.4f], lng [%.4f, %.4f]", b.MinLat, b.MaxLat, b.MinLon, b.MaxLon)
	}

	start := time.Now()
	log.Printf("Parsing %s...", path)
	net, err := osmgraph.LoadFile(ctx, path, loadOpts...)
	if err != nil {
		return fmt.Errorf("failed to parse OSM data: %w", err)
	}
	log.Printf("Network: %d ways, %d nodes, %d arcs in %s", net.Stats.Ways, len(net.Graph), net.Stats.Arcs, time.Since(start).Round(time.Millisecond))
	if net.Stats.MissingNodes > 0 {
		log.Printf("Warning: skipped %d segments due to missing node coordinates", net.Stats.MissingNodes)
	}
	if net.Stats.OutsideBBox > 0 {
		log.Printf("Filtered %d segments outside bounding box", net.Stats.OutsideBBox)
	}

	if from == "" {
		if !(snap > 0) {
			return fmt.Errorf("-snap %v: %w", snap, osmgraph.ErrBadMaxSnap)
		}
		id, d, err := net.Index(osmgraph.WithMaxSnap(snap)).Nearest(lat, lon)
		if err != nil {
			return fmt.Errorf("failed to snap (%.6f, %.6f): %w", lat, lon, err)
		}
		log.Printf("Snapped (%.6f, %.6f) to node %d (%.1f m)", lat, lon, id, d)
		from = strconv.FormatInt(int64(id), 10)
	}

	return query(ctx, net.Graph, from, to, parseNodeID, opts)
}

// millimetreOptions converts the -max and -wall flags to options over uint32
// millimetre weights. A fractional cap is rounded down and a fractional wall
// up, so neither admits more than asked for.
func millimetreOptions(maxDist, wall float64) ([]dijkstra.Option[uint32], error) {
	var opts []dijkstra.Option[uint32]
	if maxDist >= 0 {
		if maxDist > math.MaxUint32 {
			return nil, fmt.Errorf("-max %v exceeds %d mm", maxDist, uint32(math.MaxUint32))
		}
		opts = append(opts, dijkstra.WithMaxDistance(uint32(math.Floor(maxDist))))
	}
	if wall > 0 {
		if wall > math.MaxUint32 {
			return nil, fmt.Errorf("-wall %v exceeds %d mm", wall, uint32(math.MaxUint32))
		}
		opts = append(opts, dijkstra.WithInfEdgeThreshold(uint32(math.Ceil(wall))))
	}

	return opts, nil
}

func parseNodeID(s string) (osm.NodeID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	return osm.NodeID(n), err
}

// query runs the search from the parsed start and prints either the path to
// target or the whole table sorted by vertex.
func query[V cmp.Ordered, W core.Weight](ctx context.Context, g core.Graph[V, W], from, target string, parse func(string) (V, error), opts []dijkstra.Option[W]) error {
	src, err := parse(from)
	if err != nil {
		return fmt.Errorf("invalid start vertex %q: %w", from, err)
	}

	var st dijkstra.Stats[W]
	opts = append(opts, dijkstra.WithStats(&st))
	start := time.Now()
	table, err := dijkstra.ShortestPathsContext(ctx, g, src, opts...)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}
	log.Printf("Settled %d vertices in %s (pushed %d, stale %d)", st.Settled+1, time.Since(start).Round(time.Microsecond), st.Pushed, st.Stale)

	if target != "" {
		dst, err := parse(target)
		if err != nil {
			return fmt.Errorf("invalid target vertex %q: %w", target, err)
		}
		path, err := table.PathTo(dst)
		if err != nil {
			return fmt.Errorf("no path: %w", err)
		}
		d, _ := table.Distance(dst)
		fmt.Printf("distance %v\n", d)
		for _, v := range path {
			fmt.Println(v)
		}

		return nil
	}

	for _, v := range table.Vertices() {
		if hop := table[v]; hop != nil {
			fmt.Printf("%v\t%v\t%v\n", v, hop.Prev, hop.Dist)
		} else {
			fmt.Printf("%v\t-\t0\n", v)
		}
	}

	return nil
}
