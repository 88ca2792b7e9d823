// SPDX-License-Identifier: MIT

// Package dijkstra defines the result types and configuration options
// for the shortest-path engine.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; vertices beyond it are unreachable.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//	– Stats:            optional sink for queue counters.
package dijkstra

import (
	"cmp"
	"errors"

	"github.com/katalvlaran/shortpath/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrVertexNotFound indicates that the start vertex is not a key of the graph.
	ErrVertexNotFound = errors.New("dijkstra: start vertex not found in graph")

	// ErrNegativeWeight indicates that a negative (or NaN) edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrDanglingEdge indicates an edge whose target is not a vertex of the graph.
	ErrDanglingEdge = errors.New("dijkstra: edge target not found in graph")

	// ErrUnreachable indicates a path was requested to a vertex absent from the table.
	ErrUnreachable = errors.New("dijkstra: vertex not reachable from start")

	// ErrBrokenChain indicates a Table whose predecessor links do not lead back
	// to a start vertex (only possible for hand-built tables).
	ErrBrokenChain = errors.New("dijkstra: predecessor chain does not reach start")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Hop is a settled table entry: the predecessor of a vertex on a shortest
// path from the start, and the total distance of that path.
type Hop[V cmp.Ordered, W core.Weight] struct {
	Prev V
	Dist W
}

// Table maps every reachable vertex to its Hop. The start vertex maps to nil;
// unreachable vertices are absent.
type Table[V cmp.Ordered, W core.Weight] map[V]*Hop[V, W]

// Stats receives queue counters for one query.
//
// Pushed - Popped is zero when the query ran to completion.
// Stale counts entries discarded by lazy deletion.
type Stats[W core.Weight] struct {
	Pushed   int // heap insertions, including the seeds
	Popped   int // heap extractions
	Stale    int // extractions discarded as superseded
	Settled  int // extractions that finalized a vertex (start excluded)
	Farthest W   // distance of the last settled vertex
}

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – cap on explored distances; used only when HasMaxDistance.
// InfEdgeThreshold – edges with weight ≥ threshold are skipped; used only when HasInfEdgeThreshold.
// Stats            – if non-nil, overwritten with the counters of the query.
type Options[W core.Weight] struct {
	MaxDistance         W
	HasMaxDistance      bool
	InfEdgeThreshold    W
	HasInfEdgeThreshold bool
	Stats               *Stats[W]
}

// Option represents a functional option for configuring Dijkstra.
type Option[W core.Weight] func(*Options[W])

// WithMaxDistance sets a maximum distance threshold.
// Candidates whose distance would exceed max are neither recorded nor explored,
// so vertices farther than max are absent from the table.
// Panics with ErrBadMaxDistance if max is negative (or NaN).
func WithMaxDistance[W core.Weight](max W) Option[W] {
	var zero W
	if !(max >= zero) {
		// Panic to signal invalid configuration early.
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options[W]) {
		o.MaxDistance = max
		o.HasMaxDistance = true
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges
// are considered non-traversable.
// Panics with ErrBadInfThreshold if threshold is zero, negative or NaN.
func WithInfEdgeThreshold[W core.Weight](threshold W) Option[W] {
	var zero W
	if !(threshold > zero) {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options[W]) {
		o.InfEdgeThreshold = threshold
		o.HasInfEdgeThreshold = true
	}
}

// WithStats makes the query overwrite *s with its queue counters.
func WithStats[W core.Weight](s *Stats[W]) Option[W] {
	return func(o *Options[W]) {
		o.Stats = s
	}
}

// DefaultOptions returns an Options struct with no distance cap, no
// impassable edges and no stats sink.
func DefaultOptions[W core.Weight]() Options[W] {
	return Options[W]{}
}
