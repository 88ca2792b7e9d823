// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect dangling targets
//     and negative weights and fail fast.
//   - We seed the heap with the start's direct neighbors rather than the start
//     itself; the start is settled by definition.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and
//     ignoring stale entries, recognised by comparing the popped (prev, dist)
//     against the table.
package dijkstra

import (
	"cmp"
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/pqueue"
)

// ctxCheckInterval is the number of heap extractions between context checks.
const ctxCheckInterval = 256

// ShortestPaths computes shortest distances and predecessors from start to
// every vertex reachable from it in g.
//
// Returns:
//
//   - Table: start → nil; every other reachable v → &Hop{Prev, Dist}.
//     Unreachable vertices are absent.
//   - error: ErrVertexNotFound, ErrDanglingEdge or ErrNegativeWeight.
//
// g is only read. It must not be mutated while the query runs.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
func ShortestPaths[V cmp.Ordered, W core.Weight](g core.Graph[V, W], start V, opts ...Option[W]) (Table[V, W], error) {
	return ShortestPathsContext(context.Background(), g, start, opts...)
}

// ShortestPathsContext is ShortestPaths with cancellation: ctx is checked
// before the search starts and periodically between loop iterations. On
// cancellation the partial table is discarded and ctx.Err() is returned
// wrapped.
func ShortestPathsContext[V cmp.Ordered, W core.Weight](ctx context.Context, g core.Graph[V, W], start V, opts ...Option[W]) (Table[V, W], error) {
	// 1) Build Options
	cfg := DefaultOptions[W]()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate start exists
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, start)
	}

	// 3) Pre-scan all edges. Fail fast before any heap work.
	if err := g.Validate(); err != nil {
		switch {
		case errors.Is(err, core.ErrDanglingEdge):
			return nil, fmt.Errorf("%w: %w", ErrDanglingEdge, err)
		case errors.Is(err, core.ErrNegativeWeight):
			return nil, fmt.Errorf("%w: %w", ErrNegativeWeight, err)
		default:
			return nil, err
		}
	}

	// 4) Run
	r := &runner[V, W]{
		g:       g,
		start:   start,
		options: cfg,
		table:   make(Table[V, W]),
		pq:      pqueue.New(better[V, W]),
	}
	r.init()
	err := r.process(ctx)
	if cfg.Stats != nil {
		*cfg.Stats = r.stats
	}
	if err != nil {
		return nil, err
	}

	return r.table, nil
}

// candidate is a heap entry proposing prev as the predecessor of vertex at
// total distance dist. Entries are never modified after being pushed.
type candidate[V cmp.Ordered, W core.Weight] struct {
	dist   W
	vertex V
	prev   V
}

// better orders candidates lexicographically by (dist, vertex, prev).
func better[V cmp.Ordered, W core.Weight](a, b candidate[V, W]) bool {
	if c := cmp.Compare(a.dist, b.dist); c != 0 {
		return c < 0
	}
	if c := cmp.Compare(a.vertex, b.vertex); c != 0 {
		return c < 0
	}

	return cmp.Less(a.prev, b.prev)
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V cmp.Ordered, W core.Weight] struct {
	g       core.Graph[V, W]              // The input graph; read-only within Dijkstra.
	start   V                             // The source vertex.
	options Options[W]                    // Thresholds and stats sink.
	table   Table[V, W]                   // Best-known hop per vertex.
	pq      *pqueue.Heap[candidate[V, W]] // Min-heap of candidates (lazy deletion).
	stats   Stats[W]
}

// init records the start as settled and seeds the heap with its direct
// neighbors, each proposed with the start as predecessor.
func (r *runner[V, W]) init() {
	// 1) The start has no predecessor and is never overwritten.
	r.table[r.start] = nil

	// 2) Seed. A self-loop on the start can never improve it.
	for v, w := range r.g[r.start] {
		if v == r.start || !r.passable(w) || r.beyond(w) {
			continue
		}
		r.table[v] = &Hop[V, W]{Prev: r.start, Dist: w}
		r.push(candidate[V, W]{dist: w, vertex: v, prev: r.start})
	}
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the
// best candidate, discards it if stale, and otherwise settles its vertex and
// relaxes the outgoing edges.
//
// Loop termination: the heap becomes empty, or ctx is done.
func (r *runner[V, W]) process(ctx context.Context) error {
	for n := 0; ; n++ {
		// 1) Honour cancellation between iterations.
		if n%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("dijkstra: search aborted: %w", err)
			}
		}

		// 2) Pop the best candidate; an empty heap ends the search.
		c, ok := r.pq.Pop()
		if !ok {
			return nil
		}
		r.stats.Popped++

		// 3) Skip superseded entries.
		if r.stale(c) {
			r.stats.Stale++
			continue
		}

		// 4) c.vertex is settled at c.dist.
		r.stats.Settled++
		r.stats.Farthest = c.dist
		r.relax(c)
	}
}

// stale reports whether c no longer matches the table entry of its vertex,
// i.e. a better candidate was recorded after c was pushed.
func (r *runner[V, W]) stale(c candidate[V, W]) bool {
	hop, ok := r.table[c.vertex]
	if !ok || hop == nil {
		return true
	}

	return hop.Prev != c.prev || hop.Dist != c.dist
}

// relax examines each edge outgoing from the settled vertex of c and records
// strictly shorter paths to its neighbors, pushing a new candidate for each.
func (r *runner[V, W]) relax(c candidate[V, W]) {
	for next, w := range r.g[c.vertex] {
		// Impassable edges are skipped entirely.
		if !r.passable(w) {
			continue
		}

		// Candidate distance if we go start → … → c.vertex → next.
		d := c.dist + w
		if r.beyond(d) {
			continue
		}

		hop, seen := r.table[next]
		switch {
		case seen && hop == nil:
			// next is the start: its distance is zero by definition.
			continue
		case seen && hop.Dist <= d:
			// Not strictly better; the first path found wins ties.
			continue
		case seen:
			// Update in place: the old heap entry no longer matches and becomes stale.
			hop.Prev, hop.Dist = c.vertex, d
		default:
			r.table[next] = &Hop[V, W]{Prev: c.vertex, Dist: d}
		}
		r.push(candidate[V, W]{dist: d, vertex: next, prev: c.vertex})
	}
}

func (r *runner[V, W]) push(c candidate[V, W]) {
	r.pq.Push(c)
	r.stats.Pushed++
}

// passable reports whether an edge of weight w may be traversed.
func (r *runner[V, W]) passable(w W) bool {
	return !r.options.HasInfEdgeThreshold || w < r.options.InfEdgeThreshold
}

// beyond reports whether distance d exceeds the configured cap.
func (r *runner[V, W]) beyond(d W) bool {
	return r.options.HasMaxDistance && d > r.options.MaxDistance
}
