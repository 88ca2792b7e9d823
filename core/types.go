// SPDX-License-Identifier: MIT

package core

import (
	"cmp"
	"errors"
	"sync"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeWeight indicates an edge weight below zero (or NaN).
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDanglingEdge indicates an edge whose target is not a vertex key.
	ErrDanglingEdge = errors.New("core: edge target is not a vertex")
)

// Weight is the set of edge weight types: totally ordered and summable.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Graph is a directed, weighted adjacency map: vertex → (neighbor → weight).
//
// A nil Graph is a valid empty graph.
type Graph[V cmp.Ordered, W Weight] map[V]map[V]W

// BuilderOption configures behavior of a Builder before creation.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	undirected bool // mirror every edge
	allowLoops bool // allow self-loops
}

// WithUndirected makes AddEdge store both directions of every edge.
func WithUndirected() BuilderOption {
	return func(c *builderConfig) { c.undirected = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() BuilderOption {
	return func(c *builderConfig) { c.allowLoops = true }
}

// Builder accumulates vertices and edges and hands out Graph snapshots.
//
// mu protects adj; size counts stored directed arcs.
type Builder[V cmp.Ordered, W Weight] struct {
	mu   sync.RWMutex
	cfg  builderConfig
	adj  Graph[V, W]
	size int
}

// NewBuilder creates an empty Builder with the given options.
// By default, edges are directed and self-loops are rejected.
// Complexity: O(1)
func NewBuilder[V cmp.Ordered, W Weight](opts ...BuilderOption) *Builder[V, W] {
	b := &Builder[V, W]{adj: make(Graph[V, W])}
	for _, opt := range opts {
		opt(&b.cfg)
	}

	return b
}

// badWeight reports whether w is negative or NaN.
func badWeight[W Weight](w W) bool {
	var zero W

	return !(w >= zero)
}
