// SPDX-License-Identifier: MIT

package graphfile

import (
	"errors"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/shortpath/core"
)

// Sentinel errors for graph file decoding.
var (
	// ErrSyntax indicates malformed input; the wrapping error carries the line number.
	ErrSyntax = errors.New("graphfile: syntax error")
)

// Builder is the graph type produced by every decoder.
type Builder = core.Builder[string, float64]

// document is the YAML layout. Edges stay as raw nodes so that semantic
// errors can report the line of the offending entry.
type document struct {
	Directed *bool       `yaml:"directed"`
	Vertices []string    `yaml:"vertices"`
	Edges    []yaml.Node `yaml:"edges"`
}

// edge is a single YAML edge entry.
type edge struct {
	From   string   `yaml:"from"`
	To     string   `yaml:"to"`
	Weight *float64 `yaml:"weight"`
}

// newBuilder returns the Builder every decoder fills: self-loops allowed,
// mirrored edges only for undirected input.
func newBuilder(directed bool) *Builder {
	opts := []core.BuilderOption{core.WithLoops()}
	if !directed {
		opts = append(opts, core.WithUndirected())
	}

	return core.NewBuilder[string, float64](opts...)
}
