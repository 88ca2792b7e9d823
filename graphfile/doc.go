// SPDX-License-Identifier: MIT

// Package graphfile decodes weighted graphs from files into a core.Builder.
//
// Two formats are supported.
//
// YAML (DecodeYAML, gopkg.in/yaml.v3):
//
//	directed: true        # optional, default true
//	vertices: [a, b, e]   # optional, isolated vertices
//	edges:
//	  - {from: a, to: c, weight: 12}
//	  - {from: c, to: b, weight: 20}
//
// Plain text (DecodeText), one directed edge per line:
//
//	# comment
//	a c 12
//	c b 20
//	e          # a single token declares an isolated vertex
//
// Vertices are strings and weights float64. Self-loops are accepted; negative
// or NaN weights are rejected. Every decoding error wraps ErrSyntax and names
// the 1-based line it was found on.
//
// Load picks the decoder from the file extension (.yaml / .yml, anything else
// is text).
package graphfile
