// SPDX-License-Identifier: MIT

package graphfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeYAML reads a YAML graph document from r.
//
// An empty document yields an empty directed graph.
//
// Errors:
//   - ErrSyntax for malformed YAML, missing from/to/weight, and negative or
//     NaN weights (the latter also wrap core.ErrNegativeWeight).
func DecodeYAML(r io.Reader) (*Builder, error) {
	var root yaml.Node
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return newBuilder(true), nil
		}

		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	var doc document
	if err := root.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	directed := doc.Directed == nil || *doc.Directed
	b := newBuilder(directed)
	for _, v := range doc.Vertices {
		b.AddVertex(v)
	}
	for i := range doc.Edges {
		n := &doc.Edges[i]
		var e edge
		if err := n.Decode(&e); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, n.Line, err)
		}
		switch {
		case e.From == "" || e.To == "":
			return nil, fmt.Errorf("%w: line %d: edge needs both from and to", ErrSyntax, n.Line)
		case e.Weight == nil:
			return nil, fmt.Errorf("%w: line %d: edge %s→%s has no weight", ErrSyntax, n.Line, e.From, e.To)
		}
		if err := b.AddEdge(e.From, e.To, *e.Weight); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrSyntax, n.Line, err)
		}
	}

	return b, nil
}

// DecodeText reads a whitespace-separated edge list from r: "from to weight"
// per line, or a single vertex name. Blank lines and everything after '#'
// are ignored. Edges are directed.
func DecodeText(r io.Reader) (*Builder, error) {
	b := newBuilder(true)
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text, _, _ := strings.Cut(sc.Text(), "#")
		fields := strings.Fields(text)
		switch len(fields) {
		case 0:
			continue
		case 1:
			b.AddVertex(fields[0])
		case 3:
			w, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: weight %q: %v", ErrSyntax, line, fields[2], err)
			}
			if err = b.AddEdge(fields[0], fields[1], w); err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrSyntax, line, err)
			}
		default:
			return nil, fmt.Errorf("%w: line %d: want 1 or 3 fields, got %d", ErrSyntax, line, len(fields))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphfile: read: %w", err)
	}

	return b, nil
}

// Load opens path and decodes it, choosing YAML for .yaml/.yml and the text
// format otherwise.
func Load(path string) (*Builder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}
	defer f.Close()

	var b *Builder
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		b, err = DecodeYAML(f)
	default:
		b, err = DecodeText(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return b, nil
}
