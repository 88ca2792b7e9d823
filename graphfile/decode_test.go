package graphfile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/graphfile"
)

const graph1YAML = `
directed: true
vertices: [e]
edges:
  - {from: a, to: c, weight: 12}
  - {from: a, to: d, weight: 60}
  - {from: b, to: a, weight: 10}
  - {from: c, to: b, weight: 20}
  - {from: c, to: d, weight: 32}
  - {from: e, to: a, weight: 7}
`

const graph1Text = `# graph_1
a c 12
a d 60
b a 10   # back edge
c b 20

c d 32
e a 7
`

func graph1() core.Graph[string, float64] {
	return core.Graph[string, float64]{
		"a": {"c": 12, "d": 60},
		"b": {"a": 10},
		"c": {"b": 20, "d": 32},
		"d": {},
		"e": {"a": 7},
	}
}

func TestDecodeYAML_Graph1(t *testing.T) {
	b, err := graphfile.DecodeYAML(strings.NewReader(graph1YAML))
	require.NoError(t, err)
	assert.Equal(t, graph1(), b.Graph())

	table, err := dijkstra.ShortestPaths(b.Graph(), "e")
	require.NoError(t, err)
	d, ok := table.Distance("d")
	require.True(t, ok)
	assert.Equal(t, 51.0, d)
}

func TestDecodeYAML_Undirected(t *testing.T) {
	src := "directed: false\nedges:\n  - {from: x, to: y, weight: 2.5}\n"
	b, err := graphfile.DecodeYAML(strings.NewReader(src))
	require.NoError(t, err)
	assert.True(t, b.HasEdge("x", "y"))
	assert.True(t, b.HasEdge("y", "x"))
	assert.Equal(t, 2, b.Size())
}

func TestDecodeYAML_Empty(t *testing.T) {
	b, err := graphfile.DecodeYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, b.Order())
}

func TestDecodeYAML_Errors(t *testing.T) {
	cases := []struct {
		name, src, line string
	}{
		{"malformed", "edges: [\n", ""},
		{"missing to", "edges:\n  - {from: a, weight: 1}\n", "line 2"},
		{"missing weight", "edges:\n  - {from: a, to: b}\n", "line 2"},
		{"bad weight", "edges:\n  - {from: a, to: b, weight: 1}\n  - {from: a, to: c, weight: heavy}\n", "line 3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphfile.DecodeYAML(strings.NewReader(tc.src))
			require.ErrorIs(t, err, graphfile.ErrSyntax)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

func TestDecodeYAML_NegativeWeight(t *testing.T) {
	_, err := graphfile.DecodeYAML(strings.NewReader("edges:\n  - {from: a, to: b, weight: -4}\n"))
	assert.ErrorIs(t, err, graphfile.ErrSyntax)
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
	assert.Contains(t, err.Error(), "line 2")
}

func TestDecodeText_Graph1(t *testing.T) {
	b, err := graphfile.DecodeText(strings.NewReader(graph1Text))
	require.NoError(t, err)
	assert.Equal(t, graph1(), b.Graph())
}

func TestDecodeText_IsolatedVertexAndLoop(t *testing.T) {
	b, err := graphfile.DecodeText(strings.NewReader("lonely\nz z 0\n"))
	require.NoError(t, err)
	assert.True(t, b.HasVertex("lonely"))
	assert.True(t, b.HasEdge("z", "z"))
}

func TestDecodeText_Errors(t *testing.T) {
	_, err := graphfile.DecodeText(strings.NewReader("a b 1\na b\n"))
	require.ErrorIs(t, err, graphfile.ErrSyntax)
	assert.Contains(t, err.Error(), "line 2")

	_, err = graphfile.DecodeText(strings.NewReader("\n\na b x\n"))
	require.ErrorIs(t, err, graphfile.ErrSyntax)
	assert.Contains(t, err.Error(), "line 3")

	_, err = graphfile.DecodeText(strings.NewReader("a b -1\n"))
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
}

func TestLoad_DispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()
	yml := filepath.Join(dir, "g.YML")
	txt := filepath.Join(dir, "g.edges")
	require.NoError(t, os.WriteFile(yml, []byte(graph1YAML), 0o600))
	require.NoError(t, os.WriteFile(txt, []byte(graph1Text), 0o600))

	for _, path := range []string{yml, txt} {
		b, err := graphfile.Load(path)
		require.NoError(t, err, path)
		assert.Equal(t, graph1(), b.Graph(), path)
	}

	// YAML content under a text extension does not parse.
	bad := filepath.Join(dir, "g.txt")
	require.NoError(t, os.WriteFile(bad, []byte(graph1YAML), 0o600))
	_, err := graphfile.Load(bad)
	assert.ErrorIs(t, err, graphfile.ErrSyntax)

	_, err = graphfile.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
