// SPDX-License-Identifier: MIT
package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/core"
)

// TestAddEdge_CreatesEndpoints verifies that AddEdge registers both endpoints,
// so the target of every arc is a vertex key.
func TestAddEdge_CreatesEndpoints(t *testing.T) {
	b := core.NewBuilder[string, int]()
	require.NoError(t, b.AddEdge("A", "B", 3))

	assert.True(t, b.HasVertex("A"))
	assert.True(t, b.HasVertex("B"))
	assert.True(t, b.HasEdge("A", "B"))
	assert.False(t, b.HasEdge("B", "A"), "builder is directed by default")
	assert.Equal(t, 2, b.Order())
	assert.Equal(t, 1, b.Size())

	g := b.Graph()
	assert.Equal(t, core.Graph[string, int]{"A": {"B": 3}, "B": {}}, g)
	assert.NoError(t, g.Validate())
}

func TestAddEdge_ReplacesWeight(t *testing.T) {
	b := core.NewBuilder[string, int]()
	require.NoError(t, b.AddEdge("A", "B", 3))
	require.NoError(t, b.AddEdge("A", "B", 7))

	assert.Equal(t, 1, b.Size())
	assert.Equal(t, 7, b.Graph()["A"]["B"])
}

func TestAddEdge_Undirected(t *testing.T) {
	b := core.NewBuilder[string, int](core.WithUndirected())
	require.NoError(t, b.AddEdge("A", "B", 4))

	assert.True(t, b.HasEdge("A", "B"))
	assert.True(t, b.HasEdge("B", "A"))
	assert.Equal(t, 2, b.Size())

	require.NoError(t, b.RemoveEdge("B", "A"))
	assert.False(t, b.HasEdge("A", "B"), "removing one direction removes the mirror")
	assert.Equal(t, 0, b.Size())
	assert.Equal(t, 2, b.Order(), "vertices survive edge removal")
}

func TestAddEdge_Loops(t *testing.T) {
	b := core.NewBuilder[string, int]()
	assert.ErrorIs(t, b.AddEdge("X", "X", 0), core.ErrLoopNotAllowed)
	assert.False(t, b.HasVertex("X"))

	lb := core.NewBuilder[string, int](core.WithLoops(), core.WithUndirected())
	require.NoError(t, lb.AddEdge("X", "X", 0))
	assert.Equal(t, 1, lb.Size(), "a self-loop is stored once even when undirected")
}

func TestAddEdge_BadWeight(t *testing.T) {
	b := core.NewBuilder[string, int64]()
	err := b.AddEdge("A", "B", -1)
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
	assert.Contains(t, err.Error(), "A→B")
	assert.Equal(t, 0, b.Order())

	fb := core.NewBuilder[int, float64]()
	assert.ErrorIs(t, fb.AddEdge(1, 2, math.NaN()), core.ErrNegativeWeight)
	assert.NoError(t, fb.AddEdge(1, 2, 0.5))
}

func TestRemoveEdge_NotFound(t *testing.T) {
	b := core.NewBuilder[string, int]()
	b.AddVertex("A")
	assert.ErrorIs(t, b.RemoveEdge("A", "B"), core.ErrEdgeNotFound)
}

func TestGraph_SnapshotIsIndependent(t *testing.T) {
	b := core.NewBuilder[string, int]()
	require.NoError(t, b.AddEdge("A", "B", 1))

	snap := b.Graph()
	require.NoError(t, b.AddEdge("A", "C", 2))
	snap["A"]["Z"] = 9

	assert.False(t, snap.HasVertex("C"), "snapshot must not see later builder edits")
	assert.False(t, b.HasEdge("A", "Z"), "builder must not see snapshot edits")
}

func TestClear_PreservesOptions(t *testing.T) {
	b := core.NewBuilder[string, int](core.WithUndirected())
	require.NoError(t, b.AddEdge("A", "B", 1))
	b.Clear()
	assert.Equal(t, 0, b.Order())
	assert.Equal(t, 0, b.Size())

	require.NoError(t, b.AddEdge("C", "D", 1))
	assert.True(t, b.HasEdge("D", "C"))
}
