package layout

import (
	"testing"

	"github.com/spupyrev/bob/glayout"
	"github.com/stretchr/testify/require"
)

// buildGraph constructs a Graph with n vertices and the given edges,
// failing the test on any builder error.
func buildGraph(t *testing.T, n int, edges [][2]int) *glayout.Graph {
	t.Helper()
	b, err := glayout.NewBuilder(n)
	require.NoError(t, err)
	for _, e := range edges {
		_, err := b.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

// cycleEdges returns the edges of an n-vertex cycle (n >= 3).
func cycleEdges(n int) [][2]int {
	edges := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, [2]int{i, (i + 1) % n})
	}

	return edges
}
