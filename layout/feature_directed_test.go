package layout

import (
	"testing"

	"github.com/spupyrev/bob/glayout"
	"github.com/spupyrev/bob/satmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDirectedAssertsUnitClause(t *testing.T) {
	b, err := glayout.NewBuilder(2)
	require.NoError(t, err)
	_, err = b.AddEdge(0, 1)
	require.NoError(t, err)
	require.NoError(t, b.SetDirections([]bool{false}))
	g, err := b.Build()
	require.NoError(t, err)

	m := satmodel.NewModel()
	require.NoError(t, encodeOrder(m, g.N()))
	require.NoError(t, encodeDirected(m, g))

	rel, err := m.Rel(1, 0, true)
	require.NoError(t, err)
	found := false
	for _, c := range m.Clauses() {
		if len(c.Lits) == 1 && c.Lits[0] == rel {
			found = true
		}
	}
	assert.True(t, found, "expected unit clause asserting rel(1,0)")
}

func TestEncodeDirectedFailsWithoutDirection(t *testing.T) {
	g := buildGraph(t, 2, [][2]int{{0, 1}})
	m := satmodel.NewModel()
	require.NoError(t, encodeOrder(m, g.N()))

	err := encodeDirected(m, g)
	assert.Error(t, err)
}
