package layout

import (
	"testing"

	"github.com/spupyrev/bob/glayout"
	"github.com/spupyrev/bob/satmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeConstraintsNodeRel(t *testing.T) {
	b, err := glayout.NewBuilder(3)
	require.NoError(t, err)
	_, err = b.AddEdge(0, 1)
	require.NoError(t, err)
	b.Constraints().AddNodeRel(0, 1)
	g, err := b.Build()
	require.NoError(t, err)

	p := glayout.NewParams(glayout.Stack, glayout.WithStacks(1))
	m := satmodel.NewModel()
	require.NoError(t, encodeOrder(m, g.N()))
	require.NoError(t, encodePages(m, g, p.Stacks))

	require.NoError(t, encodeConstraints(m, g, p))

	rel, err := m.Rel(0, 1, true)
	require.NoError(t, err)
	found := false
	for _, c := range m.Clauses() {
		if len(c.Lits) == 1 && c.Lits[0] == rel {
			found = true
		}
	}
	assert.True(t, found)
}

func TestEncodeConstraintsDistinctPage(t *testing.T) {
	b, err := glayout.NewBuilder(3)
	require.NoError(t, err)
	_, err = b.AddEdge(0, 1)
	require.NoError(t, err)
	_, err = b.AddEdge(1, 2)
	require.NoError(t, err)
	b.Constraints().AddDistinctPage(0, 1)
	g, err := b.Build()
	require.NoError(t, err)

	p := glayout.NewParams(glayout.Stack, glayout.WithStacks(2))
	m := satmodel.NewModel()
	require.NoError(t, encodeOrder(m, g.N()))
	require.NoError(t, encodePages(m, g, p.Stacks))

	require.NoError(t, encodeConstraints(m, g, p))

	sp, err := m.SamePage(0, 1, false)
	require.NoError(t, err)
	found := false
	for _, c := range m.Clauses() {
		if len(c.Lits) == 1 && c.Lits[0] == sp {
			found = true
		}
	}
	assert.True(t, found)
}

func TestEncodeConstraintsGroupEdgePages(t *testing.T) {
	b, err := glayout.NewBuilder(4)
	require.NoError(t, err)
	_, err = b.AddEdge(0, 1)
	require.NoError(t, err)
	_, err = b.AddEdge(1, 2)
	require.NoError(t, err)
	_, err = b.AddEdge(2, 3)
	require.NoError(t, err)
	b.Constraints().AddGroupEdgePages(1, []int{0, 1, 2})
	g, err := b.Build()
	require.NoError(t, err)

	p := glayout.NewParams(glayout.Stack, glayout.WithStacks(2))
	m := satmodel.NewModel()
	require.NoError(t, encodeOrder(m, g.N()))
	require.NoError(t, encodePages(m, g, p.Stacks))

	require.NoError(t, encodeConstraints(m, g, p))
	assert.Positive(t, m.ClauseCount())
}
