package layout

import (
	"testing"

	"github.com/spupyrev/bob/glayout"
	"github.com/spupyrev/bob/satmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeStackBuildsModel(t *testing.T) {
	g := buildGraph(t, 4, cycleEdges(4))
	p := glayout.NewParams(glayout.Stack, glayout.WithStacks(2))

	m := satmodel.NewModel()
	require.NoError(t, encodeStack(m, g, p))
	assert.Positive(t, m.VarCount())
	assert.Positive(t, m.ClauseCount())
}

func TestEncodeStackSkipsAdjacentEdgePairs(t *testing.T) {
	// a path 0-1-2: edges (0,1) and (1,2) share vertex 1, so no crossing
	// clause should be emitted between them.
	g := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}})
	p := glayout.NewParams(glayout.Stack, glayout.WithStacks(1))

	m := satmodel.NewModel()
	require.NoError(t, encodeStack(m, g, p))

	// only order + page clauses, no crossing clauses (8 per non-adjacent pair):
	// 2 transitivity + 2 at-least-one-page + 1 same-page clause
	before := m.ClauseCount()
	assert.Equal(t, 5, before)
}
