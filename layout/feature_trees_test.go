package layout

import (
	"testing"

	"github.com/spupyrev/bob/satmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeTreesBuildsModel(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	m := satmodel.NewModel()
	require.NoError(t, encodeOrder(m, g.N()))
	require.NoError(t, encodePages(m, g, 1))

	require.NoError(t, encodeTrees(m, g, 1))
	assert.Positive(t, m.ClauseCount())

	_, err := m.Father(0, 0, 0, true)
	assert.NoError(t, err)
	_, err = m.Ancestor(0, 0, 1, true)
	assert.NoError(t, err)
	_, err = m.Root(0, 0, true)
	assert.NoError(t, err)
}

func TestEncodeTreesRejectsNonPositivePageCount(t *testing.T) {
	g := buildGraph(t, 2, [][2]int{{0, 1}})
	m := satmodel.NewModel()
	err := encodeTrees(m, g, 0)
	assert.Error(t, err)
}
