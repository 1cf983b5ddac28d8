package layout

import (
	"testing"

	"github.com/spupyrev/bob/glayout"
	"github.com/spupyrev/bob/satmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjacent(t *testing.T) {
	assert.True(t, adjacent(0, 1, 1, 2))
	assert.True(t, adjacent(0, 1, 2, 0))
	assert.False(t, adjacent(0, 1, 2, 3))
}

func TestCrossClauseLiterals(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{0, 1}, {2, 3}})
	m := satmodel.NewModel()
	require.NoError(t, encodeOrder(m, 4))
	require.NoError(t, encodePages(m, g, 1))

	c, err := crossClause(m, 0, 1, 0, 2, 1, 3)
	require.NoError(t, err)
	assert.Len(t, c.Lits, 4)
	for _, l := range c.Lits {
		assert.False(t, l.Positive)
	}
}

func TestEncodeFlavorUnknown(t *testing.T) {
	m := satmodel.NewModel()
	g := buildGraph(t, 2, nil)
	p := glayout.NewParams(glayout.Flavor(99))
	err := encodeFlavor(m, g, p)
	assert.Error(t, err)
}
