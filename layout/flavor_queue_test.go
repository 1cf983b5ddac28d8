package layout

import (
	"testing"

	"github.com/spupyrev/bob/glayout"
	"github.com/spupyrev/bob/satmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeQueueBuildsModel(t *testing.T) {
	g := buildGraph(t, 4, cycleEdges(4))
	p := glayout.NewParams(glayout.Queue, glayout.WithQueues(2))

	m := satmodel.NewModel()
	require.NoError(t, encodeQueue(m, g, p))
	assert.Positive(t, m.VarCount())
	assert.Positive(t, m.ClauseCount())
}

func TestEncodeQueueStrictAddsGuards(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	p := glayout.NewParams(glayout.Queue, glayout.WithQueues(1), glayout.WithStrict())

	m := satmodel.NewModel()
	withStrict := satmodel.NewModel()
	require.NoError(t, encodeOrder(m, g.N()))
	require.NoError(t, encodePages(m, g, p.Queues))
	baseline := m.ClauseCount()

	require.NoError(t, encodeQueue(withStrict, g, p))
	assert.Greater(t, withStrict.ClauseCount(), baseline)
}
