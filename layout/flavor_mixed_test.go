package layout

import (
	"testing"

	"github.com/spupyrev/bob/glayout"
	"github.com/spupyrev/bob/satmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeMixedBuildsModel(t *testing.T) {
	g := buildGraph(t, 4, cycleEdges(4))
	p := glayout.NewParams(glayout.Mixed, glayout.WithStacks(1), glayout.WithQueues(1))

	m := satmodel.NewModel()
	require.NoError(t, encodeMixed(m, g, p))
	assert.Positive(t, m.VarCount())
	assert.Positive(t, m.ClauseCount())

	// page budget is stacks+queues
	_, err := m.Page(0, 1, true)
	assert.NoError(t, err)
}
