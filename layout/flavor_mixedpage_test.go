package layout

import (
	"testing"

	"github.com/spupyrev/bob/glayout"
	"github.com/spupyrev/bob/satmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeMixedPagesBuildsModel(t *testing.T) {
	g := buildGraph(t, 4, cycleEdges(4))
	p := glayout.NewParams(glayout.MixedPages, glayout.WithMixedPages(2))

	m := satmodel.NewModel()
	require.NoError(t, encodeMixedPages(m, g, p))
	assert.Positive(t, m.VarCount())

	_, err := m.PageType(0, true)
	assert.NoError(t, err)
	_, err = m.PageType(1, true)
	assert.NoError(t, err)
}
