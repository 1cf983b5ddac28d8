package layout

import (
	"testing"

	"github.com/spupyrev/bob/satmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeOrderVarAndClauseCounts(t *testing.T) {
	m := satmodel.NewModel()
	require.NoError(t, encodeOrder(m, 4))

	// rel: C(4,2) = 6 variables
	assert.Equal(t, 6, m.VarCount())

	// transitivity: 2 clauses per ordered triple, C(4,3) = 4 triples
	assert.Equal(t, 8, m.ClauseCount())
}

func TestEncodeOrderRejectsDuplicateCall(t *testing.T) {
	m := satmodel.NewModel()
	require.NoError(t, encodeOrder(m, 3))
	err := encodeOrder(m, 3)
	assert.Error(t, err)
}
