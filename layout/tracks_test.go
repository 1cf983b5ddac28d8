package layout

import (
	"testing"

	"github.com/spupyrev/bob/satmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeTracksVarCounts(t *testing.T) {
	m := satmodel.NewModel()
	require.NoError(t, encodeTracks(m, 3, 2))

	// track(v,t): 3*2 = 6
	assert.True(t, m.VarCount() >= 6)

	_, err := m.Track(0, 0, true)
	assert.NoError(t, err)

	_, err = m.SameTrack(0, 1, true)
	assert.NoError(t, err)
}

func TestEncodeTracksEmptyInputCreatesNothing(t *testing.T) {
	m := satmodel.NewModel()
	err := encodeTracks(m, 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, 0, m.VarCount())
}
