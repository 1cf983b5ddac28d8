package layout

import (
	"testing"

	"github.com/spupyrev/bob/glayout"
	"github.com/spupyrev/bob/satmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeOrderAndPages(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}})
	p := glayout.NewParams(glayout.Stack, glayout.WithStacks(1))

	m := satmodel.NewModel()
	require.NoError(t, encodeStack(m, g, p))
	require.Equal(t, 6, m.VarCount())

	result := &satmodel.Result{
		Status: "SATISFIABLE",
		Vars: map[int]bool{
			0: true, 1: true, 2: true, // rel(0,1) rel(0,2) rel(1,2) all true
			3: true, 4: true, // both edges on page 0
			5: true, // samePage(0,1)
		},
	}

	layout, err := decode(m, result, g, p)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, layout.Order)
	assert.Equal(t, [][]int{{0}, {0}}, layout.Pages)
	assert.Nil(t, layout.Tracks)
}

func TestDecodeOrderRejectsIncompletePermutation(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}})
	p := glayout.NewParams(glayout.Stack, glayout.WithStacks(1))

	m := satmodel.NewModel()
	require.NoError(t, encodeStack(m, g, p))

	result := &satmodel.Result{
		Status: "SATISFIABLE",
		Vars: map[int]bool{
			0: true, 1: false, 2: true, // contradictory: 0<1, 2<0, 1<2
			3: true, 4: true, 5: true,
		},
	}

	_, err := decode(m, result, g, p)
	assert.ErrorIs(t, err, ErrDecodeOrder)
}

func TestDecodePagesRejectsMultiplePages(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}})
	p := glayout.NewParams(glayout.Stack, glayout.WithStacks(2))

	m := satmodel.NewModel()
	require.NoError(t, encodeStack(m, g, p))

	// find the two page vars for edge 0 and force both true
	p00, err := m.Page(0, 0, true)
	require.NoError(t, err)
	p01, err := m.Page(0, 1, true)
	require.NoError(t, err)

	vars := make(map[int]bool)
	for i := 0; i < m.VarCount(); i++ {
		vars[i] = false
	}
	vars[p00.Var] = true
	vars[p01.Var] = true

	result := &satmodel.Result{Status: "SATISFIABLE", Vars: vars}
	_, err = decode(m, result, g, p)
	assert.ErrorIs(t, err, ErrDecodePage)
}
