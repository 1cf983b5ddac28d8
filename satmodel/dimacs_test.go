package satmodel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDIMACS(t *testing.T) {
	m := NewModel()
	require.NoError(t, m.AddRel(0, 1))
	require.NoError(t, m.AddPage(0, 0))
	l1, err := m.Rel(0, 1, true)
	require.NoError(t, err)
	l2, err := m.Page(0, 0, false)
	require.NoError(t, err)
	m.AddClause(NewClause(l1, l2))

	var buf strings.Builder
	require.NoError(t, m.WriteDIMACS(&buf))

	out := buf.String()
	assert.Equal(t, "p cnf 2 1\n1 -2 0\n", out)
}

func TestReadDIMACSResultSatisfiable(t *testing.T) {
	in := "c comment\ns SATISFIABLE\nv 1 -2 0\nv 3 0\n"
	res, err := ReadDIMACSResult(strings.NewReader(in), 3)
	require.NoError(t, err)
	assert.True(t, res.Satisfiable())

	v0, err := res.Value(0)
	require.NoError(t, err)
	assert.True(t, v0)

	v1, err := res.Value(1)
	require.NoError(t, err)
	assert.False(t, v1)

	lit, err := res.Lit(Neg(1))
	require.NoError(t, err)
	assert.True(t, lit)
}

func TestReadDIMACSResultUnsatisfiable(t *testing.T) {
	res, err := ReadDIMACSResult(strings.NewReader("s UNSATISFIABLE\n"), 0)
	require.NoError(t, err)
	assert.False(t, res.Satisfiable())

	_, err = res.Value(0)
	assert.ErrorIs(t, err, ErrUnassignedVar)
}

func TestReadDIMACSResultMissingStatus(t *testing.T) {
	_, err := ReadDIMACSResult(strings.NewReader("v 1 2 0\n"), 2)
	assert.ErrorIs(t, err, ErrNoResult)
}

func TestReadDIMACSResultCountMismatch(t *testing.T) {
	_, err := ReadDIMACSResult(strings.NewReader("s SATISFIABLE\nv 1 0\n"), 2)
	assert.ErrorIs(t, err, ErrVarCountMismatch)
}

func TestReadDIMACSResultMalformedLiteral(t *testing.T) {
	_, err := ReadDIMACSResult(strings.NewReader("s SATISFIABLE\nv x 0\n"), 1)
	assert.Error(t, err)
}
