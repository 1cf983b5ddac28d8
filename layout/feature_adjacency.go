package layout

import (
	"github.com/spupyrev/bob/satmodel"
)

// encodeAdjacency adds the spine-adjacency feature: adj(i,j) holds when
// i immediately precedes j in the vertex order, with no vertex landing
// strictly between them.
func encodeAdjacency(m *satmodel.Model, n int) error {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if err := m.AddAdj(i, j); err != nil {
				return wrapf(KindInternal, "adjacency: %w", err)
			}
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			adjNeg, err := m.Adj(i, j, false)
			if err != nil {
				return wrapf(KindInternal, "adjacency: %w", err)
			}
			relPos, err := m.Rel(i, j, true)
			if err != nil {
				return wrapf(KindInternal, "adjacency: %w", err)
			}
			m.AddClause(satmodel.NewClause(adjNeg, relPos))
		}
	}

	for j := 1; j < n; j++ {
		lits := make([]satmodel.Lit, 0, n-1)
		for i := 0; i < n; i++ {
			if i == j {
				continue
			}
			lit, err := m.Adj(i, j, true)
			if err != nil {
				return wrapf(KindInternal, "adjacency: %w", err)
			}
			lits = append(lits, lit)
		}
		m.AddClause(satmodel.NewClause(lits...))
	}

	for i := 0; i < n; i++ {
		for x := 0; x < n; x++ {
			if x == i {
				continue
			}
			for j := 0; j < n; j++ {
				if j == i || j == x {
					continue
				}
				ri, err := m.Rel(i, x, false)
				if err != nil {
					return wrapf(KindInternal, "adjacency: %w", err)
				}
				rx, err := m.Rel(x, j, false)
				if err != nil {
					return wrapf(KindInternal, "adjacency: %w", err)
				}
				an, err := m.Adj(i, j, false)
				if err != nil {
					return wrapf(KindInternal, "adjacency: %w", err)
				}
				m.AddClause(satmodel.NewClause(ri, rx, an))
			}
		}
	}

	return nil
}
