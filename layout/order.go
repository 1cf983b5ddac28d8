package layout

import "github.com/spupyrev/bob/satmodel"

// encodeOrder creates rel[(i,j)] for every 0 <= i < j < n and asserts
// transitivity over every ordered triple, so any satisfying assignment
// corresponds to a total linear order on V.
func encodeOrder(m *satmodel.Model, n int) error {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := m.AddRel(i, j); err != nil {
				return wrapf(KindInternal, "order: addRel(%d, %d): %w", i, j, err)
			}
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				ij, err := m.Rel(i, j, false)
				if err != nil {
					return wrapf(KindInternal, "order: %w", err)
				}
				jk, err := m.Rel(j, k, false)
				if err != nil {
					return wrapf(KindInternal, "order: %w", err)
				}
				ik, err := m.Rel(i, k, true)
				if err != nil {
					return wrapf(KindInternal, "order: %w", err)
				}
				m.AddClause(satmodel.NewClause(ij, jk, ik))

				ij2, _ := m.Rel(i, j, true)
				jk2, _ := m.Rel(j, k, true)
				ik2, _ := m.Rel(i, k, false)
				m.AddClause(satmodel.NewClause(ij2, jk2, ik2))
			}
		}
	}

	return nil
}
