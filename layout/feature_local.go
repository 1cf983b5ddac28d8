package layout

import (
	"github.com/spupyrev/bob/glayout"
	"github.com/spupyrev/bob/satmodel"
)

// encodeLocal adds the local-l feature: every vertex is incident to at
// most limit distinct pages. vAdj[v,p] tracks
// whether v has at least one incident edge on page p; a pigeonhole
// clause over every (limit+1)-subset of pages forbids more than limit
// of them being used, and a second pigeonhole over every (limit+1)-subset
// of v's incident edges forces two of them to share a page.
func encodeLocal(m *satmodel.Model, g *glayout.Graph, pageCount, limit int) error {
	n := g.N()
	edges := g.Edges()

	incident := make([][]int, n)
	for e, edge := range edges {
		incident[edge.U] = append(incident[edge.U], e)
		incident[edge.V] = append(incident[edge.V], e)
	}

	for v := 0; v < n; v++ {
		if len(incident[v]) > 40 {
			return wrapf(KindConstraint, "local: vertex %d has degree %d: %w", v, len(incident[v]), ErrDegreeTooHigh)
		}
	}

	for v := 0; v < n; v++ {
		for p := 0; p < pageCount; p++ {
			if err := m.AddVAdj(v, p); err != nil {
				return wrapf(KindInternal, "local: %w", err)
			}
		}
	}

	for v := 0; v < n; v++ {
		for p := 0; p < pageCount; p++ {
			lits := make([]satmodel.Lit, 0, len(incident[v])+1)
			vAdjNeg, err := m.VAdj(v, p, false)
			if err != nil {
				return wrapf(KindInternal, "local: %w", err)
			}
			lits = append(lits, vAdjNeg)
			for _, e := range incident[v] {
				lit, err := m.Page(e, p, true)
				if err != nil {
					return wrapf(KindInternal, "local: %w", err)
				}
				lits = append(lits, lit)
			}
			m.AddClause(satmodel.NewClause(lits...))

			for _, e := range incident[v] {
				pageNeg, err := m.Page(e, p, false)
				if err != nil {
					return wrapf(KindInternal, "local: %w", err)
				}
				vAdjPos, err := m.VAdj(v, p, true)
				if err != nil {
					return wrapf(KindInternal, "local: %w", err)
				}
				m.AddClause(satmodel.NewClause(pageNeg, vAdjPos))
			}
		}
	}

	pageSubsets, err := combinations(pageCount, limit+1)
	if err != nil {
		return wrapf(KindConstraint, "local: %w", err)
	}
	for v := 0; v < n; v++ {
		for _, subset := range pageSubsets {
			lits := make([]satmodel.Lit, 0, len(subset))
			for _, p := range subset {
				lit, err := m.VAdj(v, p, false)
				if err != nil {
					return wrapf(KindInternal, "local: %w", err)
				}
				lits = append(lits, lit)
			}
			m.AddClause(satmodel.NewClause(lits...))
		}
	}

	for v := 0; v < n; v++ {
		edgeSubsets, err := combinations(len(incident[v]), limit+1)
		if err != nil {
			return wrapf(KindConstraint, "local: %w", err)
		}
		for _, subset := range edgeSubsets {
			lits := make([]satmodel.Lit, 0, len(subset)*(len(subset)-1)/2)
			for ai := 0; ai < len(subset); ai++ {
				for bi := ai + 1; bi < len(subset); bi++ {
					e1 := incident[v][subset[ai]]
					e2 := incident[v][subset[bi]]
					if e1 == e2 {
						continue
					}
					lo, hi := e1, e2
					if lo > hi {
						lo, hi = hi, lo
					}
					lit, err := m.SamePage(lo, hi, true)
					if err != nil {
						return wrapf(KindInternal, "local: %w", err)
					}
					lits = append(lits, lit)
				}
			}
			m.AddClause(satmodel.NewClause(lits...))
		}
	}

	return nil
}
