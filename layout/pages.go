package layout

import (
	"github.com/spupyrev/bob/glayout"
	"github.com/spupyrev/bob/satmodel"
)

// encodePages creates page[(e,p)] for every edge and every page in
// [0, pageCount), at-least-one/at-most-one clauses, and the derived
// sp[(e1,e2)] "same page" family. Edges flagged multi-page in the
// graph's constraints are exempted from the at-most-one clause.
func encodePages(m *satmodel.Model, g *glayout.Graph, pageCount int) error {
	edgeCount := g.EdgeCount()

	for e := 0; e < edgeCount; e++ {
		for p := 0; p < pageCount; p++ {
			if err := m.AddPage(e, p); err != nil {
				return wrapf(KindInternal, "pages: addPage(%d, %d): %w", e, p, err)
			}
		}
	}

	// at least one page
	for e := 0; e < edgeCount; e++ {
		lits := make([]satmodel.Lit, 0, pageCount)
		for p := 0; p < pageCount; p++ {
			l, err := m.Page(e, p, true)
			if err != nil {
				return wrapf(KindInternal, "pages: %w", err)
			}
			lits = append(lits, l)
		}
		m.AddClause(satmodel.NewClause(lits...))
	}

	// at most one page, unless multiPage[e]
	for e := 0; e < edgeCount; e++ {
		if g.Constraints().IsMultiPage(e) {
			continue
		}
		for p := 0; p < pageCount; p++ {
			for q := p + 1; q < pageCount; q++ {
				lp, err := m.Page(e, p, false)
				if err != nil {
					return wrapf(KindInternal, "pages: %w", err)
				}
				lq, err := m.Page(e, q, false)
				if err != nil {
					return wrapf(KindInternal, "pages: %w", err)
				}
				m.AddClause(satmodel.NewClause(lp, lq))
			}
		}
	}

	// same-page derived variables
	for e1 := 0; e1 < edgeCount; e1++ {
		for e2 := e1 + 1; e2 < edgeCount; e2++ {
			if err := m.AddSamePage(e1, e2); err != nil {
				return wrapf(KindInternal, "pages: addSamePage(%d, %d): %w", e1, e2, err)
			}
			multi1 := g.Constraints().IsMultiPage(e1)
			multi2 := g.Constraints().IsMultiPage(e2)

			for p1 := 0; p1 < pageCount; p1++ {
				for p2 := 0; p2 < pageCount; p2++ {
					if p1 != p2 && (multi1 || multi2) {
						continue
					}
					l1, err := m.Page(e1, p1, false)
					if err != nil {
						return wrapf(KindInternal, "pages: %w", err)
					}
					l2, err := m.Page(e2, p2, false)
					if err != nil {
						return wrapf(KindInternal, "pages: %w", err)
					}
					sp, err := m.SamePage(e1, e2, p1 == p2)
					if err != nil {
						return wrapf(KindInternal, "pages: %w", err)
					}
					m.AddClause(satmodel.NewClause(l1, l2, sp))
				}
			}
		}
	}

	return nil
}
