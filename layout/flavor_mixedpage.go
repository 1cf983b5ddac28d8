package layout

import (
	"github.com/spupyrev/bob/glayout"
	"github.com/spupyrev/bob/satmodel"
)

// encodeMixedPages gives every page a solver-chosen pageType[p] boolean
// (true = stack, false = queue) and, for each non-adjacent edge pair
// and each page, emits both the stack-pattern clause (guarded by
// pageType(p,-) so it only fires on stack-typed pages) and the
// queue-pattern clause (guarded by pageType(p,+)), each further guarded
// by both edges occupying that page.
func encodeMixedPages(m *satmodel.Model, g *glayout.Graph, p *glayout.Params) error {
	if err := encodeOrder(m, g.N()); err != nil {
		return err
	}
	if err := encodePages(m, g, p.MixedPages); err != nil {
		return err
	}
	for page := 0; page < p.MixedPages; page++ {
		if err := m.AddPageType(page); err != nil {
			return wrapf(KindInternal, "mixedPages: addPageType(%d): %w", page, err)
		}
	}

	edges := g.Edges()
	for index := range edges {
		if err := encodeMixedPageEdge(m, edges, index, p); err != nil {
			return err
		}
	}

	return nil
}

func encodeMixedPageEdge(m *satmodel.Model, edges []glayout.Edge, index int, p *glayout.Params) error {
	e1n1, e1n2 := edges[index].U, edges[index].V

	for i := 0; i < index; i++ {
		e2n1, e2n2 := edges[i].U, edges[i].V
		if adjacent(e1n1, e1n2, e2n1, e2n2) {
			continue
		}

		crossTuples := [8][4]int{
			{e1n1, e2n1, e1n2, e2n2}, {e1n1, e2n2, e1n2, e2n1},
			{e1n2, e2n1, e1n1, e2n2}, {e1n2, e2n2, e1n1, e2n1},
			{e2n1, e1n1, e2n2, e1n2}, {e2n1, e1n2, e2n2, e1n1},
			{e2n2, e1n1, e2n1, e1n2}, {e2n2, e1n2, e2n1, e1n1},
		}
		nestTuples := [8][4]int{
			{e1n1, e2n1, e2n2, e1n2}, {e1n1, e2n2, e2n1, e1n2},
			{e1n2, e2n1, e2n2, e1n1}, {e1n2, e2n2, e2n1, e1n1},
			{e2n1, e1n1, e1n2, e2n2}, {e2n1, e1n2, e1n1, e2n2},
			{e2n2, e1n1, e1n2, e2n1}, {e2n2, e1n2, e1n1, e2n1},
		}

		for page := 0; page < p.MixedPages; page++ {
			pi, err := m.Page(i, page, false)
			if err != nil {
				return wrapf(KindInternal, "mixedPages: %w", err)
			}
			pIndex, err := m.Page(index, page, false)
			if err != nil {
				return wrapf(KindInternal, "mixedPages: %w", err)
			}
			typeNeg, err := m.PageType(page, false)
			if err != nil {
				return wrapf(KindInternal, "mixedPages: %w", err)
			}
			typePos, err := m.PageType(page, true)
			if err != nil {
				return wrapf(KindInternal, "mixedPages: %w", err)
			}

			for _, t := range crossTuples {
				c, err := crossClause(m, i, index, t[0], t[1], t[2], t[3])
				if err != nil {
					return wrapf(KindInternal, "mixedPages: %w", err)
				}
				m.AddClause(c.With(pi, pIndex, typeNeg))
			}
			for _, t := range nestTuples {
				c, err := crossClause(m, i, index, t[0], t[1], t[2], t[3])
				if err != nil {
					return wrapf(KindInternal, "mixedPages: %w", err)
				}
				m.AddClause(c.With(pi, pIndex, typePos))
			}
		}
	}

	return nil
}
