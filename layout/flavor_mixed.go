package layout

import (
	"github.com/spupyrev/bob/glayout"
	"github.com/spupyrev/bob/satmodel"
)

// encodeMixed splits [0, stacks+queues) into a stack region
// [0, stacks) and a queue region [stacks, stacks+queues), guarding each
// forbidden-pattern clause on both edges sharing that specific page.
func encodeMixed(m *satmodel.Model, g *glayout.Graph, p *glayout.Params) error {
	if err := encodeOrder(m, g.N()); err != nil {
		return err
	}
	if err := encodePages(m, g, p.Stacks+p.Queues); err != nil {
		return err
	}

	edges := g.Edges()
	for index := range edges {
		if err := encodeMixedEdge(m, edges, index, p); err != nil {
			return err
		}
	}

	return nil
}

func encodeMixedEdge(m *satmodel.Model, edges []glayout.Edge, index int, p *glayout.Params) error {
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
		for page := 0; page < p.Stacks; page++ {
			if err := guardedPatternClauses(m, i, index, page, crossTuples); err != nil {
				return wrapf(KindInternal, "mixed: %w", err)
			}
		}

		nestTuples := [8][4]int{
			{e1n1, e2n1, e2n2, e1n2}, {e1n1, e2n2, e2n1, e1n2},
			{e1n2, e2n1, e2n2, e1n1}, {e1n2, e2n2, e2n1, e1n1},
			{e2n1, e1n1, e1n2, e2n2}, {e2n1, e1n2, e1n1, e2n2},
			{e2n2, e1n1, e1n2, e2n1}, {e2n2, e1n2, e1n1, e2n1},
		}
		for page := p.Stacks; page < p.Stacks+p.Queues; page++ {
			if err := guardedPatternClauses(m, i, index, page, nestTuples); err != nil {
				return wrapf(KindInternal, "mixed: %w", err)
			}
		}
	}

	return nil
}

// guardedPatternClauses emits one clause per tuple: the forbidden
// pattern clause extended with page(i,page,-) and page(index,page,-),
// so the clause only fires when both edges occupy the given page.
func guardedPatternClauses(m *satmodel.Model, i, index, page int, tuples [8][4]int) error {
	pi, err := m.Page(i, page, false)
	if err != nil {
		return err
	}
	pIndex, err := m.Page(index, page, false)
	if err != nil {
		return err
	}
	for _, t := range tuples {
		c, err := crossClause(m, i, index, t[0], t[1], t[2], t[3])
		if err != nil {
			return err
		}
		m.AddClause(c.With(pi, pIndex))
	}

	return nil
}
