package layout

import (
	"github.com/spupyrev/bob/glayout"
	"github.com/spupyrev/bob/satmodel"
)

// encodeStack builds the order and page variables, then forbids every
// crossing pattern between non-adjacent edge pairs on the same page.
func encodeStack(m *satmodel.Model, g *glayout.Graph, p *glayout.Params) error {
	if err := encodeOrder(m, g.N()); err != nil {
		return err
	}
	if err := encodePages(m, g, p.Stacks); err != nil {
		return err
	}

	edges := g.Edges()
	for index := range edges {
		if err := encodeStackEdge(m, edges, index); err != nil {
			return err
		}
	}

	return nil
}

// encodeStackEdge forbids the 8 crossing-pattern variants between edge
// `index` and every earlier, non-adjacent edge.
func encodeStackEdge(m *satmodel.Model, edges []glayout.Edge, index int) error {
	e1n1, e1n2 := edges[index].U, edges[index].V

	for i := 0; i < index; i++ {
		e2n1, e2n2 := edges[i].U, edges[i].V
		if adjacent(e1n1, e1n2, e2n1, e2n2) {
			continue
		}

		tuples := [8][4]int{
			{e1n1, e2n1, e1n2, e2n2},
			{e1n1, e2n2, e1n2, e2n1},
			{e1n2, e2n1, e1n1, e2n2},
			{e1n2, e2n2, e1n1, e2n1},
			{e2n1, e1n1, e2n2, e1n2},
			{e2n1, e1n2, e2n2, e1n1},
			{e2n2, e1n1, e2n1, e1n2},
			{e2n2, e1n2, e2n1, e1n1},
		}
		for _, t := range tuples {
			c, err := crossClause(m, i, index, t[0], t[1], t[2], t[3])
			if err != nil {
				return wrapf(KindInternal, "stack: %w", err)
			}
			m.AddClause(c)
		}
	}

	return nil
}
