package layout

import (
	"github.com/spupyrev/bob/glayout"
	"github.com/spupyrev/bob/satmodel"
)

// encodeQueue builds the order and page variables, then forbids every
// nesting pattern between non-adjacent edge pairs on the same page.
// When Strict is set, also forbids the shared-endpoint "star" violation:
// both the left and right guard are emitted.
func encodeQueue(m *satmodel.Model, g *glayout.Graph, p *glayout.Params) error {
	if err := encodeOrder(m, g.N()); err != nil {
		return err
	}
	if err := encodePages(m, g, p.Queues); err != nil {
		return err
	}

	edges := g.Edges()
	for index := range edges {
		if err := encodeQueueEdge(m, edges, index); err != nil {
			return err
		}
	}

	if p.Strict {
		if err := encodeQueueStrict(m, edges); err != nil {
			return err
		}
	}

	return nil
}

// encodeQueueEdge forbids the 8 nesting-pattern variants between edge
// `index` and every earlier, non-adjacent edge.
func encodeQueueEdge(m *satmodel.Model, edges []glayout.Edge, index int) error {
	e1n1, e1n2 := edges[index].U, edges[index].V

	for i := 0; i < index; i++ {
		e2n1, e2n2 := edges[i].U, edges[i].V
		if adjacent(e1n1, e1n2, e2n1, e2n2) {
			continue
		}

		tuples := [8][4]int{
			{e1n1, e2n1, e2n2, e1n2},
			{e1n1, e2n2, e2n1, e1n2},
			{e1n2, e2n1, e2n2, e1n1},
			{e1n2, e2n2, e2n1, e1n1},
			{e2n1, e1n1, e1n2, e2n2},
			{e2n1, e1n2, e1n1, e2n2},
			{e2n2, e1n1, e1n2, e2n1},
			{e2n2, e1n2, e1n1, e2n1},
		}
		for _, t := range tuples {
			c, err := crossClause(m, i, index, t[0], t[1], t[2], t[3])
			if err != nil {
				return wrapf(KindInternal, "queue: %w", err)
			}
			m.AddClause(c)
		}
	}

	return nil
}

// encodeQueueStrict adds the 2-clause shared-endpoint guard: for every
// pair of edges incident to a common vertex v, it forbids v from being
// strictly leftmost or strictly rightmost of the two other endpoints on
// a shared page.
func encodeQueueStrict(m *satmodel.Model, edges []glayout.Edge) error {
	adj := make(map[int][]int)
	for idx, e := range edges {
		adj[e.U] = append(adj[e.U], idx)
		adj[e.V] = append(adj[e.V], idx)
	}

	for v, incident := range adj {
		for a := 0; a < len(incident); a++ {
			for b := a + 1; b < len(incident); b++ {
				e1, e2 := incident[a], incident[b]
				u := other(edges[e1], v)
				w := other(edges[e2], v)
				if u == w {
					continue
				}

				// forbid v strictly left of both u, w on a shared page
				left, err := strictGuard(m, e1, e2, v, u, w, true)
				if err != nil {
					return wrapf(KindInternal, "queue strict: %w", err)
				}
				m.AddClause(left)

				// forbid v strictly right of both u, w on a shared page
				right, err := strictGuard(m, e1, e2, v, u, w, false)
				if err != nil {
					return wrapf(KindInternal, "queue strict: %w", err)
				}
				m.AddClause(right)
			}
		}
	}

	return nil
}

// strictGuard builds sp(e1,e2,-) v rel(v,u,-) v rel(v,w,-) (leftmost)
// or sp(e1,e2,-) v rel(u,v,-) v rel(w,v,-) (rightmost): forbidding v
// from sitting strictly to one side of both other endpoints when e1, e2
// share a page.
func strictGuard(m *satmodel.Model, e1, e2, v, u, w int, leftmost bool) (satmodel.Clause, error) {
	sp, err := m.SamePage(e1, e2, false)
	if err != nil {
		return satmodel.Clause{}, err
	}
	var r1, r2 satmodel.Lit
	if leftmost {
		r1, err = m.Rel(v, u, false)
	} else {
		r1, err = m.Rel(u, v, false)
	}
	if err != nil {
		return satmodel.Clause{}, err
	}
	if leftmost {
		r2, err = m.Rel(v, w, false)
	} else {
		r2, err = m.Rel(w, v, false)
	}
	if err != nil {
		return satmodel.Clause{}, err
	}

	return satmodel.NewClause(sp, r1, r2), nil
}

// other returns e's endpoint that is not v.
func other(e glayout.Edge, v int) int {
	if e.U == v {
		return e.V
	}

	return e.U
}
