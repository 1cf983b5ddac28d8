package layout

import (
	"github.com/spupyrev/bob/glayout"
	"github.com/spupyrev/bob/satmodel"
)

// encodeTrees adds the trees-per-page feature: on every page, the
// edges placed there must form a single rooted tree (at most one root
// per page).
//
// Per page and edge (u, v) with u < v: father(page,e,0) means "u is the
// father, v is the child"; father(page,e,1) means "v is the father, u
// is the child". ancestor(page,a,b) means a is an ancestor of b on that
// page's forest; root(v,page) means v is that page's tree root.
func encodeTrees(m *satmodel.Model, g *glayout.Graph, pageCount int) error {
	if pageCount <= 0 {
		return wrapf(KindParameter, "trees: page count must be positive")
	}
	n := g.N()
	edges := g.Edges()

	for page := 0; page < pageCount; page++ {
		for e := range edges {
			if err := m.AddFather(page, e, 0); err != nil {
				return wrapf(KindInternal, "trees: %w", err)
			}
			if err := m.AddFather(page, e, 1); err != nil {
				return wrapf(KindInternal, "trees: %w", err)
			}
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := m.AddAncestor(page, i, j); err != nil {
					return wrapf(KindInternal, "trees: %w", err)
				}
			}
		}
	}
	for v := 0; v < n; v++ {
		for page := 0; page < pageCount; page++ {
			if err := m.AddRoot(v, page); err != nil {
				return wrapf(KindInternal, "trees: %w", err)
			}
		}
	}

	for page := 0; page < pageCount; page++ {
		if err := encodeTreesPageVars(m, edges, page); err != nil {
			return err
		}
	}
	for page := 0; page < pageCount; page++ {
		for v := 0; v < n; v++ {
			if err := encodeTreesVertex(m, edges, v, page); err != nil {
				return err
			}
		}
	}
	for page := 0; page < pageCount; page++ {
		if err := encodeTreesAncestry(m, n, edges, page); err != nil {
			return err
		}
	}

	return nil
}

func encodeTreesPageVars(m *satmodel.Model, edges []glayout.Edge, page int) error {
	for e, edge := range edges {
		pageTrue, err := m.Page(e, page, true)
		if err != nil {
			return wrapf(KindInternal, "trees: %w", err)
		}
		f0neg, err := m.Father(page, e, 0, false)
		if err != nil {
			return wrapf(KindInternal, "trees: %w", err)
		}
		f1neg, err := m.Father(page, e, 1, false)
		if err != nil {
			return wrapf(KindInternal, "trees: %w", err)
		}
		m.AddClause(satmodel.NewClause(pageTrue, f0neg))
		m.AddClause(satmodel.NewClause(pageTrue, f1neg))

		pageFalse, err := m.Page(e, page, false)
		if err != nil {
			return wrapf(KindInternal, "trees: %w", err)
		}
		f0pos, err := m.Father(page, e, 0, true)
		if err != nil {
			return wrapf(KindInternal, "trees: %w", err)
		}
		f1pos, err := m.Father(page, e, 1, true)
		if err != nil {
			return wrapf(KindInternal, "trees: %w", err)
		}
		m.AddClause(satmodel.NewClause(pageFalse, f0pos, f1pos))
		m.AddClause(satmodel.NewClause(pageFalse, f0neg, f1neg))

		rootV, err := m.Root(edge.V, page, false)
		if err != nil {
			return wrapf(KindInternal, "trees: %w", err)
		}
		m.AddClause(satmodel.NewClause(f0neg, rootV))

		rootU, err := m.Root(edge.U, page, false)
		if err != nil {
			return wrapf(KindInternal, "trees: %w", err)
		}
		m.AddClause(satmodel.NewClause(f1neg, rootU))
	}

	return nil
}

// hasFatherLit returns the literal meaning "vertex v has a father along
// edge e", normalizing which father endpoint (0 or 1) represents v
// being the child.
func hasFatherLit(m *satmodel.Model, page, e int, edge glayout.Edge, v int, positive bool) (satmodel.Lit, error) {
	if edge.U == v {
		return m.Father(page, e, 1, positive)
	}

	return m.Father(page, e, 0, positive)
}

// isFatherLit returns the literal meaning "vertex v is the father along
// edge e" (the complementary role to hasFatherLit).
func isFatherLit(m *satmodel.Model, page, e int, edge glayout.Edge, v int, positive bool) (satmodel.Lit, error) {
	if edge.U == v {
		return m.Father(page, e, 0, positive)
	}

	return m.Father(page, e, 1, positive)
}

func encodeTreesVertex(m *satmodel.Model, edges []glayout.Edge, v, page int) error {
	var incident []int
	for e, edge := range edges {
		if edge.U == v || edge.V == v {
			incident = append(incident, e)
		}
	}

	for _, k := range incident {
		lits := make([]satmodel.Lit, 0, len(incident)+2)
		for _, l := range incident {
			lit, err := hasFatherLit(m, page, l, edges[l], v, true)
			if err != nil {
				return wrapf(KindInternal, "trees: %w", err)
			}
			lits = append(lits, lit)
		}
		notFatherK, err := isFatherLit(m, page, k, edges[k], v, false)
		if err != nil {
			return wrapf(KindInternal, "trees: %w", err)
		}
		rootV, err := m.Root(v, page, true)
		if err != nil {
			return wrapf(KindInternal, "trees: %w", err)
		}
		lits = append(lits, notFatherK, rootV)
		m.AddClause(satmodel.NewClause(lits...))
	}

	lits := make([]satmodel.Lit, 0, len(incident)+1)
	for _, k := range incident {
		lit, err := hasFatherLit(m, page, k, edges[k], v, true)
		if err != nil {
			return wrapf(KindInternal, "trees: %w", err)
		}
		lits = append(lits, lit)
	}
	rootVNeg, err := m.Root(v, page, false)
	if err != nil {
		return wrapf(KindInternal, "trees: %w", err)
	}
	lits = append(lits, rootVNeg)
	m.AddClause(satmodel.NewClause(lits...))

	for a := 0; a < len(incident); a++ {
		for b := a + 1; b < len(incident); b++ {
			l1, err := hasFatherLit(m, page, incident[a], edges[incident[a]], v, false)
			if err != nil {
				return wrapf(KindInternal, "trees: %w", err)
			}
			l2, err := hasFatherLit(m, page, incident[b], edges[incident[b]], v, false)
			if err != nil {
				return wrapf(KindInternal, "trees: %w", err)
			}
			m.AddClause(satmodel.NewClause(l1, l2))
		}
	}

	return nil
}

func encodeTreesAncestry(m *satmodel.Model, n int, edges []glayout.Edge, page int) error {
	for e, edge := range edges {
		f0, err := m.Father(page, e, 0, false)
		if err != nil {
			return wrapf(KindInternal, "trees: %w", err)
		}
		ancUV, err := m.Ancestor(page, edge.U, edge.V, true)
		if err != nil {
			return wrapf(KindInternal, "trees: %w", err)
		}
		m.AddClause(satmodel.NewClause(f0, ancUV))

		f1, err := m.Father(page, e, 1, false)
		if err != nil {
			return wrapf(KindInternal, "trees: %w", err)
		}
		ancVU, err := m.Ancestor(page, edge.V, edge.U, true)
		if err != nil {
			return wrapf(KindInternal, "trees: %w", err)
		}
		m.AddClause(satmodel.NewClause(f1, ancVU))
	}

	for j := 0; j < n; j++ {
		for k := j + 1; k < n; k++ {
			for l := k + 1; l < n; l++ {
				if err := ancestorTransitivity(m, page, j, k, l); err != nil {
					return err
				}
			}
			ajk, err := m.Ancestor(page, j, k, false)
			if err != nil {
				return wrapf(KindInternal, "trees: %w", err)
			}
			akj, err := m.Ancestor(page, k, j, false)
			if err != nil {
				return wrapf(KindInternal, "trees: %w", err)
			}
			m.AddClause(satmodel.NewClause(ajk, akj))
		}
	}

	for j := 0; j < n; j++ {
		for k := 0; k < n; k++ {
			if j == k {
				continue
			}
			rootNeg, err := m.Root(j, page, false)
			if err != nil {
				return wrapf(KindInternal, "trees: %w", err)
			}
			ancNeg, err := m.Ancestor(page, k, j, false)
			if err != nil {
				return wrapf(KindInternal, "trees: %w", err)
			}
			m.AddClause(satmodel.NewClause(rootNeg, ancNeg))
		}
	}

	for j := 0; j < n; j++ {
		for k := j + 1; k < n; k++ {
			r1, err := m.Root(j, page, false)
			if err != nil {
				return wrapf(KindInternal, "trees: %w", err)
			}
			r2, err := m.Root(k, page, false)
			if err != nil {
				return wrapf(KindInternal, "trees: %w", err)
			}
			m.AddClause(satmodel.NewClause(r1, r2))
		}
	}

	return nil
}

// ancestorTransitivity unrolls the 6 permutations of {j,k,l}: for every
// cyclic and anti-cyclic triple, ¬anc(x,y) ∨ ¬anc(y,z) ∨ anc(x,z).
func ancestorTransitivity(m *satmodel.Model, page, j, k, l int) error {
	perms := [6][3]int{
		{j, k, l}, {j, l, k}, {k, j, l}, {k, l, j}, {l, j, k}, {l, k, j},
	}
	for _, p := range perms {
		a1, err := m.Ancestor(page, p[0], p[1], false)
		if err != nil {
			return wrapf(KindInternal, "trees: %w", err)
		}
		a2, err := m.Ancestor(page, p[1], p[2], false)
		if err != nil {
			return wrapf(KindInternal, "trees: %w", err)
		}
		a3, err := m.Ancestor(page, p[0], p[2], true)
		if err != nil {
			return wrapf(KindInternal, "trees: %w", err)
		}
		m.AddClause(satmodel.NewClause(a1, a2, a3))
	}

	return nil
}
