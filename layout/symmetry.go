package layout

import (
	"sort"

	"github.com/spupyrev/bob/glayout"
	"github.com/spupyrev/bob/satmodel"
)

// encodeSymmetryBreaker installs the flavor-specific canonical choices
// plus automorphism grouping, unless the caller opted out (ApplyBreakID)
// or already supplied custom constraints (Constraints.HasCustom):
// symmetry pinning and caller-supplied constraints are mutually
// exclusive, since the pinning may conflict with an explicit constraint
// set.
func encodeSymmetryBreaker(m *satmodel.Model, g *glayout.Graph, p *glayout.Params) error {
	if p.ApplyBreakID || g.Constraints().HasCustom() {
		return nil
	}

	switch p.Flavor {
	case glayout.Stack:
		if err := encodeStackSymmetry(m, g, p); err != nil {
			return err
		}
	case glayout.Queue:
		if err := encodeQueueSymmetry(m, g, p); err != nil {
			return err
		}
	case glayout.Track:
		if err := encodeTrackSymmetry(m, g, p); err != nil {
			return err
		}
	case glayout.Mixed, glayout.MixedPages:
		if err := encodeMixedSymmetry(m, g); err != nil {
			return err
		}
	}

	return encodeAutomorphismConstraints(m, g)
}

// nodeRelClause asserts "a precedes b", track flavors relaxing it to
// "a precedes b whenever a and b share a track".
func nodeRelClause(m *satmodel.Model, p *glayout.Params, a, b int) error {
	rel, err := m.Rel(a, b, true)
	if err != nil {
		return wrapf(KindInternal, "symmetry: %w", err)
	}
	if p.Flavor != glayout.Track {
		m.AddClause(satmodel.NewClause(rel))
		return nil
	}
	st, err := m.SameTrack(a, b, false)
	if err != nil {
		return wrapf(KindInternal, "symmetry: %w", err)
	}
	m.AddClause(satmodel.NewClause(rel, st))

	return nil
}

func encodeStackSymmetry(m *satmodel.Model, g *glayout.Graph, p *glayout.Params) error {
	n := g.N()
	for i := 0; i < n; i++ {
		if i == p.FirstNode {
			continue
		}
		if err := nodeRelClause(m, p, p.FirstNode, i); err != nil {
			return err
		}
	}
	if n >= 3 {
		if err := nodeRelClause(m, p, 1, 2); err != nil {
			return err
		}
	}

	if !p.Dispersible && g.EdgeCount() > 0 {
		pg, err := m.Page(0, 0, true)
		if err != nil {
			return wrapf(KindInternal, "symmetry: %w", err)
		}
		m.AddClause(satmodel.NewClause(pg))

		if p.Stacks >= 2 && g.EdgeCount() >= 2 {
			p0, err := m.Page(1, 0, true)
			if err != nil {
				return wrapf(KindInternal, "symmetry: %w", err)
			}
			p1, err := m.Page(1, 1, true)
			if err != nil {
				return wrapf(KindInternal, "symmetry: %w", err)
			}
			m.AddClause(satmodel.NewClause(p0, p1))
		}
	}

	return nil
}

func encodeQueueSymmetry(m *satmodel.Model, g *glayout.Graph, p *glayout.Params) error {
	n := g.N()
	if n >= 3 {
		if err := nodeRelClause(m, p, 1, 2); err != nil {
			return err
		}
	}

	if !p.Dispersible && g.EdgeCount() > 0 {
		pg, err := m.Page(0, 0, true)
		if err != nil {
			return wrapf(KindInternal, "symmetry: %w", err)
		}
		m.AddClause(satmodel.NewClause(pg))

		if p.Queues >= 2 && g.EdgeCount() >= 2 {
			p0, err := m.Page(1, 0, true)
			if err != nil {
				return wrapf(KindInternal, "symmetry: %w", err)
			}
			p1, err := m.Page(1, 1, true)
			if err != nil {
				return wrapf(KindInternal, "symmetry: %w", err)
			}
			m.AddClause(satmodel.NewClause(p0, p1))
		}
	}

	return nil
}

func encodeTrackSymmetry(m *satmodel.Model, g *glayout.Graph, p *glayout.Params) error {
	n := g.N()
	limit := n
	if p.Tracks < limit {
		limit = p.Tracks
	}
	for i := 0; i < limit; i++ {
		lits := make([]satmodel.Lit, 0, i+1)
		for t := 0; t <= i; t++ {
			lit, err := m.Track(i, t, true)
			if err != nil {
				return wrapf(KindInternal, "symmetry: %w", err)
			}
			lits = append(lits, lit)
		}
		m.AddClause(satmodel.NewClause(lits...))
	}
	if n >= 3 {
		if err := nodeRelClause(m, p, 1, 2); err != nil {
			return err
		}
	}

	return nil
}

func encodeMixedSymmetry(m *satmodel.Model, g *glayout.Graph) error {
	if g.N() < 3 {
		return nil
	}
	rel, err := m.Rel(1, 2, true)
	if err != nil {
		return wrapf(KindInternal, "symmetry: %w", err)
	}
	m.AddClause(satmodel.NewClause(rel))

	return nil
}

// encodeAutomorphismConstraints groups vertices 3..n-1 with identical
// sorted adjacency lists and pins a canonical order within each group.
func encodeAutomorphismConstraints(m *satmodel.Model, g *glayout.Graph) error {
	n := g.N()
	adj := make(map[int][]int)
	for _, e := range g.Edges() {
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}

	groups := make(map[string][]int)
	for i := 3; i < n; i++ {
		sort.Ints(adj[i])
		key := adjKey(adj[i])
		groups[key] = append(groups[key], i)
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		group := groups[k]
		if len(group) <= 1 {
			continue
		}
		sort.Ints(group)
		for a := 0; a < len(group); a++ {
			for b := a + 1; b < len(group); b++ {
				rel, err := m.Rel(group[a], group[b], true)
				if err != nil {
					return wrapf(KindInternal, "symmetry: %w", err)
				}
				m.AddClause(satmodel.NewClause(rel))
			}
		}
	}

	return nil
}

func adjKey(adj []int) string {
	b := make([]byte, 0, len(adj)*4)
	for _, v := range adj {
		b = append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}

	return string(b)
}
