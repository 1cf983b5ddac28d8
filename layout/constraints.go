package layout

import (
	"github.com/spupyrev/bob/glayout"
	"github.com/spupyrev/bob/satmodel"
)

// encodeConstraints translates every side-channel constraint the graph
// carries into unit or small clauses.
func encodeConstraints(m *satmodel.Model, g *glayout.Graph, p *glayout.Params) error {
	cons := g.Constraints()

	for _, r := range cons.NodeRel {
		if err := nodeRelClause(m, p, r.A, r.B); err != nil {
			return err
		}
	}

	for _, pair := range cons.SameRel {
		if err := sameRelClause(m, pair[0], pair[1]); err != nil {
			return err
		}
	}

	for e, pages := range cons.EdgePages {
		lits := make([]satmodel.Lit, 0, len(pages))
		for _, page := range pages {
			lit, err := m.Page(e, page, true)
			if err != nil {
				return wrapf(KindInternal, "constraints: %w", err)
			}
			lits = append(lits, lit)
		}
		m.AddClause(satmodel.NewClause(lits...))
	}

	for _, pr := range cons.SamePage {
		sp, err := m.SamePage(pr[0], pr[1], true)
		if err != nil {
			return wrapf(KindInternal, "constraints: %w", err)
		}
		m.AddClause(satmodel.NewClause(sp))
	}

	for _, pr := range cons.DistinctPage {
		sp, err := m.SamePage(pr[0], pr[1], false)
		if err != nil {
			return wrapf(KindInternal, "constraints: %w", err)
		}
		m.AddClause(satmodel.NewClause(sp))
	}

	for _, grp := range cons.GroupEdgePages {
		if err := groupEdgePagesClauses(m, grp); err != nil {
			return err
		}
	}

	for v, tracks := range cons.NodeTracks {
		lits := make([]satmodel.Lit, 0, len(tracks))
		for _, t := range tracks {
			lit, err := m.Track(v, t, true)
			if err != nil {
				return wrapf(KindInternal, "constraints: %w", err)
			}
			lits = append(lits, lit)
		}
		m.AddClause(satmodel.NewClause(lits...))
	}

	return nil
}

// sameRelClause forces two ordered-pair rel literals to agree (biconditional).
func sameRelClause(m *satmodel.Model, p1, p2 glayout.OrderedPair) error {
	r1, err := m.Rel(p1.A, p1.B, true)
	if err != nil {
		return wrapf(KindInternal, "constraints: %w", err)
	}
	r2, err := m.Rel(p2.A, p2.B, true)
	if err != nil {
		return wrapf(KindInternal, "constraints: %w", err)
	}
	m.AddClause(satmodel.NewClause(r1.Negate(), r2))
	m.AddClause(satmodel.NewClause(r2.Negate(), r1))

	return nil
}

// groupEdgePagesClauses forces a set of edges onto at most K distinct
// pages (K in {1, 2}), by picking the first K edges as representatives
// and requiring every other edge to share a page with one of them.
func groupEdgePagesClauses(m *satmodel.Model, grp glayout.GroupEdgePages) error {
	if len(grp.Edges) <= grp.K {
		return nil
	}
	reps := grp.Edges[:grp.K]
	for _, e := range grp.Edges[grp.K:] {
		lits := make([]satmodel.Lit, 0, len(reps))
		for _, r := range reps {
			lo, hi := r, e
			if lo > hi {
				lo, hi = hi, lo
			}
			lit, err := m.SamePage(lo, hi, true)
			if err != nil {
				return wrapf(KindInternal, "constraints: %w", err)
			}
			lits = append(lits, lit)
		}
		m.AddClause(satmodel.NewClause(lits...))
	}

	return nil
}
