package glayout

import "fmt"

// RelPair is an ordered (a, b) meaning "a precedes b in the spine order".
type RelPair struct{ A, B int }

// OrderedPair identifies a (vertex, vertex) or (edge, edge) key whose
// truth value (as a rel/samePage literal) must agree with another such
// pair via SameRel.
type OrderedPair struct{ A, B int }

// GroupEdgePages constrains a set of edges to occupy at most K distinct
// pages; spec.md's DATA MODEL only accepts K in {1, 2}.
type GroupEdgePages struct {
	K     int
	Edges []int
}

// Constraints is the side-channel input spec.md's DATA MODEL section
// describes: caller-supplied facts the encoder must honor in addition to
// the flavor's structural clauses.
type Constraints struct {
	NodeRel        []RelPair
	SameRel        [][2]OrderedPair
	EdgePages      map[int][]int // edge -> allowed pages
	SamePage       [][2]int      // edge index pairs
	DistinctPage   [][2]int      // edge index pairs
	GroupEdgePages []GroupEdgePages
	NodeTracks     map[int][]int // vertex -> allowed tracks
	MultiPage      map[int]bool  // edge -> multi-page allowed
}

// AddNodeRel records "a precedes b".
func (c *Constraints) AddNodeRel(a, b int) {
	c.NodeRel = append(c.NodeRel, RelPair{A: a, B: b})
}

// AddSameRel records that two ordered pairs' rel truth values must agree.
func (c *Constraints) AddSameRel(p1, p2 OrderedPair) {
	c.SameRel = append(c.SameRel, [2]OrderedPair{p1, p2})
}

// AddEdgePages restricts edge e to the given set of pages.
func (c *Constraints) AddEdgePages(e int, pages []int) {
	if c.EdgePages == nil {
		c.EdgePages = make(map[int][]int)
	}
	c.EdgePages[e] = append([]int(nil), pages...)
}

// AddSamePage forces edges e1 and e2 onto the same page.
func (c *Constraints) AddSamePage(e1, e2 int) {
	c.SamePage = append(c.SamePage, [2]int{e1, e2})
}

// AddDistinctPage forces edges e1 and e2 onto different pages.
func (c *Constraints) AddDistinctPage(e1, e2 int) {
	c.DistinctPage = append(c.DistinctPage, [2]int{e1, e2})
}

// AddGroupEdgePages forces edges to occupy at most k distinct pages.
func (c *Constraints) AddGroupEdgePages(k int, edges []int) {
	c.GroupEdgePages = append(c.GroupEdgePages, GroupEdgePages{K: k, Edges: append([]int(nil), edges...)})
}

// AddNodeTracks restricts vertex v to the given set of tracks.
func (c *Constraints) AddNodeTracks(v int, tracks []int) {
	if c.NodeTracks == nil {
		c.NodeTracks = make(map[int][]int)
	}
	c.NodeTracks[v] = append([]int(nil), tracks...)
}

// SetMultiPage marks edge e as allowed to occupy more than one page.
func (c *Constraints) SetMultiPage(e int, multi bool) {
	if c.MultiPage == nil {
		c.MultiPage = make(map[int]bool)
	}
	c.MultiPage[e] = multi
}

// IsMultiPage reports whether edge e may occupy multiple pages.
func (c *Constraints) IsMultiPage(e int) bool { return c.MultiPage != nil && c.MultiPage[e] }

// HasCustom reports whether any custom (non-default) constraint is
// present; the symmetry breaker (C9) skips its default pinning whenever
// this is true.
func (c *Constraints) HasCustom() bool {
	return len(c.NodeRel) > 0 || len(c.EdgePages) > 0 || len(c.NodeTracks) > 0 || len(c.SamePage) > 0 ||
		len(c.SameRel) > 0 || len(c.DistinctPage) > 0 || len(c.GroupEdgePages) > 0 || len(c.MultiPage) > 0
}

func (c *Constraints) validate(n, m int) error {
	for _, r := range c.NodeRel {
		if r.A < 0 || r.A >= n || r.B < 0 || r.B >= n {
			return fmt.Errorf("nodeRel (%d, %d): %w", r.A, r.B, ErrVertexRange)
		}
		if r.A == r.B {
			return fmt.Errorf("nodeRel (%d, %d): %w", r.A, r.B, ErrSelfConstraint)
		}
	}
	for e, pages := range c.EdgePages {
		if e < 0 || e >= m {
			return fmt.Errorf("edgePages[%d]: %w", e, ErrEdgeRange)
		}
		for _, p := range pages {
			if p < 0 {
				return fmt.Errorf("edgePages[%d]=%d: %w", e, p, ErrPageRange)
			}
		}
	}
	for _, pr := range c.SamePage {
		if pr[0] < 0 || pr[0] >= m || pr[1] < 0 || pr[1] >= m {
			return fmt.Errorf("samePage (%d, %d): %w", pr[0], pr[1], ErrEdgeRange)
		}
		if pr[0] == pr[1] {
			return fmt.Errorf("samePage (%d, %d): %w", pr[0], pr[1], ErrSelfConstraint)
		}
	}
	for _, pr := range c.DistinctPage {
		if pr[0] < 0 || pr[0] >= m || pr[1] < 0 || pr[1] >= m {
			return fmt.Errorf("distinctPage (%d, %d): %w", pr[0], pr[1], ErrEdgeRange)
		}
		if pr[0] == pr[1] {
			return fmt.Errorf("distinctPage (%d, %d): %w", pr[0], pr[1], ErrSelfConstraint)
		}
	}
	for _, g := range c.GroupEdgePages {
		if g.K != 1 && g.K != 2 {
			return fmt.Errorf("groupEdgePages k=%d: %w", g.K, ErrBadGroupSize)
		}
		for _, e := range g.Edges {
			if e < 0 || e >= m {
				return fmt.Errorf("groupEdgePages edge %d: %w", e, ErrEdgeRange)
			}
		}
	}
	for v, tracks := range c.NodeTracks {
		if v < 0 || v >= n {
			return fmt.Errorf("nodeTracks[%d]: %w", v, ErrVertexRange)
		}
		for _, t := range tracks {
			if t < 0 {
				return fmt.Errorf("nodeTracks[%d]=%d: %w", v, t, ErrTrackRange)
			}
		}
	}
	for e := range c.MultiPage {
		if e < 0 || e >= m {
			return fmt.Errorf("multiPage[%d]: %w", e, ErrEdgeRange)
		}
	}

	return nil
}
