package satmodel

import "fmt"

// Model is the incremental CNF builder every flavor/feature encoder
// writes into: a variable pool split into named families (one per
// variable kind) and a growing clause list. Construct with NewModel;
// nothing about Model is safe for concurrent use, the same
// single-writer contract the orchestrator (layout package) already
// assumes for one encoding run.
type Model struct {
	nextVar int
	clauses []Clause

	rel      *family[PairKey]  // (u, v), u < v: u precedes v in the spine order
	page     *family[PairKey]  // (edge, page): edge occupies page
	sp       *family[PairKey]  // (edge1, edge2), edge1 < edge2: same page
	track    *family[PairKey]  // (vertex, track): vertex sits on track
	st       *family[PairKey]  // (vertex1, vertex2), vertex1 < vertex2: same track
	pageType *family[int]      // page: true = stack-type, false = queue-type (MIXED_PAGES)
	father   *family[TripleKey] // (page, edge, end): end in {0,1} selects which endpoint is the child
	ancestor *family[TripleKey] // (page, ancestor, descendant)
	root     *family[PairKey]  // (vertex, page): vertex is the page's tree root
	adj      *family[PairKey]  // (i, j), ordered, i != j: i immediately precedes j on the spine
	vadj     *family[PairKey]  // (vertex, page): vertex has >=1 incident edge on page (local-l feature)
}

// NewModel returns an empty model with no variables and no clauses.
func NewModel() *Model {
	return &Model{
		rel:      newFamily[PairKey](),
		page:     newFamily[PairKey](),
		sp:       newFamily[PairKey](),
		track:    newFamily[PairKey](),
		st:       newFamily[PairKey](),
		pageType: newFamily[int](),
		father:   newFamily[TripleKey](),
		ancestor: newFamily[TripleKey](),
		root:     newFamily[PairKey](),
		adj:      newFamily[PairKey](),
		vadj:     newFamily[PairKey](),
	}
}

func (m *Model) alloc() int {
	id := m.nextVar
	m.nextVar++

	return id
}

// AddVar allocates a fresh, untracked variable id; callers that need
// their own bookkeeping around a variable family not modeled here (a
// feature encoder's scratch variables) use this directly.
func (m *Model) AddVar() int { return m.alloc() }

// AddClause appends a clause to the model.
func (m *Model) AddClause(c Clause) { m.clauses = append(m.clauses, c) }

// VarCount returns the number of allocated variables.
func (m *Model) VarCount() int { return m.nextVar }

// ClauseCount returns the number of clauses added so far.
func (m *Model) ClauseCount() int { return len(m.clauses) }

// Clauses returns the accumulated clause list. Callers must not mutate
// the returned slice.
func (m *Model) Clauses() []Clause { return m.clauses }

// AddRel registers the order variable for the unordered pair {i, j},
// i != j. Only allocates for i < j; the j < i direction reuses the
// same variable with flipped polarity.
func (m *Model) AddRel(i, j int) error {
	if i == j {
		return ErrSameIndex
	}
	key, flipped := normalizedPair(i, j)
	if flipped {
		return nil // already owned by the (j, i) call
	}
	_, err := m.rel.add(m.alloc, key)

	return err
}

// Rel returns the literal asserting "i precedes j in the spine order"
// (positive) or its negation (!positive), normalizing the lookup the
// way getRelVar does: the stored variable is keyed on (min, max), and
// asking about the reversed pair flips polarity.
func (m *Model) Rel(i, j int, positive bool) (Lit, error) {
	if i == j {
		return Lit{}, ErrSameIndex
	}
	key, flipped := normalizedPair(i, j)
	id, err := m.rel.mustGet(key)
	if err != nil {
		return Lit{}, fmt.Errorf("rel(%d, %d): %w", i, j, err)
	}
	if flipped {
		positive = !positive
	}

	return Lit{Var: id, Positive: positive}, nil
}

// AddPage registers the page variable for (edge, page).
func (m *Model) AddPage(edge, page int) error {
	_, err := m.page.add(m.alloc, PairKey{A: edge, B: page})

	return err
}

// Page returns the literal asserting edge occupies page.
func (m *Model) Page(edge, page int, positive bool) (Lit, error) {
	id, err := m.page.mustGet(PairKey{A: edge, B: page})
	if err != nil {
		return Lit{}, fmt.Errorf("page(%d, %d): %w", edge, page, err)
	}

	return Lit{Var: id, Positive: positive}, nil
}

// AddSamePage registers the same-page variable for the unordered pair
// of edge indices {e1, e2}, e1 != e2.
func (m *Model) AddSamePage(e1, e2 int) error {
	if e1 == e2 {
		return ErrSameIndex
	}
	key, _ := normalizedPair(e1, e2)
	_, err := m.sp.add(m.alloc, key)

	return err
}

// SamePage returns the literal asserting edges e1 and e2 share a page.
// Unlike Rel, this variable carries no direction: getSamePageVar never
// flips polarity on the swapped order, since "e1 and e2 share a page"
// is symmetric.
func (m *Model) SamePage(e1, e2 int, positive bool) (Lit, error) {
	if e1 == e2 {
		return Lit{}, ErrSameIndex
	}
	key, _ := normalizedPair(e1, e2)
	id, err := m.sp.mustGet(key)
	if err != nil {
		return Lit{}, fmt.Errorf("samePage(%d, %d): %w", e1, e2, err)
	}

	return Lit{Var: id, Positive: positive}, nil
}

// AddTrack registers the track variable for (vertex, track).
func (m *Model) AddTrack(vertex, track int) error {
	_, err := m.track.add(m.alloc, PairKey{A: vertex, B: track})

	return err
}

// Track returns the literal asserting vertex sits on track.
func (m *Model) Track(vertex, track int, positive bool) (Lit, error) {
	id, err := m.track.mustGet(PairKey{A: vertex, B: track})
	if err != nil {
		return Lit{}, fmt.Errorf("track(%d, %d): %w", vertex, track, err)
	}

	return Lit{Var: id, Positive: positive}, nil
}

// AddSameTrack registers the same-track variable for vertices v1 < v2;
// the caller must pass them in increasing order.
func (m *Model) AddSameTrack(v1, v2 int) error {
	if v1 >= v2 {
		return ErrSameIndex
	}
	_, err := m.st.add(m.alloc, PairKey{A: v1, B: v2})

	return err
}

// SameTrack returns the literal asserting vertices v1 and v2 share a
// track; symmetric like SamePage.
func (m *Model) SameTrack(v1, v2 int, positive bool) (Lit, error) {
	if v1 == v2 {
		return Lit{}, ErrSameIndex
	}
	key, _ := normalizedPair(v1, v2)
	id, err := m.st.mustGet(key)
	if err != nil {
		return Lit{}, fmt.Errorf("sameTrack(%d, %d): %w", v1, v2, err)
	}

	return Lit{Var: id, Positive: positive}, nil
}

// AddPageType registers the page-type variable for page (MIXED_PAGES).
func (m *Model) AddPageType(page int) error {
	_, err := m.pageType.add(m.alloc, page)

	return err
}

// PageType returns the literal asserting page is stack-typed (positive)
// or queue-typed (!positive).
func (m *Model) PageType(page int, positive bool) (Lit, error) {
	id, err := m.pageType.mustGet(page)
	if err != nil {
		return Lit{}, fmt.Errorf("pageType(%d): %w", page, err)
	}

	return Lit{Var: id, Positive: positive}, nil
}

// AddFather registers the father variable for (page, edge, end), end in
// {0, 1} selecting which endpoint of the edge is treated as the child
// in the trees-per-page feature's induced forest.
func (m *Model) AddFather(page, edge, end int) error {
	_, err := m.father.add(m.alloc, TripleKey{A: page, B: edge, C: end})

	return err
}

// Father returns the literal for (page, edge, end).
func (m *Model) Father(page, edge, end int, positive bool) (Lit, error) {
	id, err := m.father.mustGet(TripleKey{A: page, B: edge, C: end})
	if err != nil {
		return Lit{}, fmt.Errorf("father(%d, %d, %d): %w", page, edge, end, err)
	}

	return Lit{Var: id, Positive: positive}, nil
}

// AddAncestor registers the ancestor variable for (page, u, v): u is an
// ancestor of v in page's induced forest.
func (m *Model) AddAncestor(page, u, v int) error {
	_, err := m.ancestor.add(m.alloc, TripleKey{A: page, B: u, C: v})

	return err
}

// Ancestor returns the literal for (page, u, v).
func (m *Model) Ancestor(page, u, v int, positive bool) (Lit, error) {
	id, err := m.ancestor.mustGet(TripleKey{A: page, B: u, C: v})
	if err != nil {
		return Lit{}, fmt.Errorf("ancestor(%d, %d, %d): %w", page, u, v, err)
	}

	return Lit{Var: id, Positive: positive}, nil
}

// AddRoot registers the root variable for (vertex, page): vertex is the
// root of page's induced forest component.
func (m *Model) AddRoot(vertex, page int) error {
	_, err := m.root.add(m.alloc, PairKey{A: vertex, B: page})

	return err
}

// Root returns the literal for (vertex, page).
func (m *Model) Root(vertex, page int, positive bool) (Lit, error) {
	id, err := m.root.mustGet(PairKey{A: vertex, B: page})
	if err != nil {
		return Lit{}, fmt.Errorf("root(%d, %d): %w", vertex, page, err)
	}

	return Lit{Var: id, Positive: positive}, nil
}

// AddAdj registers the spine-adjacency variable for the ordered pair
// (i, j), i != j. Unlike Rel, adj(i, j) and adj(j, i) are independent
// variables: "i immediately precedes j" does not determine "j
// immediately precedes i" by negation.
func (m *Model) AddAdj(i, j int) error {
	if i == j {
		return ErrSameIndex
	}
	_, err := m.adj.add(m.alloc, PairKey{A: i, B: j})

	return err
}

// Adj returns the literal asserting i immediately precedes j on the spine.
func (m *Model) Adj(i, j int, positive bool) (Lit, error) {
	if i == j {
		return Lit{}, ErrSameIndex
	}
	id, err := m.adj.mustGet(PairKey{A: i, B: j})
	if err != nil {
		return Lit{}, fmt.Errorf("adj(%d, %d): %w", i, j, err)
	}

	return Lit{Var: id, Positive: positive}, nil
}

// AddVAdj registers the local-l feature's "vertex has an incident edge
// on this page" variable for (vertex, page).
func (m *Model) AddVAdj(vertex, page int) error {
	_, err := m.vadj.add(m.alloc, PairKey{A: vertex, B: page})

	return err
}

// VAdj returns the literal for (vertex, page).
func (m *Model) VAdj(vertex, page int, positive bool) (Lit, error) {
	id, err := m.vadj.mustGet(PairKey{A: vertex, B: page})
	if err != nil {
		return Lit{}, fmt.Errorf("vadj(%d, %d): %w", vertex, page, err)
	}

	return Lit{Var: id, Positive: positive}, nil
}
