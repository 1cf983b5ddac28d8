package glayout

import "fmt"

// Flavor selects which forbidden pattern the encoder enforces on the spine.
type Flavor int

const (
	// Stack forbids crossing edges on any one page.
	Stack Flavor = iota
	// Queue forbids nesting edges on any one page.
	Queue
	// Track forbids X-crosses between tracks.
	Track
	// Mixed splits pages into a stack region and a queue region.
	Mixed
	// MixedPages lets the solver choose each page's type.
	MixedPages
)

// String renders the flavor the way CLI wrappers and log lines expect.
func (f Flavor) String() string {
	switch f {
	case Stack:
		return "stack"
	case Queue:
		return "queue"
	case Track:
		return "track"
	case Mixed:
		return "mixed"
	case MixedPages:
		return "mixed-pages"
	default:
		return fmt.Sprintf("Flavor(%d)", int(f))
	}
}

// Params bundles every resource budget and feature flag the encoder reads.
// Construct with NewParams; defaults are the empty flavor-appropriate
// minimums (callers almost always want to set Stacks/Queues/Tracks).
type Params struct {
	Flavor Flavor

	// Resource budgets.
	Stacks     int
	Queues     int
	Tracks     int
	MixedPages int
	Span       int // 0 disables the track span restriction
	Local      int // 0 disables the local-l feature

	// Feature flags.
	Trees        bool
	Adjacent     bool
	Directed     bool
	Dispersible  bool
	Strict       bool
	ApplyBreakID bool
	SkipSAT      bool
	SkipSolve    bool

	// FirstNode is the vertex symmetry-breaking pins to the front of the
	// spine for STACK layouts. Defaults to 0.
	FirstNode int

	// File paths for the DIMACS model and solver result; the core only
	// reads/writes them, it never parses argv itself.
	ModelFile  string
	ResultFile string

	Verbose int
}

// Option configures a Params value. Functional-options style: later
// options override earlier ones, applied left-to-right, deterministically.
type Option func(*Params)

// NewParams builds a Params for the given flavor with sensible zero-value
// defaults, then applies opts in order.
//
// Complexity: O(len(opts)).
func NewParams(flavor Flavor, opts ...Option) *Params {
	p := &Params{Flavor: flavor}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// WithStacks sets the stack-page budget.
func WithStacks(n int) Option { return func(p *Params) { p.Stacks = n } }

// WithQueues sets the queue-page budget.
func WithQueues(n int) Option { return func(p *Params) { p.Queues = n } }

// WithTracks sets the track budget.
func WithTracks(n int) Option { return func(p *Params) { p.Tracks = n } }

// WithMixedPages sets the page budget for a MixedPages layout.
func WithMixedPages(n int) Option { return func(p *Params) { p.MixedPages = n } }

// WithSpan forbids any edge's endpoints from lying on two tracks more
// than span apart (TRACK layouts).
func WithSpan(span int) Option { return func(p *Params) { p.Span = span } }

// WithLocal enables the local-l feature: every vertex touches at most l
// distinct pages.
func WithLocal(l int) Option { return func(p *Params) { p.Local = l } }

// WithTrees enables the trees-per-page feature encoder.
func WithTrees() Option { return func(p *Params) { p.Trees = true } }

// WithAdjacent enables the adjacency feature encoder.
func WithAdjacent() Option { return func(p *Params) { p.Adjacent = true } }

// WithDirected treats the graph's direction flags as nodeRel constraints.
func WithDirected() Option { return func(p *Params) { p.Directed = true } }

// WithDispersible requires every page to be a matching.
func WithDispersible() Option { return func(p *Params) { p.Dispersible = true } }

// WithStrict tightens QUEUE layouts to also forbid shared-endpoint
// extremal configurations; both the left and right guard are emitted.
func WithStrict() Option { return func(p *Params) { p.Strict = true } }

// WithApplyBreakID skips the built-in symmetry breaker: callers that
// already supply custom constraints, or that pipe the model through an
// external BreakID-style preprocessor, set this.
func WithApplyBreakID() Option { return func(p *Params) { p.ApplyBreakID = true } }

// WithSkipSAT stops the orchestrator after the lower-bound check (no
// variables or clauses are created).
func WithSkipSAT() Option { return func(p *Params) { p.SkipSAT = true } }

// WithSkipSolve stops the orchestrator after emitting the DIMACS model
// (Indeterminate outcome; no attempt to read a result file).
func WithSkipSolve() Option { return func(p *Params) { p.SkipSolve = true } }

// WithFirstNode overrides which vertex the STACK symmetry breaker pins to
// the front of the spine. Defaults to 0.
func WithFirstNode(v int) Option { return func(p *Params) { p.FirstNode = v } }

// WithModelFile sets the DIMACS CNF output path.
func WithModelFile(path string) Option { return func(p *Params) { p.ModelFile = path } }

// WithResultFile sets the DIMACS solver-result input path.
func WithResultFile(path string) Option { return func(p *Params) { p.ResultFile = path } }

// WithVerbose sets the verbosity level (an opaque integer the orchestrator
// never interprets itself; logging is an external collaborator).
func WithVerbose(v int) Option { return func(p *Params) { p.Verbose = v } }

// PageBudget returns the total number of pages implied by the flavor:
// Stacks for STACK, Queues for QUEUE, Stacks+Queues for MIXED,
// MixedPages for MIXED_PAGES, and Stacks for TRACK (which Validate
// requires to be 1: a single page carrying the stack-style page
// encoding).
func (p *Params) PageBudget() int {
	switch p.Flavor {
	case Stack:
		return p.Stacks
	case Queue:
		return p.Queues
	case Track:
		return p.Stacks
	case Mixed:
		return p.Stacks + p.Queues
	case MixedPages:
		return p.MixedPages
	default:
		return 0
	}
}

// Validate rejects illegal flavor/budget combinations: MIXED needs at
// least one stack and one queue page, TRACK needs exactly one
// stack-style page and at least 2 tracks, and every flavor needs a
// positive page/track budget.
func (p *Params) Validate() error {
	switch p.Flavor {
	case Stack:
		if p.Stacks <= 0 {
			return fmt.Errorf("stacks must be positive: %w", ErrParameter)
		}
	case Queue:
		if p.Queues <= 0 {
			return fmt.Errorf("queues must be positive: %w", ErrParameter)
		}
	case Track:
		if p.Stacks != 1 {
			return fmt.Errorf("track layouts require exactly 1 page: %w", ErrParameter)
		}
		if p.Tracks < 2 {
			return fmt.Errorf("tracks must be at least 2: %w", ErrParameter)
		}
	case Mixed:
		if p.Stacks <= 0 || p.Queues <= 0 {
			return fmt.Errorf("mixed layouts require stacks > 0 and queues > 0: %w", ErrParameter)
		}
	case MixedPages:
		if p.MixedPages <= 0 {
			return fmt.Errorf("mixedPages must be positive: %w", ErrParameter)
		}
	default:
		return fmt.Errorf("unknown flavor %d: %w", int(p.Flavor), ErrParameter)
	}
	if p.Span < 0 {
		return fmt.Errorf("span must be non-negative: %w", ErrParameter)
	}
	if p.Local < 0 {
		return fmt.Errorf("local must be non-negative: %w", ErrParameter)
	}

	return nil
}
