package glayout

import "errors"

// Sentinel errors for graph construction and validation.
//
// Callers MUST branch with errors.Is; messages are never stringified with
// caller-supplied values at the definition site (context is attached via
// %w wrapping at the call site instead).
var (
	// ErrNegativeSize indicates NewBuilder was called with n <= 0.
	ErrNegativeSize = errors.New("glayout: vertex count must be positive")

	// ErrVertexRange indicates an edge or constraint referenced a vertex
	// outside [0, n).
	ErrVertexRange = errors.New("glayout: vertex index out of range")

	// ErrSelfLoop indicates an edge (u, u) was attempted; self-loops are
	// out of scope for this encoder.
	ErrSelfLoop = errors.New("glayout: self-loops are not supported")

	// ErrDuplicateEdge indicates a parallel edge was attempted; multigraphs
	// are out of scope for this encoder.
	ErrDuplicateEdge = errors.New("glayout: parallel edges are not supported")

	// ErrDirectionLength indicates the direction slice's length does not
	// match the number of edges.
	ErrDirectionLength = errors.New("glayout: direction slice length mismatch")

	// ErrLabelLength indicates the label slice's length does not match the
	// vertex count.
	ErrLabelLength = errors.New("glayout: label slice length mismatch")

	// ErrEdgeRange indicates a constraint referenced an edge index outside
	// [0, len(edges)).
	ErrEdgeRange = errors.New("glayout: edge index out of range")

	// ErrPageRange indicates a constraint referenced a negative page.
	// Build does not know the page budget, so pages at or above it are
	// not rejected here.
	ErrPageRange = errors.New("glayout: page index out of range")

	// ErrTrackRange indicates a constraint referenced a negative track.
	// Build does not know the track budget, so tracks at or above it are
	// not rejected here.
	ErrTrackRange = errors.New("glayout: track index out of range")

	// ErrSelfConstraint indicates a constraint relates an edge or vertex
	// to itself (e.g. samePage(e, e)).
	ErrSelfConstraint = errors.New("glayout: constraint relates an element to itself")

	// ErrBadGroupSize indicates a groupEdgePages constraint used k outside
	// {1, 2}, the only values the encoder accepts.
	ErrBadGroupSize = errors.New("glayout: groupEdgePages only accepts k in {1, 2}")

	// ErrParameter indicates an illegal flavor/budget combination, e.g.
	// MIXED with stacks == 0 and queues == 0.
	ErrParameter = errors.New("glayout: illegal parameter combination")
)
