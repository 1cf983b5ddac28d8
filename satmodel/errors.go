package satmodel

import "errors"

// Sentinel errors for variable registry and DIMACS I/O misuse.
//
// Callers MUST branch with errors.Is; messages are never stringified with
// caller-supplied values at the definition site.
var (
	// ErrUnknownVar indicates a lookup (Rel, Page, Track, ...) referenced
	// a key that was never registered with the matching Add method.
	ErrUnknownVar = errors.New("satmodel: variable not registered")

	// ErrDuplicateVar indicates Add was called twice for the same key.
	ErrDuplicateVar = errors.New("satmodel: variable already registered")

	// ErrSameIndex indicates a two-key family's Add or lookup was called with
	// identical indices (e.g. rel(i, i)), which is never meaningful, or
	// AddSameTrack was called with v1 > v2.
	ErrSameIndex = errors.New("satmodel: variable family indices must differ")

	// ErrNoResult indicates ReadDIMACSResult's input carried no 's' line.
	ErrNoResult = errors.New("satmodel: result file has no solver status line")

	// ErrVarCountMismatch indicates a SATISFIABLE result assigned a
	// different number of variables than the model declared.
	ErrVarCountMismatch = errors.New("satmodel: result variable count does not match model")

	// ErrUnassignedVar indicates Value was called for a variable id the
	// parsed result never assigned.
	ErrUnassignedVar = errors.New("satmodel: variable has no assignment in result")
)
