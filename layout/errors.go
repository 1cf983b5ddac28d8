package layout

import (
	"errors"
	"fmt"
	"runtime"
)

// Kind classifies an Error by failure category, so callers can branch
// on category without parsing the message.
type Kind int

const (
	// KindParameter is an illegal flavor/budget combination.
	KindParameter Kind = iota
	// KindInput is a malformed graph (bad direction length, bad labels).
	KindInput
	// KindConstraint is a contradictory or out-of-range custom constraint.
	KindConstraint
	// KindInternal is a variable-registry invariant violation: a defect
	// in the encoder itself, never a caller mistake.
	KindInternal
	// KindIO is a file or DIMACS parsing failure.
	KindIO
)

// String renders the kind for log lines and error messages.
func (k Kind) String() string {
	switch k {
	case KindParameter:
		return "parameter"
	case KindInput:
		return "input"
	case KindConstraint:
		return "constraint"
	case KindInternal:
		return "internal"
	case KindIO:
		return "io"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the layout package's single error type: a Kind, the
// underlying cause, and the call site that raised it. Every component
// wraps its failures with newError so a caller never has to guess
// where in the pipeline an encoding run aborted.
type Error struct {
	Kind   Kind
	Err    error
	Source string
}

func (e *Error) Error() string {
	return fmt.Sprintf("layout: %s: %s: %v", e.Kind, e.Source, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Err }

// newError captures the caller's file:line and wraps err under kind.
// skip is the number of additional stack frames to skip past newError
// itself (0 for a direct call).
func newError(kind Kind, err error, skip int) *Error {
	_, file, line, ok := runtime.Caller(skip + 1)
	source := "unknown"
	if ok {
		source = fmt.Sprintf("%s:%d", file, line)
	}

	return &Error{Kind: kind, Err: err, Source: source}
}

// wrapf builds a new Error from a format string, the way fmt.Errorf
// builds a plain error, rooted at the immediate caller.
func wrapf(kind Kind, format string, args ...any) *Error {
	return newError(kind, fmt.Errorf(format, args...), 1)
}

// Sentinel causes wrapped by Error; callers branch with errors.Is
// against these, not against Error.Kind alone, since Kind only says
// which category, not which specific defect.
var (
	// ErrDegreeTooHigh indicates the local-l feature was asked to
	// enumerate subsets of a vertex with degree exceeding the
	// enumeration bound.
	ErrDegreeTooHigh = errors.New("layout: vertex degree exceeds local-l enumeration bound")

	// ErrDecodeOrder indicates the decoded spine positions are not a
	// permutation of [0, n).
	ErrDecodeOrder = errors.New("layout: decoded order is not a permutation")

	// ErrDecodePage indicates a decoded edge has zero pages or, for
	// single-page edges, more than one.
	ErrDecodePage = errors.New("layout: decoded page assignment is invalid")

	// ErrDecodeTrack indicates a decoded vertex does not have exactly
	// one track, or an edge does not span two distinct tracks.
	ErrDecodeTrack = errors.New("layout: decoded track assignment is invalid")
)
