package selector

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrorKind classifies a [ParseError].
type ErrorKind int

const (
	InvalidNumber ErrorKind = iota + 1 // invalid number
	InvalidRange                       // invalid range
	EmptyTerm                          // empty term
)

// Sentinel errors matched by [ParseError] through [errors.Is].
var (
	// ErrSelector matches every [ParseError].
	ErrSelector = errors.New("invalid selector")

	ErrInvalidNumber = errors.New(InvalidNumber.String())
	ErrInvalidRange  = errors.New(InvalidRange.String())
	ErrEmptyTerm     = errors.New(EmptyTerm.String())
)

// Causes wrapped by a [ParseError].
var (
	errMissingNumber = errors.New("missing number")
	errZeroPosition  = errors.New("line numbers start at 1")
	errReversed      = errors.New("start is greater than end")
)

// sentinel returns the exported error matching k.
func (k ErrorKind) sentinel() error {
	switch k {
	case InvalidNumber:
		return ErrInvalidNumber
	case InvalidRange:
		return ErrInvalidRange
	case EmptyTerm:
		return ErrEmptyTerm
	default:
		return nil
	}
}

// ParseError describes a term of a selector expression that could not be
// parsed.
type ParseError struct {
	// Kind classifies the failure.
	Kind ErrorKind
	// Term is the text of the failing term as it appeared in the expression.
	Term string
	// Index is the 0-based index of the failing term.
	Index int
	// Err is the underlying cause, if any.
	Err error
}

func newParseError(kind ErrorKind, cause error) *ParseError {
	return &ParseError{Kind: kind, Err: cause}
}

// at records the location of the failing term.
func (e *ParseError) at(index int, term string) *ParseError {
	e.Index, e.Term = index, term

	return e
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("term %d %q: %s", e.Index+1, e.Term, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports whether target is [ErrSelector] or the sentinel of e.Kind.
func (e *ParseError) Is(target error) bool {
	return target == ErrSelector || target == e.Kind.sentinel()
}

// LogValue implements [slog.LogValuer].
func (e *ParseError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("kind", e.Kind.String()),
		slog.Int("term", e.Index+1),
		slog.String("text", e.Term),
	}

	if e.Err != nil {
		attrs = append(attrs, slog.String("cause", e.Err.Error()))
	}

	return slog.GroupValue(attrs...)
}
