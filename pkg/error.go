package pkg

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Error represents a chain of errors, ordered from the most general to the
// most specific.
//
// An Error created with [MakeErrorf] can serve as a sentinel: any chain
// derived from it with [Error.Wrap] or [Error.Wrapf] matches it with
// [errors.Is].
type Error []error

// ErrConfig is returned when the configuration file cannot be decoded.
//
// This error should be wrapped with the path of the file and the underlying
// decoder error.
var ErrConfig = MakeErrorf("invalid configuration")

// MakeError constructs an Error from the given errors.
// Nil errors are skipped, and errors that themselves wrap other errors are
// flattened into the chain.
func MakeError(errs ...error) Error {
	var e Error

	for _, err := range errs {
		if err != nil {
			e = append(e, UnwrapErrors(err)...)
		}
	}

	return e
}

// MakeErrorf constructs an Error from a formatted error message.
func MakeErrorf(format string, args ...any) Error {
	return MakeError(fmt.Errorf(format, args...))
}

// Error returns all errors in the chain joined by ": ".
func (e Error) Error() string {
	var sb strings.Builder

	for i, err := range slices.All(e) {
		if i > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Wrap returns a new chain with err appended to a copy of the receiver.
// Nil errors are skipped and Error arguments are spliced in element-wise.
func (e Error) Wrap(err ...error) Error {
	chain := slices.Clip(e)

	for _, x := range err {
		switch x := x.(type) {
		case nil:
		case Error:
			chain = append(chain, x...)
		default:
			chain = append(chain, x)
		}
	}

	return chain
}

// Wrapf returns a new chain with a formatted error appended to a copy of the
// receiver.
func (e Error) Wrapf(format string, args ...any) Error {
	return e.Wrap(fmt.Errorf(format, args...))
}

// Unwrap returns the slice of errors contained in the receiver.
func (e Error) Unwrap() []error {
	return e
}

// Is reports whether target is an Error whose chain is a prefix of the
// receiver's chain.
func (e Error) Is(target error) bool {
	var t Error
	if !errors.As(target, &t) || len(t) == 0 || len(t) > len(e) {
		return false
	}

	for i := range t {
		if e[i] != t[i] {
			return false
		}
	}

	return true
}

// UnwrapErrors recursively unwraps an error chain and returns a slice
// containing all errors in the chain, starting from the innermost error.
func UnwrapErrors(err error) Error {
	if err == nil {
		return nil
	}

	if e, ok := err.(Error); ok {
		return slices.Clone(e)
	}

	chain := Error{}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		for _, wrapped := range e.Unwrap() {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}
	} else if e, ok := err.(interface{ Unwrap() error }); ok {
		chain = append(chain, UnwrapErrors(e.Unwrap())...)
	}

	return append(chain, err)
}
