package cmd

import (
	"log/slog"
	"slices"
)

// Error is a failed step of a command. It names the step, holds the error
// that stopped it and carries attributes identifying the selector, file or
// configuration involved.
//
// Errors created by [NewError] are sentinels: everything derived from one
// with [Error.With] or [Error.Wrap] matches it with [errors.Is].
type Error struct {
	step  string
	cause error
	attrs []slog.Attr
}

func NewError(step string) *Error {
	return &Error{step: step}
}

// Error returns "<step>: <cause>", omitting whichever part is empty.
func (e *Error) Error() string {
	switch {
	case e.cause == nil:
		return e.step
	case e.step == "":
		return e.cause.Error()
	default:
		return e.step + ": " + e.cause.Error()
	}
}

func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.cause == nil && len(t.attrs) == 0 && t.step == e.step
}

// LogValue implements [slog.LogValuer]. A cause that is itself a
// [slog.LogValuer], such as a selector parse error, is logged as a nested
// group instead of a flat message.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.step != "" {
		attrs = append(attrs, slog.String("error", e.step))
	}

	switch cause := e.cause.(type) {
	case nil:
	case slog.LogValuer:
		attrs = append(attrs, slog.Attr{Key: "cause", Value: cause.LogValue()})
	default:
		attrs = append(attrs, slog.String("cause", cause.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap returns a copy of e caused by err.
func (e *Error) Wrap(err error) *Error {
	return &Error{step: e.step, cause: err, attrs: e.attrs}
}

// With returns a copy of e with attrs added.
func (e *Error) With(attrs ...slog.Attr) *Error {
	return &Error{
		step:  e.step,
		cause: e.cause,
		attrs: append(slices.Clip(e.attrs), attrs...),
	}
}

var (
	ErrSelector    = NewError("invalid selector")
	ErrOpenInput   = NewError("open input")
	ErrStream      = NewError("select lines")
	ErrYAMLMarshal = NewError("marshal YAML")
	ErrWriteConfig = NewError("write configuration file")
	ErrFileExists  = NewError("file exists (use --force to overwrite)")
)
