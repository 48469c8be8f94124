package cmd

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/ardnew/line/selector"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{name: "message_only", err: NewError("open input"), want: "open input"},
		{name: "wrapped", err: NewError("open input").Wrap(io.EOF), want: "open input: EOF"},
		{name: "cause_only", err: NewError("").Wrap(io.EOF), want: "EOF"},
		{name: "empty", err: NewError(""), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	err := ErrOpenInput.With(slog.String("file", "x")).Wrap(io.ErrUnexpectedEOF)

	if !errors.Is(err, ErrOpenInput) {
		t.Error("derived error should match its sentinel")
	}

	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("derived error should match its cause")
	}

	if errors.Is(err, ErrStream) {
		t.Error("derived error should not match another sentinel")
	}
}

func TestError_WithIsImmutable(t *testing.T) {
	base := NewError("base").With(slog.Int("a", 1))
	derived := base.With(slog.Int("b", 2))

	if len(base.attrs) != 1 {
		t.Errorf("base attrs = %d, want 1", len(base.attrs))
	}

	if len(derived.attrs) != 2 {
		t.Errorf("derived attrs = %d, want 2", len(derived.attrs))
	}
}

func TestError_LogValue(t *testing.T) {
	err := ErrSelector.With(slog.String("selector", "0")).Wrap(io.EOF)

	v := err.LogValue()
	if v.Kind() != slog.KindGroup {
		t.Fatalf("LogValue() kind = %v, want group", v.Kind())
	}

	got := map[string]string{}
	for _, a := range v.Group() {
		got[a.Key] = a.Value.String()
	}

	want := map[string]string{
		"error":    "invalid selector",
		"cause":    "EOF",
		"selector": "0",
	}

	for k, w := range want {
		if got[k] != w {
			t.Errorf("attr %q = %q, want %q", k, got[k], w)
		}
	}
}

func TestError_LogValueNestsCause(t *testing.T) {
	_, perr := selector.Parse("1,0")

	err := ErrSelector.With(slog.String("selector", "1,0")).Wrap(perr)

	var cause slog.Value

	for _, a := range err.LogValue().Group() {
		if a.Key == "cause" {
			cause = a.Value
		}
	}

	if cause.Kind() != slog.KindGroup {
		t.Fatalf("cause kind = %v, want group", cause.Kind())
	}

	got := map[string]string{}
	for _, a := range cause.Group() {
		got[a.Key] = a.Value.String()
	}

	want := map[string]string{
		"kind": "invalid number",
		"term": "2",
		"text": "0",
	}

	for k, w := range want {
		if got[k] != w {
			t.Errorf("cause attr %q = %q, want %q", k, got[k], w)
		}
	}
}
