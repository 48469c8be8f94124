package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// ConfigIdentifier is the [kong.Vars] key holding the configuration file path.
const ConfigIdentifier = "configFile"

const (
	// stdinSource is the special source indicator for reading from stdin.
	stdinSource = "-"
	// stdinName identifies stdin in diagnostics.
	stdinName = "<stdin>"
)

type (
	kongContextKey struct{}
	stdioKey       struct{}
)

// stdio holds the standard streams used by commands.
type stdio struct {
	in  io.Reader
	out io.Writer
}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, kongContextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(kongContextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// WithStdio returns a new context.Context whose commands read standard input
// from in and write standard output to out. Nil streams fall back to
// [os.Stdin] and [os.Stdout].
func WithStdio(ctx context.Context, in io.Reader, out io.Writer) context.Context {
	return context.WithValue(ctx, stdioKey{}, stdio{in: in, out: out})
}

func stdioFrom(ctx context.Context) stdio {
	s, _ := ctx.Value(stdioKey{}).(stdio)

	if s.in == nil {
		s.in = os.Stdin
	}

	if s.out == nil {
		s.out = os.Stdout
	}

	return s
}

// openInput opens the named input, where "-" or "" is standard input.
// The returned name identifies the input in diagnostics.
func openInput(ctx context.Context, path string) (r io.ReadCloser, name string, err error) {
	if path == "" || path == stdinSource {
		return io.NopCloser(stdioFrom(ctx).in), stdinName, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, path, err
	}

	return file, path, nil
}
