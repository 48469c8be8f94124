package cmd

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"

	"golang.org/x/term"

	"github.com/ardnew/line/log"
	"github.com/ardnew/line/selector"
	"github.com/ardnew/line/stream"
)

// Select prints the lines of its input whose positions match a selector.
type Select struct {
	Selector string `arg:""                          help:"Lines to print, e.g. 5, 2..4, 2..=4 or 1,3..=5." placeholder:"SELECTOR"`
	File     string `arg:"" default:"-" optional:"" help:"Input file or '-' for stdin."                     placeholder:"FILE"`

	Number bool `help:"Prefix each line with its position." short:"n"`
}

// Run executes the select command.
func (s *Select) Run(ctx context.Context) error {
	set, err := selector.Parse(s.Selector)
	if err != nil {
		return ErrSelector.
			With(slog.String("selector", s.Selector)).
			Wrap(err)
	}

	log.DebugContext(ctx, "parsed selector",
		slog.String("selector", set.String()),
		slog.Int("terms", set.Len()),
	)

	r, name, err := openInput(ctx, s.File)
	if err != nil {
		return ErrOpenInput.
			With(slog.String("file", name)).
			Wrap(err)
	}
	defer r.Close()

	if f, ok := stdioFrom(ctx).in.(*os.File); ok && name == stdinName &&
		term.IsTerminal(int(f.Fd())) {
		log.InfoContext(ctx, "reading lines from terminal (end input with Ctrl-D)")
	}

	var (
		read    atomic.Uint64 // incremented by the reading goroutine
		emitted uint64
	)

	lines := stream.NewReader(r)
	in := stream.SupplierFunc(func() (string, error) {
		text, err := lines.Next()
		if err == nil {
			read.Add(1)
		}

		return text, err
	})

	w := stream.NewWriter(stdioFrom(ctx).out, stream.WithNumbers(s.Number))
	out := sink{
		Sink: stream.SinkFunc(func(rec stream.Record) error {
			log.TraceContext(ctx, "emit", slog.Uint64("line", rec.Position))

			emitted++

			return w.Emit(rec)
		}),
		Flusher: w,
	}

	err = stream.Run(ctx, set, in, out)

	log.DebugContext(ctx, "selected lines",
		slog.String("file", name),
		slog.Uint64("read", read.Load()),
		slog.Uint64("emitted", emitted),
	)

	if err != nil {
		return ErrStream.
			With(slog.String("file", name)).
			Wrap(err)
	}

	return nil
}

// sink pairs a counting [stream.Sink] with the buffer it writes to, so that
// [stream.Run] still flushes the output.
type sink struct {
	stream.Sink
	stream.Flusher
}
