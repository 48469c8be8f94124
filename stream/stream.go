package stream

import (
	"context"
	"errors"
	"io"

	"github.com/ardnew/line/pkg"
	"github.com/ardnew/line/selector"
)

// Runtime errors returned by [Run]. Both wrap the position of the failing line
// and the underlying I/O error.
var (
	ErrRead  = pkg.MakeErrorf("read line")
	ErrWrite = pkg.MakeErrorf("write line")
)

// Record is a line of text and its 1-based position in the input.
type Record struct {
	Position uint64
	Text     string
}

// Supplier provides input lines in order.
//
// Next returns the next line without its terminator, or [io.EOF] once the
// input is exhausted. Any other error is fatal to [Run].
type Supplier interface {
	Next() (string, error)
}

// SupplierFunc adapts a function to a [Supplier].
type SupplierFunc func() (string, error)

// Next calls f.
func (f SupplierFunc) Next() (string, error) { return f() }

// Sink receives selected lines.
type Sink interface {
	Emit(rec Record) error
}

// SinkFunc adapts a function to a [Sink].
type SinkFunc func(rec Record) error

// Emit calls f.
func (f SinkFunc) Emit(rec Record) error { return f(rec) }

// Flusher is implemented by sinks that buffer output.
// [Run] flushes such a sink before returning, even when the run fails.
type Flusher interface {
	Flush() error
}

// Run copies the lines of in selected by set to out.
//
// Lines are numbered from 1. Each selected line is emitted exactly once and
// in input order, regardless of the order or overlap of the terms in set.
// Run returns nil when the input is exhausted or when the last position set
// can select has been passed, whichever comes first.
//
// If out is a [Flusher], emitted lines are flushed before Run waits for the
// next line, so output keeps pace with a slow input.
//
// A read or write failure aborts the run with an error matching [ErrRead] or
// [ErrWrite]. Cancelling ctx aborts the run with the context's error, also
// while in is blocked reading a line.
func Run(ctx context.Context, set selector.Set, in Supplier, out Sink) (err error) {
	flusher, _ := out.(Flusher)
	if flusher != nil {
		defer func() {
			ferr := flusher.Flush()
			if ferr != nil && err == nil {
				err = ErrWrite.Wrap(ferr)
			}
		}()
	}

	next, stop := reader(ctx, in)
	defer stop()

	cur := set.Cursor()

	var (
		text    string
		pending bool
	)

	for pos := uint64(1); !cur.Done(pos); pos++ {
		err = ctx.Err()
		if err != nil {
			return err
		}

		if pending {
			err = flusher.Flush()
			if err != nil {
				return ErrWrite.Wrapf("line %d", pos-1).Wrap(err)
			}

			pending = false
		}

		text, err = next()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			if cerr := ctx.Err(); cerr != nil {
				return cerr
			}

			return ErrRead.Wrapf("line %d", pos).Wrap(err)
		}

		if !cur.Match(pos) {
			continue
		}

		err = out.Emit(Record{Position: pos, Text: text})
		if err != nil {
			return ErrWrite.Wrapf("line %d", pos).Wrap(err)
		}

		pending = flusher != nil
	}

	return nil
}

type readResult struct {
	text string
	err  error
}

// reader returns a function reading the next line from in.
//
// Unless ctx can never be cancelled, in is read on its own goroutine, one line
// per request, and next returns the context's error as soon as ctx is done.
// A read still blocked at that point is abandoned; it ends with the input.
// stop releases the goroutine once no read is in progress.
func reader(ctx context.Context, in Supplier) (next func() (string, error), stop func()) {
	if ctx.Done() == nil {
		return in.Next, func() {}
	}

	req := make(chan struct{})
	res := make(chan readResult, 1)

	go func() {
		for range req {
			text, err := in.Next()
			res <- readResult{text: text, err: err}
		}
	}()

	next = func() (string, error) {
		select {
		case req <- struct{}{}:
		case <-ctx.Done():
			return "", ctx.Err()
		}

		select {
		case r := <-res:
			return r.text, r.err
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	return next, func() { close(req) }
}
