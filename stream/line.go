package stream

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

// Reader is a [Supplier] of newline-delimited lines.
type Reader struct {
	r *bufio.Reader
}

// NewReader returns a [Reader] that reads lines from r.
//
// Lines are split on '\n' and a trailing '\r' is removed. A final line without
// a terminator is returned as a line of its own. Line length is unbounded.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Next implements [Supplier].
func (r *Reader) Next() (string, error) {
	line, err := r.r.ReadString('\n')

	switch {
	case err == nil:
		return trimEOL(line), nil

	case errors.Is(err, io.EOF) && line != "":
		return trimEOL(line), nil

	default:
		return "", err
	}
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")

	return strings.TrimSuffix(line, "\r")
}

// writerConfig holds the options of a [Writer].
type writerConfig struct {
	numbers bool
}

// WriterOption applies a configuration option to a [Writer].
type WriterOption func(writerConfig) writerConfig

// WithNumbers returns a [WriterOption] that prefixes each line with its
// position and a tab.
func WithNumbers(enable bool) WriterOption {
	return func(c writerConfig) writerConfig {
		c.numbers = enable

		return c
	}
}

// Writer is a buffered [Sink] writing newline-terminated lines.
type Writer struct {
	w       *bufio.Writer
	scratch []byte
	writerConfig
}

// NewWriter returns a [Writer] that writes lines to w.
// Output is buffered until [Writer.Flush].
func NewWriter(w io.Writer, opts ...WriterOption) *Writer {
	var cfg writerConfig
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return &Writer{w: bufio.NewWriter(w), writerConfig: cfg}
}

// Emit implements [Sink].
func (w *Writer) Emit(rec Record) error {
	if w.numbers {
		w.scratch = strconv.AppendUint(w.scratch[:0], rec.Position, 10)
		w.scratch = append(w.scratch, '\t')

		_, err := w.w.Write(w.scratch)
		if err != nil {
			return err
		}
	}

	_, err := w.w.WriteString(rec.Text)
	if err != nil {
		return err
	}

	return w.w.WriteByte('\n')
}

// Flush implements [Flusher].
func (w *Writer) Flush() error { return w.w.Flush() }
