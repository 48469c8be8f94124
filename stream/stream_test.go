package stream

import (
	"bytes"
	"context"
	"errors"
	"io"
	"slices"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ardnew/line/selector"
)

// numbered returns a Supplier of the lines "1" through "n".
func numbered(n int) *countingSupplier {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = strconv.Itoa(i + 1)
	}

	return &countingSupplier{lines: lines}
}

type countingSupplier struct {
	lines []string
	reads int
}

func (s *countingSupplier) Next() (string, error) {
	if s.reads >= len(s.lines) {
		return "", io.EOF
	}

	s.reads++

	return s.lines[s.reads-1], nil
}

// collect returns a Sink appending the text of each record to out.
func collect(out *[]string) SinkFunc {
	return func(rec Record) error {
		*out = append(*out, rec.Text)

		return nil
	}
}

func TestRun_Scenarios(t *testing.T) {
	tests := []struct {
		expr string
		want []string
	}{
		{"5", []string{"5"}},
		{"2..4", []string{"2", "3"}},
		{"2..=4", []string{"2", "3", "4"}},
		{"5,8", []string{"5", "8"}},
		{"8,5", []string{"5", "8"}},
		{"2,2", []string{"2"}},
		{"1..3,2..4", []string{"1", "2", "3"}},
		{"10,1..=2,2", []string{"1", "2", "10"}},
		{"9..=20", []string{"9", "10"}},
		{"20", nil},
		{"4..4", nil},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			var got []string

			err := Run(t.Context(), selector.MustParse(tt.expr), numbered(10), collect(&got))
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			if !slices.Equal(got, tt.want) {
				t.Errorf("output = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRun_SingleTermProperty(t *testing.T) {
	const total = 7

	for n := 1; n <= total+3; n++ {
		var got []Record

		set := selector.MustParse(strconv.Itoa(n))
		sink := SinkFunc(func(rec Record) error {
			got = append(got, rec)

			return nil
		})

		err := Run(t.Context(), set, numbered(total), sink)
		if err != nil {
			t.Fatalf("Run(%d) failed: %v", n, err)
		}

		switch {
		case n <= total:
			if len(got) != 1 || got[0].Position != uint64(n) || got[0].Text != strconv.Itoa(n) {
				t.Errorf("Run(%d) = %v, want exactly line %d", n, got, n)
			}

		case len(got) != 0:
			t.Errorf("Run(%d) = %v, want no output", n, got)
		}
	}
}

func TestRun_StopsAfterLastSelected(t *testing.T) {
	in := numbered(100)

	var got []string

	err := Run(t.Context(), selector.MustParse("3,5..=6"), in, collect(&got))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if in.reads != 6 {
		t.Errorf("read %d lines, want 6", in.reads)
	}

	in = numbered(100)

	err = Run(t.Context(), selector.MustParse("7..7"), in, collect(&got))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if in.reads != 0 {
		t.Errorf("read %d lines for an empty selection, want 0", in.reads)
	}
}

func TestRun_ReadError(t *testing.T) {
	errBoom := errors.New("boom")
	calls := 0

	in := SupplierFunc(func() (string, error) {
		calls++
		if calls == 3 {
			return "", errBoom
		}

		return strconv.Itoa(calls), nil
	})

	var got []string

	err := Run(t.Context(), selector.MustParse("1..=10"), in, collect(&got))

	if !errors.Is(err, ErrRead) {
		t.Errorf("expected ErrRead, got %v", err)
	}

	if !errors.Is(err, errBoom) {
		t.Errorf("expected wrapped cause, got %v", err)
	}

	if errors.Is(err, ErrWrite) {
		t.Errorf("read failure matched ErrWrite: %v", err)
	}

	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("expected failing position in %q", err)
	}

	if !slices.Equal(got, []string{"1", "2"}) {
		t.Errorf("emitted %v before failure, want [1 2]", got)
	}
}

func TestRun_WriteError(t *testing.T) {
	errClosed := errors.New("closed pipe")
	in := numbered(10)
	emits := 0

	out := SinkFunc(func(Record) error {
		emits++

		return errClosed
	})

	err := Run(t.Context(), selector.MustParse("2..=9"), in, out)

	if !errors.Is(err, ErrWrite) || !errors.Is(err, errClosed) {
		t.Errorf("expected ErrWrite wrapping cause, got %v", err)
	}

	if emits != 1 || in.reads != 2 {
		t.Errorf("run continued after write failure: emits=%d reads=%d", emits, in.reads)
	}
}

// failWriter fails every write.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestRun_FlushError(t *testing.T) {
	err := Run(t.Context(), selector.MustParse("1"), numbered(3), NewWriter(failWriter{}))

	if !errors.Is(err, ErrWrite) || !errors.Is(err, io.ErrClosedPipe) {
		t.Errorf("expected flush failure as ErrWrite, got %v", err)
	}
}

func TestRun_FlushesOnReadError(t *testing.T) {
	var buf bytes.Buffer

	in := SupplierFunc(func() func() (string, error) {
		n := 0

		return func() (string, error) {
			n++
			if n > 2 {
				return "", io.ErrUnexpectedEOF
			}

			return "x" + strconv.Itoa(n), nil
		}
	}())

	err := Run(t.Context(), selector.MustParse("1..=5"), in, NewWriter(&buf))
	if !errors.Is(err, ErrRead) {
		t.Fatalf("expected ErrRead, got %v", err)
	}

	if buf.String() != "x1\nx2\n" {
		t.Errorf("emitted output not flushed: %q", buf.String())
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	in := numbered(10)

	var got []string

	out := SinkFunc(func(rec Record) error {
		got = append(got, rec.Text)
		if rec.Position == 2 {
			cancel()
		}

		return nil
	})

	err := Run(ctx, selector.MustParse("1..=10"), in, out)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}

	if in.reads != 2 || len(got) != 2 {
		t.Errorf("run continued after cancel: reads=%d emitted=%v", in.reads, got)
	}
}

func TestRun_FlushesBeforeWaiting(t *testing.T) {
	var buf bytes.Buffer

	var downstream []int

	in := SupplierFunc(func() (string, error) {
		downstream = append(downstream, buf.Len())

		return "ab", nil
	})

	err := Run(t.Context(), selector.MustParse("1,3"), in, NewWriter(&buf))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Line 1 is written before line 2 is requested, and nothing new follows
	// the unselected line 2. Line 3 is the last, so no fourth read happens.
	want := []int{0, 3, 3}
	if !slices.Equal(downstream, want) {
		t.Errorf("bytes written before each read = %v, want %v", downstream, want)
	}

	if buf.String() != "ab\nab\n" {
		t.Errorf("output = %q, want %q", buf.String(), "ab\nab\n")
	}
}

func TestRun_CancelWhileReading(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	waiting := make(chan struct{})
	release := make(chan struct{})

	defer close(release)

	n := 0
	in := SupplierFunc(func() (string, error) {
		n++
		if n == 1 {
			return "first", nil
		}

		close(waiting)
		<-release

		return "", io.EOF
	})

	var buf bytes.Buffer

	done := make(chan error, 1)

	go func() {
		done <- Run(ctx, selector.MustParse("1..=5"), in, NewWriter(&buf))
	}()

	<-waiting
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return while the read was blocked")
	}

	if buf.String() != "first\n" {
		t.Errorf("output = %q, want %q", buf.String(), "first\n")
	}
}

func TestRun_EndToEnd(t *testing.T) {
	input := "alpha\r\nbeta\n\ngamma\ndelta"

	var buf bytes.Buffer

	err := Run(
		t.Context(),
		selector.MustParse("5,1,3..=4"),
		NewReader(strings.NewReader(input)),
		NewWriter(&buf, WithNumbers(true)),
	)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := "1\talpha\n3\t\n4\tgamma\n5\tdelta\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func BenchmarkRun(b *testing.B) {
	var input strings.Builder
	for i := range 10000 {
		input.WriteString(strconv.Itoa(i))
		input.WriteByte('\n')
	}

	set := selector.MustParse("1..=100,250,300..400,1000..=2000,9999")
	src := input.String()

	for b.Loop() {
		err := Run(b.Context(), set, NewReader(strings.NewReader(src)), NewWriter(io.Discard))
		if err != nil {
			b.Fatal(err)
		}
	}
}
