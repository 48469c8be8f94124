package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles used by prettyHandler, bound to the color profile
// of one output.
type palette struct {
	key, str, num, dur, time, yes, no lipgloss.Style

	level map[slog.Level]lipgloss.Style
}

func newPalette(w io.Writer) *palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return &palette{
		key:  fg("8"),
		str:  fg("6"),
		num:  fg("3"),
		dur:  fg("5"),
		time: fg("4"),
		yes:  fg("2"),
		no:   fg("1"),
		level: map[slog.Level]lipgloss.Style{
			slog.Level(LevelTrace): fg("4"),
			slog.LevelDebug:        fg("4"),
			slog.LevelInfo:         fg("2").Bold(true),
			slog.LevelWarn:         fg("3").Bold(true),
			slog.LevelError:        fg("1").Bold(true),
		},
	}
}

// levelStyle returns the style of the nearest named level at or below l.
func (p *palette) levelStyle(l slog.Level) lipgloss.Style {
	for _, named := range []slog.Level{
		slog.LevelError, slog.LevelWarn, slog.LevelInfo, slog.LevelDebug,
	} {
		if l >= named {
			return p.level[named]
		}
	}

	return p.level[slog.Level(LevelTrace)]
}

// prettyHandler writes records as styled key=value text on a single line.
type prettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	pal    *palette
	attrs  []byte // preformatted attributes from WithAttrs
	prefix string // dotted group prefix from WithGroup
}

func newPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *prettyHandler {
	return &prettyHandler{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
		pal:  newPalette(w),
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}

	return level >= minLevel
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		h.writeAttr(buf, "", slog.Time(slog.TimeKey, r.Time))
	}

	h.writeAttr(buf, "", slog.Any(slog.LevelKey, r.Level))

	if h.opts.AddSource && r.PC != 0 {
		if src := r.Source(); src != nil {
			h.writeAttr(buf, "", slog.String(slog.SourceKey,
				fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	h.writeAttr(buf, "", slog.String(slog.MessageKey, r.Message))

	if len(h.attrs) > 0 {
		buf.WriteByte(' ')
		buf.Write(h.attrs)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, h.prefix, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	buf := bytes.NewBuffer(bytes.Clone(h.attrs))
	for _, a := range attrs {
		h.writeAttr(buf, h.prefix, a)
	}

	c := *h
	c.attrs = buf.Bytes()

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.prefix = h.prefix + name + "."

	return &c
}

// writeAttr appends a space-separated key=value pair to buf, applying
// ReplaceAttr to top-level attributes and flattening groups into dotted keys.
func (h *prettyHandler) writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		if a.Key != "" {
			prefix += a.Key + "."
		}

		for _, ga := range group {
			h.writeAttr(buf, prefix, ga)
		}

		return
	}

	if h.opts.ReplaceAttr != nil && prefix == "" {
		a = h.opts.ReplaceAttr(nil, a)
		a.Value = a.Value.Resolve()
	}

	if a.Equal(slog.Attr{}) {
		return
	}

	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(h.pal.key.Render(prefix + a.Key))
	buf.WriteByte('=')
	buf.WriteString(h.styleValue(a.Key, a.Value))
}

func (h *prettyHandler) styleValue(key string, v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		s := v.String()

		if key == slog.LevelKey {
			return h.pal.levelStyle(slog.Level(ParseLevel(s))).Render(s)
		}

		if needsQuoting(s) {
			s = strconv.Quote(s)
		}

		return h.pal.str.Render(s)

	case slog.KindInt64, slog.KindUint64, slog.KindFloat64:
		return h.pal.num.Render(v.String())

	case slog.KindBool:
		if v.Bool() {
			return h.pal.yes.Render("true")
		}

		return h.pal.no.Render("false")

	case slog.KindDuration:
		return h.pal.dur.Render(v.Duration().String())

	case slog.KindTime:
		return h.pal.time.Render(v.Time().Format(time.RFC3339))

	case slog.KindAny:
		if level, ok := v.Any().(slog.Level); ok {
			return h.pal.levelStyle(level).
				Render(strings.ToUpper(Level(level).String()))
		}

		if err, ok := v.Any().(error); ok {
			return h.pal.no.Render(strconv.Quote(err.Error()))
		}

		return h.pal.str.Render(v.String())

	default:
		return h.pal.str.Render(v.String())
	}
}

// needsQuoting reports whether s must be quoted to stay a single token.
func needsQuoting(s string) bool {
	if s == "" {
		return true
	}

	for _, r := range s {
		if r <= ' ' || r == '=' || r == '"' || r == 0x7f {
			return true
		}
	}

	return false
}
