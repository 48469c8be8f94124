package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestMake_DefaultConfiguration(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf)

	if logger.Level() != LevelInfo {
		t.Errorf("expected default level info, got %v", logger.Level())
	}

	if logger.caller {
		t.Error("expected caller disabled by default")
	}

	if logger.Format() != FormatText {
		t.Errorf("expected default format text, got %v", logger.Format())
	}
}

func TestMake_WithLevel_FiltersMessages(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithLevel(LevelDebug))

	logger.Debug("debug message")
	if !strings.Contains(buf.String(), "debug message") {
		t.Error("debug message not logged after setting level to Debug")
	}

	buf.Reset()
	logger = Make(&buf, WithLevel(LevelError))

	logger.Info("info message")
	if buf.Len() > 0 {
		t.Error("info message logged when level is Error")
	}

	logger.Error("error message")
	if !strings.Contains(buf.String(), "error message") {
		t.Error("error message not logged at Error level")
	}
}

func TestMake_TraceLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithLevel(LevelTrace), WithPretty(false))

	logger.Trace("trace message")

	if !strings.Contains(buf.String(), "level=TRACE") {
		t.Errorf("expected TRACE level name, got: %s", buf.String())
	}
}

func TestMake_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithFormat(FormatJSON), WithTimeLayout("none"))

	logger.Warn("json message", slog.Int("line", 7), slog.String("term", "4..2"))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v: %s", err, buf.String())
	}

	if rec["msg"] != "json message" || rec["level"] != "WARN" {
		t.Errorf("unexpected record: %v", rec)
	}

	if rec["line"] != float64(7) || rec["term"] != "4..2" {
		t.Errorf("missing attributes: %v", rec)
	}

	if _, ok := rec["time"]; ok {
		t.Errorf("expected time to be omitted: %v", rec)
	}
}

func TestMake_WithTimeLayout(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		want   string
		absent bool
	}{
		{"rfc3339 named", "RFC3339", "T", false},
		{"rfc3339 nano named", "rfc-3339-nano", ".", false},
		{"kitchen", "Kitchen", "M", false},
		{"none", "none", "time=", true},
		{"empty", "", "time=", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := Make(&buf, WithTimeLayout(tt.layout), WithPretty(false))
			logger.Info("test")

			output := buf.String()
			if tt.absent {
				if strings.Contains(output, tt.want) {
					t.Errorf("expected %q to be absent, got: %s", tt.want, output)
				}

				return
			}

			if !strings.Contains(output, tt.want) {
				t.Errorf("expected time format to contain %q, got: %s", tt.want, output)
			}
		})
	}
}

func TestMake_WithCaller(t *testing.T) {
	for _, pretty := range []bool{false, true} {
		var buf bytes.Buffer
		logger := Make(&buf, WithCaller(true), WithPretty(pretty))
		logger.Info("test message")

		if !strings.Contains(buf.String(), "log_test.go") {
			t.Errorf("pretty=%v: expected caller file in output, got: %s", pretty, buf.String())
		}
	}
}

func TestLogger_With(t *testing.T) {
	for _, pretty := range []bool{false, true} {
		var buf bytes.Buffer
		logger := Make(&buf, WithPretty(pretty)).With(slog.String("component", "stream"))

		logger.Info("first")
		logger.Info("second")

		if strings.Count(buf.String(), "component=stream") != 2 {
			t.Errorf("pretty=%v: expected attribute on every message, got: %s", pretty, buf.String())
		}
	}
}

func TestLogger_Wrap(t *testing.T) {
	var buf bytes.Buffer
	base := Make(&buf, WithLevel(LevelError))
	wrapped := base.Wrap(WithLevel(LevelDebug))

	if base.Level() != LevelError {
		t.Error("Wrap modified the original logger")
	}

	wrapped.Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Error("wrapped logger did not keep the original output")
	}
}

func TestLogger_ZeroValue(t *testing.T) {
	var logger Logger

	logger.Info("discarded")
	logger.With(slog.Int("a", 1)).Error("discarded")

	if logger.Level() != DefaultLevel || logger.Format() != DefaultFormat {
		t.Error("zero logger should report defaults")
	}

	if logger.Enabled(context.Background(), LevelError) {
		t.Error("zero logger should not be enabled")
	}
}

func TestLogger_ConcurrentUse(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithPretty(true))

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Go(func() {
			logger.Info("concurrent", slog.Int("worker", i))
		})
	}

	wg.Wait()

	if got := strings.Count(buf.String(), "\n"); got != 8 {
		t.Errorf("expected 8 lines, got %d", got)
	}
}

func TestPretty_PlainOnNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithTimeLayout("none"))

	logger.Error("run failed",
		slog.String("path", "my file.txt"),
		slog.Bool("ok", false),
		slog.Group("error", slog.String("kind", "invalid range")),
	)

	want := `level=ERROR msg="run failed" path="my file.txt" ok=false error.kind="invalid range"` + "\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}
