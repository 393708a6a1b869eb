package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	line := strings.TrimSpace(buf.String())
	out := map[string]any{}
	if err := json.Unmarshal([]byte(line), &out); err != nil {
		t.Fatalf("decode log line %q: %v", line, err)
	}
	return out
}

func TestLogger_WritesKeyValues(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelInfo, &buf).With("component", "submission")

	logger.Warn("team matches several games", "week", 7, "error", errors.New("ambiguous"))

	got := decodeLine(t, &buf)
	if got["msg"] != "team matches several games" || got["level"] != "WARN" {
		t.Fatalf("unexpected entry: %+v", got)
	}
	if got["component"] != "submission" || got["week"] != float64(7) || got["error"] != "ambiguous" {
		t.Fatalf("unexpected fields: %+v", got)
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelWarn, &buf)

	logger.Info("ignored")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %s", buf.String())
	}
}

func TestLogger_ContextAddsTraceIDs(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelInfo, &buf)

	spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{1, 2, 3},
		SpanID:     trace.SpanID{4, 5, 6},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), spanCtx)

	logger.InfoContext(ctx, "pick submitted")

	got := decodeLine(t, &buf)
	if got["trace_id"] != spanCtx.TraceID().String() || got["span_id"] != spanCtx.SpanID().String() {
		t.Fatalf("missing trace fields: %+v", got)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for raw, want := range cases {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestLogger_OddArgumentsAndNilReceiver(t *testing.T) {
	var buf bytes.Buffer
	SetDefault(New(LevelInfo, &buf))
	t.Cleanup(func() { SetDefault(nil) })

	var logger *Logger
	logger.Info("standings revealed", 42, "first", "dangling")

	got := decodeLine(t, &buf)
	if got["arg"] != "first" {
		t.Fatalf("expected non-string key to become arg: %+v", got)
	}
	if value, ok := got["dangling"]; !ok || value != nil {
		t.Fatalf("expected dangling key logged as null: %+v", got)
	}
	if caller, _ := got["caller"].(string); !strings.HasPrefix(caller, "logging/logger_test.go:") {
		t.Fatalf("unexpected caller: %v", got["caller"])
	}
}
