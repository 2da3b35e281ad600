package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWritesJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf)

	logger.Info().Str("resource", "contacts").Msg("fetched page")

	out := buf.String()
	if !strings.Contains(out, `"resource":"contacts"`) {
		t.Errorf("Expected structured field in output, got %q", out)
	}
	if !strings.Contains(out, `"message":"fetched page"`) {
		t.Errorf("Expected message in output, got %q", out)
	}
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	if FromContext(context.Background()) != Default() {
		t.Error("FromContext on empty context should return the default logger")
	}
	if FromContext(nil) != Default() { //nolint:staticcheck // nil context is the case under test
		t.Error("FromContext(nil) should return the default logger")
	}
}

func TestWithLoggerRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf)

	ctx := WithLogger(context.Background(), &logger)
	got := FromContext(ctx)

	got.Info().Msg("via context")
	if !strings.Contains(buf.String(), "via context") {
		t.Error("Logger from context should write to the original buffer")
	}
}

func TestWithStageAddsField(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf)

	ctx := WithLogger(context.Background(), &logger)
	ctx = WithStage(ctx, "reconcile")
	ctx = WithConfiguration(ctx, 42)

	Ctx(ctx).Info().Msg("processing")

	out := buf.String()
	if !strings.Contains(out, `"stage":"reconcile"`) {
		t.Errorf("Expected stage field, got %q", out)
	}
	if !strings.Contains(out, `"configuration_id":42`) {
		t.Errorf("Expected configuration_id field, got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":    zerolog.DebugLevel,
		"WARN":     zerolog.WarnLevel,
		"warning":  zerolog.WarnLevel,
		"off":      zerolog.Disabled,
		"nonsense": zerolog.InfoLevel,
	}
	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestCaptureLoggingForTest(t *testing.T) {
	tl := CaptureLoggingForTest(t)

	Info().Msg("captured line")

	if !tl.Contains("captured line") {
		t.Error("Test logger should capture output written to the default logger")
	}
	if tl.Count() != 1 {
		t.Errorf("Expected 1 entry, got %d", tl.Count())
	}
}
