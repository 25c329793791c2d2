package nodegraph

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestDefaultLoggerIsSilent(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled, want silent")
	}
}

func TestSetLoggerNilRestoresDefault(t *testing.T) {
	captureLogs(t)
	if !Logger().Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("custom logger not installed")
	}
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}

func TestUnknownDataKindLogs(t *testing.T) {
	buf := captureLogs(t)
	n := NewNode("n", 0, 0, 100, 60)
	c := n.AddInput("weird", "quaternion")
	if c.Kind != KindNone {
		t.Errorf("Kind = %v, want None", c.Kind)
	}
	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "quaternion") {
		t.Errorf("log output = %q, want a warning naming the kind", out)
	}
}
