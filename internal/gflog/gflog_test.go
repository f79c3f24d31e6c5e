package gflog

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestComponentAddsAttribute(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l.Component("selftest").Info("starting run", "strategy", "GROUP")

	out := buf.String()
	if !strings.Contains(out, `"component":"selftest"`) {
		t.Errorf("output missing component attribute: %s", out)
	}
	if !strings.Contains(out, `"strategy":"GROUP"`) {
		t.Errorf("output missing strategy attribute: %s", out)
	}
}

func TestDefaultLoggerSwap(t *testing.T) {
	var buf bytes.Buffer
	custom := NewWithHandler(slog.NewJSONHandler(&buf, nil))
	prev := Default()
	SetDefault(custom)
	defer SetDefault(prev)

	Info("hello")
	if !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Errorf("expected default logger swap to take effect, got: %s", buf.String())
	}
}
