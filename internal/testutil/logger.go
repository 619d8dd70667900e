package testutil

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// NewBufferLogger returns a debug-level text logger writing to the returned buffer.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, &buf
}

// AssertLogged fails the test unless every fragment appears in buf.
func AssertLogged(t *testing.T, buf *bytes.Buffer, fragments ...string) {
	t.Helper()
	out := buf.String()
	for _, f := range fragments {
		if !strings.Contains(out, f) {
			t.Fatalf("expected %q in logs, got %s", f, out)
		}
	}
}
