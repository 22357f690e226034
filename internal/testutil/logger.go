// Package testutil provides shared test helpers for structured logging.
package testutil

import (
	"io"
	"log/slog"
	"testing"
)

// NewTestLogger returns a logger that writes through t.Log, so pass logs
// show up attached to the failing test (or under -v).
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// DiscardLogger returns a logger that drops everything. For benchmarks and
// tests asserting on behavior rather than log output.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}
