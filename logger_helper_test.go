package csp

import "github.com/ezex-io/gopkg/csp/internal/logger"

// flagLogger is a minimal logger.Logger used in tests to observe
// whether a log call happened, without depending on slog output
// formatting.
type flagLogger struct {
	called *bool
}

func nilSafeLogger(called *bool) logger.Logger {
	return flagLogger{called: called}
}

func (f flagLogger) Debug(string, ...any) { *f.called = true }
func (f flagLogger) Info(string, ...any)  { *f.called = true }
func (f flagLogger) Warn(string, ...any)  { *f.called = true }
func (f flagLogger) Error(string, ...any) { *f.called = true }
func (f flagLogger) Fatal(string, ...any) { *f.called = true }
func (f flagLogger) With(...any) logger.Logger {
	return f
}
