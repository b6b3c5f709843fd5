package alto

import (
	"log"
	"os"
)

// Reporter is the injected diagnostic sink. The engine never writes
// to stderr directly or panics on a reportable condition; it always
// goes through a Reporter so callers can redirect, silence, or collect
// diagnostics.
type Reporter interface {
	Report(format string, args ...interface{})
}

// stderrReporter is the default Reporter, writing a timestamp-free
// line prefixed with "[alto]" to os.Stderr.
type stderrReporter struct {
	logger *log.Logger
}

// NewStderrReporter returns the default Reporter implementation.
func NewStderrReporter() Reporter {
	return &stderrReporter{logger: log.New(os.Stderr, "[alto] ", 0)}
}

func (r *stderrReporter) Report(format string, args ...interface{}) {
	r.logger.Printf(format, args...)
}

// discardReporter silently drops every report. Useful for tests that
// want to assert on accumulated errors instead of console output.
type discardReporter struct{}

// NewDiscardReporter returns a Reporter that ignores every report.
func NewDiscardReporter() Reporter {
	return discardReporter{}
}

func (discardReporter) Report(string, ...interface{}) {}
