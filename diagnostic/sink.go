package diagnostic

import (
	"sync"

	"github.com/rs/zerolog"
)

// Sink receives diagnostics from the binding engine.
type Sink interface {
	Report(severity DiagnosticSeverity, message string)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(severity DiagnosticSeverity, message string)

// Report implements Sink.
func (f SinkFunc) Report(severity DiagnosticSeverity, message string) {
	f(severity, message)
}

// Discard drops every report.
var Discard Sink = SinkFunc(func(DiagnosticSeverity, string) {})

// Collector is a Sink that keeps every report. Safe for concurrent use.
type Collector struct {
	mu    sync.Mutex
	diags Diagnostics
}

// Report implements Sink.
func (c *Collector) Report(severity DiagnosticSeverity, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.diags.Report(severity, message)
}

// Snapshot returns a copy of everything collected so far.
func (c *Collector) Snapshot() Diagnostics {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out Diagnostics
	out.Merge(c.diags)

	return out
}

// Messages returns the collected messages of one severity in report order.
func (c *Collector) Messages(severity DiagnosticSeverity) []string {
	snap := c.Snapshot()

	var out []string
	for _, diag := range snap.All() {
		if diag.Severity == severity {
			out = append(out, diag.Message)
		}
	}

	return out
}

// Reset drops everything collected so far.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.diags = Diagnostics{}
}

type zerologSink struct {
	logger zerolog.Logger
}

// NewZerolog returns a Sink writing structured events to logger.
func NewZerolog(logger zerolog.Logger) Sink {
	return zerologSink{logger: logger}
}

// Report implements Sink.
func (s zerologSink) Report(severity DiagnosticSeverity, message string) {
	var event *zerolog.Event

	switch severity {
	case DiagnosticError:
		event = s.logger.Error()
	case DiagnosticWarning:
		event = s.logger.Warn()
	case DiagnosticInfo:
		event = s.logger.Info()
	default:
		event = s.logger.Debug()
	}

	event.Str("component", "propbind").Msg(message)
}
