package console

import (
	"fmt"
	"sync"
)

// Severity orders diagnostics from informational to error.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Diagnostic is a non-fatal problem found while building, compiling or
// rendering a tree. Code is a stable kebab-case identifier tests can match on.
type Diagnostic struct {
	Severity Severity
	Code     string
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: [%s] %s", d.Severity, d.Code, d.Message)
}

// Reporter receives diagnostics. Implementations must be safe for concurrent use.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(d Diagnostic)

func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// Collector records every diagnostic it receives.
type Collector struct {
	mu    sync.Mutex
	diags []Diagnostic
}

func (c *Collector) Report(d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diags = append(c.diags, d)
}

// Diagnostics returns a copy of the recorded diagnostics in arrival order.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Diagnostic, len(c.diags))
	copy(out, c.diags)
	return out
}

// Codes returns the codes of the recorded diagnostics in arrival order.
func (c *Collector) Codes() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	codes := make([]string, len(c.diags))
	for i, d := range c.diags {
		codes[i] = d.Code
	}
	return codes
}

var (
	defaultMu       sync.RWMutex
	defaultReporter Reporter = ReporterFunc(LogDiagnostic)
)

// Default returns the process-wide reporter.
func Default() Reporter {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultReporter
}

// SetReporter replaces the process-wide reporter and returns a func restoring
// the previous one. A nil r restores console logging.
func SetReporter(r Reporter) (restore func()) {
	if r == nil {
		r = ReporterFunc(LogDiagnostic)
	}
	defaultMu.Lock()
	prev := defaultReporter
	defaultReporter = r
	defaultMu.Unlock()
	return func() {
		defaultMu.Lock()
		defaultReporter = prev
		defaultMu.Unlock()
	}
}

// Warnf reports a warning through r, or through Default when r is nil.
func Warnf(r Reporter, code, format string, args ...any) {
	emit(r, SeverityWarning, code, format, args...)
}

// Errorf reports an error through r, or through Default when r is nil.
func Errorf(r Reporter, code, format string, args ...any) {
	emit(r, SeverityError, code, format, args...)
}

func emit(r Reporter, sev Severity, code, format string, args ...any) {
	if r == nil {
		r = Default()
	}
	r.Report(Diagnostic{Severity: sev, Code: code, Message: fmt.Sprintf(format, args...)})
}

// LogDiagnostic writes d to the console, choosing the function by severity.
func LogDiagnostic(d Diagnostic) {
	msg := fmt.Sprintf("[%s] %s", d.Code, d.Message)
	switch d.Severity {
	case SeverityError:
		Error(msg)
	case SeverityWarning:
		Warn(msg)
	default:
		Log(msg)
	}
}
