package csr

import (
	"fmt"
	"os"
)

// Diagnostics receives non-fatal numerical conditions a kernel surfaces but
// does not treat as an error: degenerate denominators, AIR shape mismatches,
// RS priority saturation. Kernels accept a Diagnostics via their Options
// rather than writing to stderr directly, so a caller running many
// independent problems (§5: "parallelism expected across independent
// problems") can redirect or tag output per call.
type Diagnostics interface {
	Printf(format string, args ...interface{})
}

// StderrDiagnostics writes every message to os.Stderr, prefixed with a
// caller-supplied tag so interleaved output from concurrent Setup calls
// stays attributable. DefaultDiagnostics returns it, but the Options of
// rssplit, interp, air and amgsetup default to NoopDiagnostics, so a
// message reaches stderr only when a caller installs this sink.
type StderrDiagnostics struct {
	// Tag prefixes every message, e.g. a correlation ID. May be empty.
	Tag string
}

// Printf writes a formatted diagnostic line to stderr.
func (d StderrDiagnostics) Printf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if d.Tag != "" {
		fmt.Fprintf(os.Stderr, "[%s] %s\n", d.Tag, msg)
	} else {
		fmt.Fprintf(os.Stderr, "%s\n", msg)
	}
}

// NoopDiagnostics discards every message. Useful in tests and benchmarks
// that intentionally exercise degenerate-denominator paths.
type NoopDiagnostics struct{}

// Printf discards the message.
func (NoopDiagnostics) Printf(string, ...interface{}) {}

// DefaultDiagnostics returns the package default: StderrDiagnostics with no tag.
func DefaultDiagnostics() Diagnostics { return StderrDiagnostics{} }
