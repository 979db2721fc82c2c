package amgsetup

import "github.com/amg-kernels/classical/csr"

// taggedDiagnostics prefixes every message with a correlation id before
// forwarding to the caller-supplied sink, the same way baton-sdk tags
// connector sync runs with a uuid so interleaved logs from concurrent runs
// stay attributable.
type taggedDiagnostics struct {
	tag   string
	inner csr.Diagnostics
}

// Printf implements csr.Diagnostics.
func (d *taggedDiagnostics) Printf(format string, args ...interface{}) {
	d.inner.Printf("[%s] "+format, append([]interface{}{d.tag}, args...)...)
}
