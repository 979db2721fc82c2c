// Package amgsetup is the orchestration facade wiring classical strength of
// connection, C/F splitting (Ruge-Stuben or CLJP), and interpolation
// (direct, standard, or approximate ideal restriction) into one setup call
// for a single matrix. It reintroduces no cycling and no Galerkin product:
// the excluded full multigrid solver lives in
// original_source/pyamg/classical/classical.py, out of scope per
// SPEC_FULL.md §4 design notes.
//
// Setup tags every call with a correlation ID (github.com/google/uuid) so a
// caller fanning Setup out across goroutines, one per independent problem,
// can demultiplex interleaved diagnostic output (§5: "parallelism expected
// across independent problems, not inside a kernel"). Errors returned at
// this boundary carry a stack trace via github.com/pkg/errors, while the
// kernels underneath keep plain fmt.Errorf/%w on their hot paths.
package amgsetup
