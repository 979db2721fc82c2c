// Package csr defines the compressed-sparse-row matrix type shared by every
// kernel in this module, plus the diagnostics sink kernels use to surface
// non-fatal numerical conditions (degenerate denominators, shape mismatches)
// without panicking or calling fmt.Println directly.
//
// Matrix is a thin triple (RowPtr, ColIdx, Val) with RowPtr[0]==0,
// RowPtr[N]==nnz, and RowPtr non-decreasing. Column order within a row is not
// assumed sorted unless a specific kernel documents otherwise. Matrix does
// not allocate on behalf of callers: kernels fill caller-provided or
// kernel-returned storage, they never retain a reference to stale storage
// across calls.
//
// Validate is an opt-in helper for tests and debug builds; no kernel in this
// module calls it automatically, since precondition violations on malformed
// CSR are documented as undefined behavior, not a checked error path.
package csr
