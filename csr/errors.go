package csr

import "errors"

// Sentinel errors returned by Validate. Kernels themselves never return
// these: malformed CSR passed directly to a kernel is undefined behavior
// per the data-model contract, not a checked error path. Validate exists
// so tests and debug tooling can assert the contract explicitly.
var (
	// ErrBadRowPtrLength indicates RowPtr's length does not match N+1.
	ErrBadRowPtrLength = errors.New("csr: row_ptr length does not match n+1")

	// ErrRowPtrNotZeroStart indicates RowPtr[0] != 0.
	ErrRowPtrNotZeroStart = errors.New("csr: row_ptr[0] must be 0")

	// ErrRowPtrNotMonotone indicates RowPtr is not non-decreasing.
	ErrRowPtrNotMonotone = errors.New("csr: row_ptr must be non-decreasing")

	// ErrRowPtrNNZMismatch indicates RowPtr[N] does not match len(ColIdx)/len(Val).
	ErrRowPtrNNZMismatch = errors.New("csr: row_ptr[n] does not match stored nnz")

	// ErrColValLengthMismatch indicates len(ColIdx) != len(Val).
	ErrColValLengthMismatch = errors.New("csr: col_idx and val length mismatch")

	// ErrDuplicateColumn indicates a row has a repeated column index.
	ErrDuplicateColumn = errors.New("csr: duplicate column index within a row")

	// ErrColumnOutOfRange indicates a column index is outside [0, N).
	ErrColumnOutOfRange = errors.New("csr: column index out of range")
)
