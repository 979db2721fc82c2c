package csr

import "fmt"

// Validate checks the CSR well-formedness contract from the data model:
// RowPtr has length N+1, starts at 0, is non-decreasing, agrees with the
// stored nnz, and every row's column indices are unique and in range.
// It is never called from inside a kernel; use it in tests or at a trust
// boundary where the caller wants the precondition checked explicitly.
//
// Complexity: O(nnz) amortized (a small per-row set is built and discarded).
func Validate(m *Matrix) error {
	if len(m.RowPtr) != m.N+1 {
		return fmt.Errorf("%w: len=%d n+1=%d", ErrBadRowPtrLength, len(m.RowPtr), m.N+1)
	}
	if m.RowPtr[0] != 0 {
		return fmt.Errorf("%w: got %d", ErrRowPtrNotZeroStart, m.RowPtr[0])
	}
	for i := 0; i < m.N; i++ {
		if m.RowPtr[i+1] < m.RowPtr[i] {
			return fmt.Errorf("%w: row_ptr[%d]=%d > row_ptr[%d]=%d", ErrRowPtrNotMonotone, i, m.RowPtr[i], i+1, m.RowPtr[i+1])
		}
	}
	if len(m.ColIdx) != len(m.Val) {
		return fmt.Errorf("%w: col_idx=%d val=%d", ErrColValLengthMismatch, len(m.ColIdx), len(m.Val))
	}
	if m.RowPtr[m.N] != len(m.ColIdx) {
		return fmt.Errorf("%w: row_ptr[n]=%d stored=%d", ErrRowPtrNNZMismatch, m.RowPtr[m.N], len(m.ColIdx))
	}

	seen := make(map[int]struct{}, 16)
	for i := 0; i < m.N; i++ {
		cols, _ := m.Row(i)
		for k := range seen {
			delete(seen, k)
		}
		for _, j := range cols {
			if j < 0 || j >= m.N {
				return fmt.Errorf("%w: row %d col %d", ErrColumnOutOfRange, i, j)
			}
			if _, dup := seen[j]; dup {
				return fmt.Errorf("%w: row %d col %d", ErrDuplicateColumn, i, j)
			}
			seen[j] = struct{}{}
		}
	}

	return nil
}
