package csr

// Matrix is a compressed-sparse-row matrix: RowPtr has length N+1,
// ColIdx and Val have length RowPtr[N] (nnz), and for each row i the
// entries ColIdx[RowPtr[i]:RowPtr[i+1]] are unique but not necessarily
// sorted.
type Matrix struct {
	N      int       // number of rows
	RowPtr []int     // length N+1
	ColIdx []int     // length RowPtr[N]
	Val    []float64 // length RowPtr[N]
}

// NNZ returns the number of stored entries, len(ColIdx); once RowPtr is
// filled this equals RowPtr[N].
func (m *Matrix) NNZ() int {
	return len(m.ColIdx)
}

// Row returns the column-index and value slices for row i, in storage order.
func (m *Matrix) Row(i int) ([]int, []float64) {
	start, end := m.RowPtr[i], m.RowPtr[i+1]

	return m.ColIdx[start:end], m.Val[start:end]
}

// NewMatrix allocates a Matrix with N rows and storage for nnz entries.
// RowPtr is zeroed (caller fills it during a pass-1 sizing step); ColIdx and
// Val are sized to nnz but left zero-valued.
func NewMatrix(n, nnz int) *Matrix {
	return &Matrix{
		N:      n,
		RowPtr: make([]int, n+1),
		ColIdx: make([]int, nnz),
		Val:    make([]float64, nnz),
	}
}
