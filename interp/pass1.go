package interp

import (
	"github.com/amg-kernels/classical/csr"
	"github.com/amg-kernels/classical/rssplit"
)

// Pass1 computes the row pointer for a prolongator B from the splitting
// and strength matrix s: a C-point row has exactly one nonzero (the
// injection entry); an F-point row has one nonzero per strong C-neighbor,
// excluding self.
//
// It is shared by both DirectInterp and StandardInterp (§4.5, §4.6: "Pass
// 1. Identical").
//
// Complexity: O(nnz(S)).
func Pass1(n int, s *csr.Matrix, splitting []rssplit.NodeClass) *csr.Matrix {
	rowPtr := make([]int, n+1)
	nnz := 0
	for i := 0; i < n; i++ {
		if splitting[i] == rssplit.C {
			nnz++
		} else {
			cols, _ := s.Row(i)
			for _, j := range cols {
				if splitting[j] == rssplit.C && j != i {
					nnz++
				}
			}
		}
		rowPtr[i+1] = nnz
	}

	b := csr.NewMatrix(n, nnz)
	copy(b.RowPtr, rowPtr)

	return b
}

// remapColumns rewrites B's column indices from fine-grid to coarse-grid
// numbering, via the prefix sum map[i] = |{k < i : splitting[k] == C}|.
//
// Complexity: O(n + nnz(B)).
func remapColumns(b *csr.Matrix, splitting []rssplit.NodeClass) {
	m := make([]int, len(splitting))
	sum := 0
	for i, cls := range splitting {
		m[i] = sum
		if cls == rssplit.C {
			sum++
		}
	}
	for i, j := range b.ColIdx {
		b.ColIdx[i] = m[j]
	}
}
