package interp

import (
	"github.com/amg-kernels/classical/csr"
	"github.com/amg-kernels/classical/rssplit"
)

// DirectInterp builds the two-pass direct-interpolation prolongator B from
// A, its strength matrix s, and a splitting.
//
// For each F-point i, s+ and s- are the sums of positive/negative strong
// C-neighbor entries of S's row i, and a+/a-/d are the corresponding sums
// (plus diagonal) over A's row i. alpha = a-/s-, beta = a+/s+, with the
// documented fallback folding a+ into the diagonal (and beta=0) when s+ is
// zero (§4.5). Reference: "Multigrid", p. 479.
//
// Complexity: O(nnz(A) + nnz(S)).
func DirectInterp(a, s *csr.Matrix, splitting []rssplit.NodeClass) *csr.Matrix {
	n := a.N
	b := Pass1(n, s, splitting)

	for i := 0; i < n; i++ {
		if splitting[i] == rssplit.C {
			b.ColIdx[b.RowPtr[i]] = i
			b.Val[b.RowPtr[i]] = 1
			continue
		}

		sCols, sVals := s.Row(i)
		var sumStrongPos, sumStrongNeg float64
		for jj, j := range sCols {
			if splitting[j] == rssplit.C && j != i {
				if sVals[jj] < 0 {
					sumStrongNeg += sVals[jj]
				} else {
					sumStrongPos += sVals[jj]
				}
			}
		}

		aCols, aVals := a.Row(i)
		var sumAllPos, sumAllNeg, diag float64
		for jj, j := range aCols {
			if j == i {
				diag += aVals[jj]
			} else if aVals[jj] < 0 {
				sumAllNeg += aVals[jj]
			} else {
				sumAllPos += aVals[jj]
			}
		}

		alpha := sumAllNeg / sumStrongNeg
		beta := sumAllPos / sumStrongPos

		if sumStrongPos == 0 {
			diag += sumAllPos
			beta = 0
		}

		negCoeff := -alpha / diag
		posCoeff := -beta / diag

		nnz := b.RowPtr[i]
		for jj, j := range sCols {
			if splitting[j] == rssplit.C && j != i {
				b.ColIdx[nnz] = j
				if sVals[jj] < 0 {
					b.Val[nnz] = negCoeff * sVals[jj]
				} else {
					b.Val[nnz] = posCoeff * sVals[jj]
				}
				nnz++
			}
		}
	}

	remapColumns(b, splitting)

	return b
}
