package amgsetup

import "github.com/amg-kernels/classical/csr"

// transposeCSR builds T = Sᵀ restricted to S's off-diagonal entries, the
// input both rssplit.Split and cljp.Split require. A general sparse
// transpose sits outside the kernel surface (SPEC_FULL.md Non-goals:
// "no sparse matrix construction/transpose/Galerkin product"), but the
// orchestration facade still needs one to wire a single matrix end to end
// for one Setup call, so it lives here as unexported plumbing rather than
// a new public kernel.
//
// The diagonal is dropped rather than carried through: S always retains
// A's diagonal entry (§3 data model), but rssplit's lambda formula
// (lambda[i] = |{j : j strongly depends on i}|) counts dependency edges,
// not i's own retained diagonal. Carrying S's diagonal into T would give
// every node a permanent self-loop, inflating every lambda by exactly one
// and making the lambda==0 seed rule (§4.3 "Seed F-nodes") unreachable —
// §8 scenario 2 (two isolated nodes, S = diagonal only) requires lambda=0
// to seed both as F.
//
// Complexity: O(nnz(S)).
func transposeCSR(s *csr.Matrix) *csr.Matrix {
	n := s.N

	counts := make([]int, n)
	for i := 0; i < n; i++ {
		cols, _ := s.Row(i)
		for _, j := range cols {
			if j != i {
				counts[j]++
			}
		}
	}

	rowPtr := make([]int, n+1)
	for i := 0; i < n; i++ {
		rowPtr[i+1] = rowPtr[i] + counts[i]
	}

	t := csr.NewMatrix(n, rowPtr[n])
	copy(t.RowPtr, rowPtr)

	next := append([]int(nil), rowPtr[:n]...)
	for i := 0; i < n; i++ {
		cols, vals := s.Row(i)
		for jj, j := range cols {
			if j == i {
				continue
			}
			pos := next[j]
			t.ColIdx[pos] = i
			t.Val[pos] = vals[jj]
			next[j]++
		}
	}

	return t
}
