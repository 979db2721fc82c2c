package air

import (
	"math"
	"sort"

	"github.com/amg-kernels/classical/csr"
	"github.com/amg-kernels/classical/rssplit"
)

// strongEntryFloor is the magnitude below which a strength entry is treated
// as absent, per §4.8 pass 1.
const strongEntryFloor = 1e-16

// NoMaxRowLimit disables neighborhood pruning in Pass1, matching upstream's
// std::numeric_limits<I>::max() default.
const NoMaxRowLimit = math.MaxInt

type neighborEntry struct {
	valIdx   int
	strength float64
}

// Pass1 computes R's row pointer (one row per entry of cpts) and prunes s's
// C-point rows to at most maxRow strongly connected F-neighbors apiece,
// mutating s.Val in place. s must not be shared with another kernel during
// this call (§5).
//
// Complexity: O(nnz(S)) plus O(k log k) per row whose neighborhood exceeds
// maxRow, for the strength-sort used to pick which entries to prune.
func Pass1(s *csr.Matrix, cpts []int, splitting []rssplit.NodeClass, maxRow int) *csr.Matrix {
	rowPtr := make([]int, len(cpts)+1)

	for row, c := range cpts {
		cols, vals := s.Row(c)

		var neigh []neighborEntry
		for jj, j := range cols {
			if splitting[j] == rssplit.F && math.Abs(vals[jj]) > strongEntryFloor {
				neigh = append(neigh, neighborEntry{valIdx: jj, strength: vals[jj]})
			}
		}

		size := len(neigh)
		if size > maxRow {
			sort.Slice(neigh, func(a, b int) bool { return neigh[a].strength < neigh[b].strength })
			for _, n := range neigh[maxRow:] {
				vals[n.valIdx] = 0
			}
			size = maxRow
		}

		rowPtr[row+1] = rowPtr[row] + size + 1
	}

	nnz := rowPtr[len(cpts)]
	r := csr.NewMatrix(len(cpts), nnz)
	copy(r.RowPtr, rowPtr)

	return r
}
