package air_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/amg-kernels/classical/air"
	"github.com/amg-kernels/classical/csr"
	"github.com/amg-kernels/classical/rssplit"
)

// AIRSuite exercises the two-pass approximate ideal restriction build.
type AIRSuite struct {
	suite.Suite
}

// fourNodeMatrix builds the 4x4 symmetric matrix used throughout this
// suite: C-points 0,1 each strongly connect only to F-points 2,3, and
// 2/3 have no strong connection to each other.
func fourNodeMatrix() *csr.Matrix {
	m := csr.NewMatrix(4, 12)

	rowPtr := []int{0, 3, 6, 9, 12}
	colIdx := []int{0, 2, 3, 1, 2, 3, 2, 0, 1, 3, 0, 1}
	val := []float64{4, -1, -1, 4, -1, -1, 4, -1, -1, 4, -1, -1}
	copy(m.RowPtr, rowPtr)
	copy(m.ColIdx, colIdx)
	copy(m.Val, val)

	return m
}

// TestIdentityOnEveryCRow verifies every row of R ends with a (c, 1.0)
// entry, per the AIR identity invariant (§8).
func (s *AIRSuite) TestIdentityOnEveryCRow() {
	a := fourNodeMatrix()
	strength := fourNodeMatrix() // same sparsity pattern as A, per SoC retention
	splitting := []rssplit.NodeClass{rssplit.C, rssplit.C, rssplit.F, rssplit.F}
	cpts := []int{0, 1}

	r := air.Pass1(strength, cpts, splitting, air.NoMaxRowLimit)
	r = air.Pass2(r, a, strength, cpts, splitting)

	for row, c := range cpts {
		lastIdx := r.RowPtr[row+1] - 1
		s.Require().Equal(c, r.ColIdx[lastIdx])
		s.Require().Equal(1.0, r.Val[lastIdx])
	}
}

// TestSparsityBound verifies every C-row's nnz never exceeds max_row+1.
func (s *AIRSuite) TestSparsityBound() {
	a := fourNodeMatrix()
	strength := fourNodeMatrix()
	splitting := []rssplit.NodeClass{rssplit.C, rssplit.C, rssplit.F, rssplit.F}
	cpts := []int{0, 1}

	const maxRow = 1
	r := air.Pass1(strength, cpts, splitting, maxRow)
	r = air.Pass2(r, a, strength, cpts, splitting)

	for row := range cpts {
		nnz := r.RowPtr[row+1] - r.RowPtr[row]
		s.Require().LessOrEqual(nnz, maxRow+1)
	}
}

// TestLocalSystemSolvesDiagonalNeighborhood verifies the local dense system
// built for a C-point whose F-neighbors are mutually unconnected (a
// diagonal A0) is solved exactly: x[i] = b0[i] / A[Nf[i],Nf[i]].
func (s *AIRSuite) TestLocalSystemSolvesDiagonalNeighborhood() {
	a := fourNodeMatrix()
	strength := fourNodeMatrix()
	splitting := []rssplit.NodeClass{rssplit.C, rssplit.C, rssplit.F, rssplit.F}
	cpts := []int{0, 1}

	r := air.Pass1(strength, cpts, splitting, air.NoMaxRowLimit)
	r = air.Pass2(r, a, strength, cpts, splitting)

	// Row for C-point 0: neighborhood {2,3}, A0 = diag(4,4) since A[2,3]=0,
	// b0 = (A[0,2], A[0,3]) = (-1,-1) => x = (-0.25,-0.25).
	start, end := r.RowPtr[0], r.RowPtr[1]-1 // exclude the trailing identity
	for i := start; i < end; i++ {
		s.Require().InDelta(-0.25, r.Val[i], 1e-9)
	}
}

// TestEmptyNeighborhoodIsPureIdentity verifies a C-point with no strongly
// connected F-neighbors yields a single-entry identity row.
func (s *AIRSuite) TestEmptyNeighborhoodIsPureIdentity() {
	m := csr.NewMatrix(2, 2)
	copy(m.RowPtr, []int{0, 1, 2})
	copy(m.ColIdx, []int{0, 1})
	copy(m.Val, []float64{1, 1})

	splitting := []rssplit.NodeClass{rssplit.C, rssplit.C}
	cpts := []int{0, 1}

	r := air.Pass1(m, cpts, splitting, air.NoMaxRowLimit)
	r = air.Pass2(r, m, m, cpts, splitting)

	s.Require().Equal([]int{0, 1, 2}, r.RowPtr)
	s.Require().Equal(0, r.ColIdx[0])
	s.Require().Equal(1, r.ColIdx[1])
	s.Require().Equal(1.0, r.Val[0])
	s.Require().Equal(1.0, r.Val[1])
}

func TestAIRSuite(t *testing.T) {
	suite.Run(t, new(AIRSuite))
}
