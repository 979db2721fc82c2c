package soc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/amg-kernels/classical/csr"
	"github.com/amg-kernels/classical/soc"
)

// RowMaxSuite exercises the per-row maximum-magnitude helper.
type RowMaxSuite struct {
	suite.Suite
}

func (s *RowMaxSuite) TestMaxMagnitudePerRow() {
	m := csr.NewMatrix(2, 3)
	copy(m.RowPtr, []int{0, 2, 3})
	copy(m.ColIdx, []int{0, 1, 0})
	copy(m.Val, []float64{-3, 2, 7})

	x := make([]float64, 2)
	soc.RowMax(m, x)

	s.Require().Equal(3.0, x[0])
	s.Require().Equal(7.0, x[1])
}

// TestEmptyRowSentinel verifies an empty row reports the smallest positive
// representable value, matching the C++ numeric_limits<F>::min() quirk
// rather than -Inf.
func (s *RowMaxSuite) TestEmptyRowSentinel() {
	m := csr.NewMatrix(1, 0)
	copy(m.RowPtr, []int{0, 0})

	x := make([]float64, 1)
	soc.RowMax(m, x)

	s.Require().Equal(math.SmallestNonzeroFloat64, x[0])
}

func TestRowMaxSuite(t *testing.T) {
	suite.Run(t, new(RowMaxSuite))
}
