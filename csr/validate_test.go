package csr_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/amg-kernels/classical/csr"
)

// ValidateSuite exercises the CSR well-formedness contract checker.
type ValidateSuite struct {
	suite.Suite
}

func (s *ValidateSuite) TestWellFormedMatrixPasses() {
	m := csr.NewMatrix(2, 3)
	copy(m.RowPtr, []int{0, 2, 3})
	copy(m.ColIdx, []int{0, 1, 1})
	copy(m.Val, []float64{1, 2, 3})

	s.Require().NoError(csr.Validate(m))
}

func (s *ValidateSuite) TestBadRowPtrLength() {
	m := &csr.Matrix{N: 2, RowPtr: []int{0, 1}, ColIdx: []int{0}, Val: []float64{1}}
	s.Require().ErrorIs(csr.Validate(m), csr.ErrBadRowPtrLength)
}

func (s *ValidateSuite) TestRowPtrNotZeroStart() {
	m := &csr.Matrix{N: 1, RowPtr: []int{1, 1}, ColIdx: []int{}, Val: []float64{}}
	s.Require().ErrorIs(csr.Validate(m), csr.ErrRowPtrNotZeroStart)
}

func (s *ValidateSuite) TestRowPtrNotMonotone() {
	m := &csr.Matrix{N: 2, RowPtr: []int{0, 2, 1}, ColIdx: []int{0, 0}, Val: []float64{1, 1}}
	s.Require().ErrorIs(csr.Validate(m), csr.ErrRowPtrNotMonotone)
}

func (s *ValidateSuite) TestColValLengthMismatch() {
	m := &csr.Matrix{N: 1, RowPtr: []int{0, 2}, ColIdx: []int{0, 1}, Val: []float64{1}}
	s.Require().ErrorIs(csr.Validate(m), csr.ErrColValLengthMismatch)
}

func (s *ValidateSuite) TestRowPtrNNZMismatch() {
	m := &csr.Matrix{N: 1, RowPtr: []int{0, 2}, ColIdx: []int{0}, Val: []float64{1}}
	s.Require().ErrorIs(csr.Validate(m), csr.ErrRowPtrNNZMismatch)
}

func (s *ValidateSuite) TestDuplicateColumn() {
	m := &csr.Matrix{N: 1, RowPtr: []int{0, 2}, ColIdx: []int{0, 0}, Val: []float64{1, 2}}
	s.Require().ErrorIs(csr.Validate(m), csr.ErrDuplicateColumn)
}

func (s *ValidateSuite) TestColumnOutOfRange() {
	m := &csr.Matrix{N: 1, RowPtr: []int{0, 1}, ColIdx: []int{5}, Val: []float64{1}}
	s.Require().ErrorIs(csr.Validate(m), csr.ErrColumnOutOfRange)
}

func (s *ValidateSuite) TestNNZHelper() {
	m := csr.NewMatrix(3, 5)
	s.Require().Equal(5, m.NNZ())
}

func TestValidateSuite(t *testing.T) {
	suite.Run(t, new(ValidateSuite))
}
