package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

// MtxReadSuite exercises the Matrix Market coordinate-format reader.
type MtxReadSuite struct {
	suite.Suite
}

func (s *MtxReadSuite) writeFixture(name, content string) string {
	dir := s.T().TempDir()
	path := filepath.Join(dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))

	return path
}

// TestSymmetricTridiagonal reproduces tridiag(-1,2,-1) (§8 scenario 1) from
// a symmetric coordinate-format file, expanding below-diagonal entries.
func (s *MtxReadSuite) TestSymmetricTridiagonal() {
	path := s.writeFixture("tridiag.mtx", `%%MatrixMarket matrix coordinate real symmetric
3 3 4
1 1 2.0
2 1 -1.0
2 2 2.0
3 2 -1.0
3 3 2.0
`)

	m, err := readMatrixMarket(path)
	s.Require().NoError(err)
	s.Require().Equal(3, m.N)
	s.Require().Equal(7, m.NNZ())

	cols, vals := m.Row(1)
	total := map[int]float64{}
	for i, c := range cols {
		total[c] = vals[i]
	}
	s.Require().Equal(-1.0, total[0])
	s.Require().Equal(2.0, total[1])
	s.Require().Equal(-1.0, total[2])
}

// TestGeneralFormatNoExpansion verifies a general-format file is not
// mirrored across the diagonal.
func (s *MtxReadSuite) TestGeneralFormatNoExpansion() {
	path := s.writeFixture("general.mtx", `%%MatrixMarket matrix coordinate real general
2 2 2
1 1 5.0
1 2 3.0
`)

	m, err := readMatrixMarket(path)
	s.Require().NoError(err)
	s.Require().Equal(2, m.NNZ())
}

// TestMissingFile verifies a nonexistent path is reported as an error, not
// a panic.
func (s *MtxReadSuite) TestMissingFile() {
	_, err := readMatrixMarket(filepath.Join(s.T().TempDir(), "missing.mtx"))
	s.Require().Error(err)
}

// TestNonSquareRejected verifies a rows != cols size line is rejected.
func (s *MtxReadSuite) TestNonSquareRejected() {
	path := s.writeFixture("nonsquare.mtx", `%%MatrixMarket matrix coordinate real general
2 3 1
1 1 1.0
`)

	_, err := readMatrixMarket(path)
	s.Require().Error(err)
}

func TestMtxReadSuite(t *testing.T) {
	suite.Run(t, new(MtxReadSuite))
}
