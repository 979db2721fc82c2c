package air_test

import (
	"fmt"
	"testing"

	"github.com/amg-kernels/classical/air"
	"github.com/amg-kernels/classical/csr"
	"github.com/amg-kernels/classical/rssplit"
)

var sinkR *csr.Matrix

// tridiagAlternating builds an n-node tridiagonal Laplacian (diag 4,
// off-diagonal -1) with an alternating C/F splitting (even indices C, odd
// F), the sparsity shape AIR's local neighborhoods are built from.
func tridiagAlternating(n int) (*csr.Matrix, []rssplit.NodeClass, []int) {
	var rowPtr, colIdx []int
	var val []float64
	rowPtr = append(rowPtr, 0)
	for i := 0; i < n; i++ {
		if i > 0 {
			colIdx = append(colIdx, i-1)
			val = append(val, -1)
		}
		colIdx = append(colIdx, i)
		val = append(val, 4)
		if i < n-1 {
			colIdx = append(colIdx, i+1)
			val = append(val, -1)
		}
		rowPtr = append(rowPtr, len(colIdx))
	}

	m := csr.NewMatrix(n, len(colIdx))
	copy(m.RowPtr, rowPtr)
	copy(m.ColIdx, colIdx)
	copy(m.Val, val)

	splitting := make([]rssplit.NodeClass, n)
	var cpts []int
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			splitting[i] = rssplit.C
			cpts = append(cpts, i)
		} else {
			splitting[i] = rssplit.F
		}
	}

	return m, splitting, cpts
}

// BenchmarkPass1Pass2 covers the full two-pass AIR build, sized the way
// matrix/bench_test.go sizes its dense benchmarks.
func BenchmarkPass1Pass2(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{128, 1024, 8192} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a, splitting, cpts := tridiagAlternating(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				strength := tridiagAlternating2(a)
				b.StartTimer()
				r := air.Pass1(strength, cpts, splitting, air.NoMaxRowLimit)
				sinkR = air.Pass2(r, a, strength, cpts, splitting)
			}
		})
	}
}

// tridiagAlternating2 clones a's CSR triple, since Pass1 mutates s.Val in
// place and benchmark iterations must not share that state.
func tridiagAlternating2(a *csr.Matrix) *csr.Matrix {
	m := csr.NewMatrix(a.N, len(a.ColIdx))
	copy(m.RowPtr, a.RowPtr)
	copy(m.ColIdx, a.ColIdx)
	copy(m.Val, a.Val)

	return m
}
