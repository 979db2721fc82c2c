package cljp_test

import (
	"fmt"
	"testing"

	"github.com/amg-kernels/classical/cljp"
	"github.com/amg-kernels/classical/csr"
)

var sinkCLJPSplitting []cljp.NodeClass

// pathWithDiagonal and pathNoDiagonal build an n-node path Laplacian's
// strength matrix and its diagonal-free transpose, the shapes S and T take
// per amgsetup's transposeCSR.
func pathWithDiagonal(n int) *csr.Matrix {
	var rowPtr, colIdx []int
	var val []float64
	rowPtr = append(rowPtr, 0)
	for i := 0; i < n; i++ {
		if i > 0 {
			colIdx = append(colIdx, i-1)
			val = append(val, -1)
		}
		colIdx = append(colIdx, i)
		val = append(val, 2)
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

	return m
}

func pathNoDiagonal(n int) *csr.Matrix {
	var rowPtr, colIdx []int
	var val []float64
	rowPtr = append(rowPtr, 0)
	for i := 0; i < n; i++ {
		if i > 0 {
			colIdx = append(colIdx, i-1)
			val = append(val, -1)
		}
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

	return m
}

// BenchmarkSplit covers the fixed-seed LCG weight path at increasing n,
// sized the way matrix/bench_test.go sizes its dense benchmarks.
func BenchmarkSplit(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{128, 1024, 8192} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			strength := pathWithDiagonal(n)
			t := pathNoDiagonal(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkCLJPSplitting = cljp.Split(n, strength, t)
			}
		})
	}
}
