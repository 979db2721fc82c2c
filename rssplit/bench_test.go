package rssplit_test

import (
	"fmt"
	"testing"

	"github.com/amg-kernels/classical/csr"
	"github.com/amg-kernels/classical/rssplit"
)

// sinkSplitting defeats dead-code elimination across benchmark iterations.
var sinkSplitting []rssplit.NodeClass

// tridiagN builds an n-node tridiagonal Laplacian (diag 2, off-diagonal -1),
// symmetric, so S==T for this benchmark's purposes.
func tridiagN(n int) *csr.Matrix {
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

// BenchmarkSplit sizes mirror matrix/bench_test.go's small/medium fixed-N
// convention, scaled down from dense O(n^2) sizes since this kernel is
// O(n + nnz).
func BenchmarkSplit(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{128, 1024, 8192} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			strength := tridiagN(n)
			influence := make([]int, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkSplitting = rssplit.Split(n, strength, strength, influence)
			}
		})
	}
}
