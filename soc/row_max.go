package soc

import (
	"math"

	"github.com/amg-kernels/classical/csr"
)

// rowMaxMinRepresentable is the empty-row sentinel, standing in for the
// upstream C++ use of std::numeric_limits<F>::min(). For a floating-point
// type that call returns the smallest positive normalized value, not -Inf
// — a quirk of the C++ standard library the spec calls out explicitly as a
// "documented edge case" rather than a bug to silently fix. The Go value is
// math.SmallestNonzeroFloat64, the smallest positive subnormal float64: it
// is smaller than that normalized minimum, but likewise positive.
// RowMax preserves it so an empty row reports this sentinel, not -Inf.
const rowMaxMinRepresentable = math.SmallestNonzeroFloat64

// RowMax fills x[i] with the maximum magnitude entry of row i of A, for
// every row. A row with no entries writes rowMaxMinRepresentable into x[i].
//
// x must be preallocated to length A.N; RowMax fills it in place and does
// not allocate.
//
// Complexity: O(nnz(A)).
func RowMax(a *csr.Matrix, x []float64) {
	for i := 0; i < a.N; i++ {
		_, vals := a.Row(i)
		maxEntry := rowMaxMinRepresentable
		for _, v := range vals {
			if m := math.Abs(v); m > maxEntry {
				maxEntry = m
			}
		}
		x[i] = maxEntry
	}
}
