package soc

import (
	"math"

	"github.com/amg-kernels/classical/csr"
)

// Options configures ClassicalSOC.
type Options struct {
	// Theta is the strength threshold in [0,1]. An off-diagonal A[i,j] is
	// strong iff |A[i,j]| >= Theta * max_{k!=i} |A[i,k]|.
	Theta float64
}

// Option is a functional option for ClassicalSOC.
type Option func(*Options)

// WithTheta sets the strength threshold. Panics if theta is outside [0,1];
// this is a static configuration error, not a data-dependent one.
func WithTheta(theta float64) Option {
	if theta < 0 || theta > 1 {
		panic(ErrBadTheta.Error())
	}

	return func(o *Options) { o.Theta = theta }
}

// DefaultOptions returns the conventional Ruge-Stuben default, theta=0.25.
func DefaultOptions() Options {
	return Options{Theta: 0.25}
}

// ClassicalSOC filters A into a strength-of-connection matrix S: every
// strong off-diagonal entry of A is kept, plus the diagonal entry (always
// retained, even when zero... note: if A[i,i] is absent from A's row, S's
// row simply has no diagonal entry either, matching "S[i,i] = A[i,i]" only
// when A[i,i] exists).
//
// Traversal order within a row of S matches A's row traversal order
// (entries are not reordered). An empty row of A produces an empty row of
// S. If a row has no off-diagonal entries, only its diagonal (if present)
// survives.
//
// Grounded on original_source/pyamg/amg_core/ruge_stuben.h,
// classical_strength_of_connection.
//
// Complexity: O(nnz(A)), two passes per row.
func ClassicalSOC(a *csr.Matrix, opts ...Option) *csr.Matrix {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := csr.NewMatrix(a.N, len(a.ColIdx)+a.N)
	nnz := 0
	s.RowPtr[0] = 0

	for i := 0; i < a.N; i++ {
		cols, vals := a.Row(i)

		// Matches RowMax's empty-row sentinel and the upstream C++'s use of
		// numeric_limits<F>::min() (smallest positive value, not -Inf) as the
		// starting point: avoids a 0 * -Inf = NaN threshold on an all-zero row.
		maxOffDiagonal := rowMaxMinRepresentable
		for jj, j := range cols {
			if j != i {
				if m := math.Abs(vals[jj]); m > maxOffDiagonal {
					maxOffDiagonal = m
				}
			}
		}

		threshold := cfg.Theta * maxOffDiagonal
		for jj, j := range cols {
			normJJ := math.Abs(vals[jj])

			if j != i && normJJ >= threshold {
				s.ColIdx[nnz] = j
				s.Val[nnz] = vals[jj]
				nnz++
			}
			if j == i {
				s.ColIdx[nnz] = j
				s.Val[nnz] = vals[jj]
				nnz++
			}
		}

		s.RowPtr[i+1] = nnz
	}

	s.ColIdx = s.ColIdx[:nnz]
	s.Val = s.Val[:nnz]

	return s
}
