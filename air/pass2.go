package air

import (
	"math"

	"github.com/amg-kernels/classical/csr"
	"github.com/amg-kernels/classical/linalg"
	"github.com/amg-kernels/classical/rssplit"
)

// Options configures Pass2. Diagnostics receives the row-pointer
// disagreement message from §4.8's invariant check; it never changes the
// computed result.
type Options struct {
	Diagnostics csr.Diagnostics
}

// Option is a functional option for Pass2.
type Option func(*Options)

// WithDiagnostics installs the sink used for the row-pointer invariant
// diagnostic. Defaults to csr.NoopDiagnostics.
func WithDiagnostics(d csr.Diagnostics) Option {
	return func(o *Options) { o.Diagnostics = d }
}

func defaultOptions() Options {
	return Options{Diagnostics: csr.NoopDiagnostics{}}
}

// Pass2 fills r's column indices and values, one row per entry of cpts: the
// strongly connected F-neighborhood of c (re-derived from s, already
// pruned by Pass1), a local dense system solved via linalg.SolveLS, and a
// trailing identity entry on c.
//
// r must be the matrix returned by Pass1 for the same cpts/splitting/s.
//
// Complexity: O(Σ_c |N(c)|^2) for the local system assembly (each entry of
// A0 costs a linear scan of an A row), plus the least-squares solve cost
// per C-point.
func Pass2(r, a, s *csr.Matrix, cpts []int, splitting []rssplit.NodeClass, opts ...Option) *csr.Matrix {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	for row, c := range cpts {
		ind := r.RowPtr[row]

		cols, vals := s.Row(c)
		for jj, j := range cols {
			if splitting[j] == rssplit.F && math.Abs(vals[jj]) > strongEntryFloor {
				r.ColIdx[ind] = j
				ind++
			}
		}

		if ind != r.RowPtr[row+1]-1 {
			cfg.Diagnostics.Printf("air: row pointer does not agree with neighborhood size for C-point %d", c)
		}

		nf := r.ColIdx[r.RowPtr[row]:ind]
		m := len(nf)

		a0 := make([]float64, m*m)
		for jc := 0; jc < m; jc++ {
			thisInd := nf[jc]
			for ic := 0; ic < m; ic++ {
				a0[jc*m+ic] = lookupEntry(a, thisInd, nf[ic])
			}
		}

		b0 := make([]float64, m)
		for ic := 0; ic < m; ic++ {
			b0[ic] = lookupEntry(a, c, nf[ic])
		}

		// a0/b0 are sized directly from m; SolveLS's dimension-mismatch
		// error is unreachable here.
		x, _ := linalg.SolveLS(m, m, a0, b0)
		copy(r.Val[r.RowPtr[row]:ind], x)

		r.ColIdx[ind] = c
		r.Val[ind] = 1.0
	}

	return r
}

// lookupEntry returns A[row,col], scanning row's entries (0 if absent).
func lookupEntry(a *csr.Matrix, row, col int) float64 {
	cols, vals := a.Row(row)
	for jj, j := range cols {
		if j == col {
			return vals[jj]
		}
	}

	return 0
}
