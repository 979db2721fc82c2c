package interp

import (
	"github.com/amg-kernels/classical/csr"
	"github.com/amg-kernels/classical/rssplit"
)

// Options configures StandardInterp. Diagnostics receives the inner-
// denominator no-connection and cancellation messages and the zero outer-
// denominator message (§4.6, §7); it never changes
// the computed result (a degenerate denominator is allowed to produce a
// non-finite weight, per §7's "Degenerate denominator" policy).
type Options struct {
	Diagnostics csr.Diagnostics
}

// Option is a functional option for StandardInterp.
type Option func(*Options)

// WithDiagnostics installs the sink used for degenerate-denominator
// messages. Defaults to csr.NoopDiagnostics.
func WithDiagnostics(d csr.Diagnostics) Option {
	return func(o *Options) { o.Diagnostics = d }
}

func defaultOptions() Options {
	return Options{Diagnostics: csr.NoopDiagnostics{}}
}

// StandardInterp builds the two-pass standard-interpolation prolongator B
// from A, its strength matrix s, and a splitting.
//
// For each F-point i, the denominator is A's full row sum at i minus every
// strong off-diagonal entry (leaving diagonal + weak off-diagonals). Each
// strongly connected C-neighbor j's numerator accumulates a contribution
// from every strongly connected F-neighbor k that also connects to j in A,
// weighted by the sign-filtered inner denominator over i's C-neighborhood.
// Reference: "A Multigrid Tutorial", p. 144.
//
// Complexity: O(nnz(S_i)^2 * avg row length of A) worst case per F-row —
// the sign-filtered inner-denominator search revisits A's rows for k and
// for each C-neighbor l, matching the upstream nested-loop structure
// exactly rather than precomputing a k-to-column index (kept faithful to
// the source per SPEC_FULL.md's grounding rule).
func StandardInterp(a, s *csr.Matrix, splitting []rssplit.NodeClass, opts ...Option) *csr.Matrix {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := a.N
	b := Pass1(n, s, splitting)

	for i := 0; i < n; i++ {
		if splitting[i] == rssplit.C {
			b.ColIdx[b.RowPtr[i]] = i
			b.Val[b.RowPtr[i]] = 1
			continue
		}

		_, aValsI := a.Row(i)
		var denominator float64
		for _, v := range aValsI {
			denominator += v
		}

		sColsI, sValsI := s.Row(i)
		for jj, j := range sColsI {
			if j != i {
				denominator -= sValsI[jj]
			}
		}

		nnz := b.RowPtr[i]
		for jj, j := range sColsI {
			if splitting[j] != rssplit.C || j == i {
				continue
			}

			b.ColIdx[nnz] = j
			numerator := sValsI[jj]

			for kk, k := range sColsI {
				if splitting[k] != rssplit.F || k == i {
					continue
				}

				aKj := lookup(a, k, j)
				if aKj == 0 {
					continue
				}

				var innerDenominator float64
				touched := false
				for _, l := range sColsI {
					if splitting[l] != rssplit.C || l == i {
						continue
					}
					aKl := lookup(a, k, l)
					if aKl != 0 && aKj*aKl > 0 {
						touched = true
						innerDenominator += aKl
					}
				}

				if innerDenominator == 0 {
					if !touched {
						cfg.Diagnostics.Printf("interp: row %d: strong F-neighbor %d has no C-connection in C_%d", i, k, i)
					} else {
						cfg.Diagnostics.Printf("interp: row %d: cancellation in inner denominator for F-neighbor %d", i, k)
					}
				}

				numerator += sValsI[kk] * aKj / innerDenominator
			}

			if denominator == 0 {
				cfg.Diagnostics.Printf("interp: row %d: outer denominator (diagonal + weak connections) is zero", i)
			}
			b.Val[nnz] = -numerator / denominator
			nnz++
		}
	}

	remapColumns(b, splitting)

	return b
}

// lookup returns A[row,col], scanning row's entries (0 if absent), as the
// upstream nested search over A's rows does (§4.6: "obtained by scanning
// A-row k for column j").
func lookup(a *csr.Matrix, row, col int) float64 {
	cols, vals := a.Row(row)
	for jj, j := range cols {
		if j == col {
			return vals[jj]
		}
	}

	return 0
}
