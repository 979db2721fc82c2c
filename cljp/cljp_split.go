package cljp

import "github.com/amg-kernels/classical/csr"

// Split computes a C/F splitting of n nodes from the strength matrix s and
// its transpose t, using the CLJP algorithm.
//
// Grounded on original_source/pyamg/amg_core/ruge_stuben.h,
// cljp_naive_splitting.
//
// Complexity: O(passes * (n + nnz(S))); in practice passes is small (a few
// independent-set rounds) for the sparsity patterns SoC graphs produce.
func Split(n int, s, t *csr.Matrix, opts ...Option) []NodeClass {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	nnz := s.NNZ()
	edgemark := make([]int, nnz)
	for i := range edgemark {
		edgemark[i] = 1
	}

	weight := make([]float64, n)
	if cfg.UseColoring {
		coloring, ncolors := cfg.Colorer(s)
		for i := 0; i < n; i++ {
			weight[i] = float64(coloring[i]) / float64(ncolors)
		}
	} else {
		rng := newLCG(cfg.Seed)
		for i := 0; i < n; i++ {
			weight[i] = rng.float64()
		}
	}

	for i := 0; i < n; i++ {
		cols, _ := s.Row(i)
		for _, j := range cols {
			if i != j {
				weight[j]++
			}
		}
	}

	splitting := make([]NodeClass, n)
	for i := range splitting {
		splitting[i] = U
	}

	unassigned := n
	d := make([]bool, n)
	dList := make([]int, 0, n)
	cDepCache := make([]int, n)
	for i := range cDepCache {
		cDepCache[i] = -1
	}

	for unassigned > 0 {
		// SELECT INDEPENDENT SET: i in D iff U and no U-neighbor in
		// S-row i or T-row i strictly outweighs it (a neighbor of equal
		// weight does not exclude i).
		dList = dList[:0]
		for i := 0; i < n; i++ {
			if splitting[i] != U {
				d[i] = false
				continue
			}

			isMax := true
			cols, _ := s.Row(i)
			for _, j := range cols {
				if splitting[j] == U && weight[j] > weight[i] {
					isMax = false
					break
				}
			}
			if isMax {
				tCols, _ := t.Row(i)
				for _, j := range tCols {
					if splitting[j] == U && weight[j] > weight[i] {
						isMax = false
						break
					}
				}
			}

			d[i] = isMax
			if isMax {
				dList = append(dList, i)
				unassigned--
			}
		}
		for _, i := range dList {
			splitting[i] = C
		}

		// P5: neighbors that influence a new C-point are worse C
		// candidates.
		for _, c := range dList {
			cols, _ := s.Row(c)
			for jj, j := range cols {
				idx := s.RowPtr[c] + jj
				if splitting[j] == U && edgemark[idx] != 0 {
					edgemark[idx] = 0
					weight[j]--
					if weight[j] < 1 {
						splitting[j] = F
						unassigned--
					}
				}
			}
		}

		// P6: if j and k both depend on c (a new C-point) and j
		// strongly depends on k, k is a worse C candidate.
		for _, c := range dList {
			tCols, _ := t.Row(c)
			for _, j := range tCols {
				if splitting[j] == U {
					cDepCache[j] = c
				}
			}

			for _, j := range tCols {
				sCols, _ := s.Row(j)
				for kk, k := range sCols {
					idx := s.RowPtr[j] + kk
					if splitting[k] == U && edgemark[idx] != 0 && cDepCache[k] == c {
						edgemark[idx] = 0
						weight[k]--
						if weight[k] < 1 {
							splitting[k] = F
							unassigned--
						}
					}
				}
			}
		}
	}

	for i := range edgemark {
		if edgemark[i] == 0 {
			edgemark[i] = -1
		}
	}
	for i := 0; i < n; i++ {
		if splitting[i] == U {
			splitting[i] = F
		}
	}

	return splitting
}
