package coloring

import "github.com/amg-kernels/classical/csr"

// misColoringSeed matches cljp's fixed PRNG seed so that, when neither
// package's caller supplies its own randomness, the two stay reproducible
// across runs in the same way (§4.4: "seed a deterministic pseudo-random
// generator with a fixed seed (2448422)").
const misColoringSeed = 2448422

// MIS computes a vertex coloring of the undirected graph implied by s's
// sparsity pattern (edge i~j iff s has a nonzero at (i,j) or (j,i), i!=j)
// via repeated maximal-independent-set extraction. It returns a coloring
// vector of length s.N and the number of colors used (1 + max(coloring)).
//
// Determinism: weights are drawn from a fixed-seed linear congruential
// generator, and ties are broken by the smaller vertex id, so two calls on
// identical input produce an identical coloring.
//
// Complexity: O(R * nnz(s)) where R is the number of rounds (colors); R is
// bounded by the graph's degeneracy + 1, typically small for the sparse
// graphs strength matrices produce.
func MIS(s *csr.Matrix) (coloring []int, ncolors int) {
	n := s.N
	coloring = make([]int, n)
	colored := make([]bool, n)
	weight := make([]float64, n)

	rng := newLCG(misColoringSeed)
	for i := 0; i < n; i++ {
		weight[i] = rng.float64()
	}

	remaining := n
	color := 0
	inSet := make([]bool, n)
	for remaining > 0 {
		for i := 0; i < n; i++ {
			inSet[i] = false
		}

		for i := 0; i < n; i++ {
			if colored[i] {
				continue
			}
			isMax := true
			cols, _ := s.Row(i)
			for _, j := range cols {
				if j == i || colored[j] {
					continue
				}
				if weight[j] > weight[i] || (weight[j] == weight[i] && j < i) {
					isMax = false
					break
				}
			}
			if isMax {
				inSet[i] = true
			}
		}

		// Each vertex above inspected only its own row, so an entry stored
		// at (i,j) but not (j,i) was seen from i alone; drop j, the endpoint
		// that lost i's check, so the set stays independent.
		for i := 0; i < n; i++ {
			if !inSet[i] {
				continue
			}
			cols, _ := s.Row(i)
			for _, j := range cols {
				if j != i && inSet[j] {
					inSet[j] = false
				}
			}
		}

		for i := 0; i < n; i++ {
			if inSet[i] {
				coloring[i] = color
				colored[i] = true
				remaining--
			}
		}
		color++
	}

	return coloring, color
}

// lcg is a minimal linear congruential generator, used instead of
// math/rand so the sequence is pinned to this package's algorithm rather
// than to a Go-version-specific global generator implementation.
type lcg struct{ state uint64 }

func newLCG(seed uint64) *lcg { return &lcg{state: seed} }

func (g *lcg) next() uint64 {
	// Constants from Numerical Recipes' 64-bit LCG.
	g.state = g.state*6364136223846793005 + 1442695040888963407

	return g.state
}

func (g *lcg) float64() float64 {
	return float64(g.next()>>11) / float64(1<<53)
}
