package cr

import "math"

// Promote performs one invocation of the CR candidate-promotion helper
// (Falgout/Brannick 2010, steps 3.1d-3.1f): it normalizes e in place over
// the current F-points, computes a candidate-set measure gamma, and
// greedily promotes a maximal independent set of high-measure candidates
// from F to C, updating splitting and indices in place. cost[0] accumulates
// two full-F-pass costs (nf/nnz(A) each).
//
// A (rowPtr, colIdx) is read-only; B is the target near-null-space vector;
// e is the relaxed vector, mutated in place (e[pt] <- |e[pt]/B[pt]| for
// every current F-point pt); thetaCS is the candidate threshold.
//
// Monotonicity: one invocation never increases the F-point count (§8,
// scenario 6) — promotion only ever moves points from F to C.
//
// Complexity: O(nnz(A)) for the weight bookkeeping, plus O(|U|^2) worst
// case for the greedy max-weight selection loop, matching the upstream
// linear scan for the maximum-weight candidate each round.
func Promote(rowPtr, colIdx []int, b []float64, e []float64, indices Indices, splitting Splitting, gamma []float64, thetaCS float64, cost []float64) {
	n := len(splitting)
	annz := float64(len(colIdx))
	numFpts := indices.NF()

	infNorm := 0.0
	for i := 1; i < numFpts+1; i++ {
		pt := indices[i]
		e[pt] = math.Abs(e[pt] / b[pt])
		if e[pt] > infNorm {
			infNorm = e[pt]
		}
	}
	cost[0] += float64(numFpts) / annz

	uIndex := make([]int, 0, numFpts)
	for i := 1; i < numFpts+1; i++ {
		pt := indices[i]
		gamma[pt] = e[pt] / infNorm
		if gamma[pt] > thetaCS {
			uIndex = append(uIndex, pt)
		}
	}
	cost[0] += float64(numFpts) / annz

	omega := make([]float64, n)
	for _, pt := range uIndex {
		numNeighbors := 0
		for _, neighbor := range colIdx[rowPtr[pt]:rowPtr[pt+1]] {
			if splitting[neighbor] == SplitF {
				numNeighbors++
			}
		}
		omega[pt] = float64(numNeighbors) + gamma[pt]
	}

	for {
		maxWeight := 0.0
		newPt := -1
		for _, pt := range uIndex {
			if omega[pt] > maxWeight {
				maxWeight = omega[pt]
				newPt = pt
			}
		}
		if newPt < 0 {
			break
		}

		splitting[newPt] = SplitC
		gamma[newPt] = 0
		// newPt leaves the candidate pool even when A's row omits the diagonal.
		omega[newPt] = 0

		neighbors := append([]int(nil), colIdx[rowPtr[newPt]:rowPtr[newPt+1]]...)
		for _, q := range neighbors {
			omega[q] = 0
		}

		for _, q := range neighbors {
			for _, k := range colIdx[rowPtr[q]:rowPtr[q+1]] {
				if omega[k] != 0 {
					omega[k]++
				}
			}
		}
	}

	nextFind := 1
	nextCind := n - 1
	numFpts = 0
	for i := 0; i < n; i++ {
		if splitting[i] == SplitF {
			indices[nextFind] = i
			nextFind++
			numFpts++
		} else {
			indices[nextCind+1] = i
			nextCind--
		}
	}
	indices[0] = numFpts
}
