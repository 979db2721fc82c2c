package rssplit

import "github.com/amg-kernels/classical/csr"

// Options configures Split. Currently the only knob is an optional
// Diagnostics sink used purely for instrumentation of the saturation guard
// (§7: "Saturated priority (RS): silently clamped") — clamping itself is
// unconditional and never depends on whether a sink is configured.
type Options struct {
	Diagnostics csr.Diagnostics
}

// Option is a functional option for Split.
type Option func(*Options)

// WithDiagnostics installs a sink that receives one message per saturation
// event (lambda[k] >= n-1, increment skipped). Defaults to csr.NoopDiagnostics.
func WithDiagnostics(d csr.Diagnostics) Option {
	return func(o *Options) { o.Diagnostics = d }
}

func defaultOptions() Options {
	return Options{Diagnostics: csr.NoopDiagnostics{}}
}

// Split computes a C/F splitting of n nodes from the strength matrix s, its
// transpose t, and a per-node influence vector, using the classical
// Ruge-Stuben bucketed-lambda algorithm.
//
// Precondition inherited from upstream: when lambda[i]==1, T's row for i
// must store its sole neighbor at offset T.RowPtr[i] (the seed-F check
// reads only that slot, not a scan of the row) — see SPEC_FULL.md §4.
//
// Complexity: O(n + nnz(S) + nnz(T)).
func Split(n int, s, t *csr.Matrix, influence []int, opts ...Option) []NodeClass {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	lambda := make([]int, n)
	lambdaMax := 0
	for i := 0; i < n; i++ {
		lambda[i] = (t.RowPtr[i+1] - t.RowPtr[i]) + influence[i]
		if lambda[i] > lambdaMax {
			lambdaMax = lambda[i]
		}
	}

	l := lambdaMax * 2
	if n+1 > l {
		l = n + 1
	}
	bo := newBucketOrder(n, lambda, l)

	splitting := make([]NodeClass, n)
	for i := range splitting {
		splitting[i] = U
	}

	// Seed F-nodes: isolated (lambda==0) or pendant pointing back at itself
	// (lambda==1 and T's sole recorded neighbor for i is i itself).
	for i := 0; i < n; i++ {
		if lambda[i] == 0 || (lambda[i] == 1 && t.ColIdx[t.RowPtr[i]] == i) {
			splitting[i] = F
		}
	}

	for topIndex := n - 1; topIndex >= 0; topIndex-- {
		i := bo.idxToNode[topIndex]
		lambdaI := lambda[i]

		bo.bucketCount[lambdaI]--

		if splitting[i] == F {
			continue
		}

		// splitting[i] == U: find the largest node id tied at this
		// priority and swap it into topIndex — the mandatory
		// largest-node-id tie-break (§4.3).
		maxNode := i
		maxIndex := topIndex
		for j := bo.bucketPtr[lambdaI]; j < bo.bucketPtr[lambdaI]+bo.bucketCount[lambdaI]; j++ {
			if bo.idxToNode[j] > maxNode {
				maxNode = bo.idxToNode[j]
				maxIndex = j
			}
		}
		bo.swap(topIndex, maxIndex)
		i = bo.idxToNode[topIndex]

		splitting[i] = C

		// For each j in T[i] ∩ U: tentatively mark PreF.
		tCols, _ := t.Row(i)
		for _, j := range tCols {
			if splitting[j] == U {
				splitting[j] = PreF
			}
		}

		// For each PreF j: commit to F, then for each k in S[j] ∩ U,
		// increment lambda[k] (move toward the next-higher bucket).
		for _, j := range tCols {
			if splitting[j] != PreF {
				continue
			}
			splitting[j] = F

			sColsJ, _ := s.Row(j)
			for _, k := range sColsJ {
				if splitting[k] != U {
					continue
				}
				if lambda[k] >= n-1 {
					cfg.Diagnostics.Printf("rssplit: saturation guard skipped increment for node %d (lambda=%d, n=%d)", k, lambda[k], n)
					continue
				}

				lambdaK := lambda[k]
				oldPos := bo.nodeToIdx[k]
				newPos := bo.bucketPtr[lambdaK] + bo.bucketCount[lambdaK] - 1

				bo.swap(oldPos, newPos)

				bo.bucketCount[lambdaK]--
				bo.bucketCount[lambdaK+1]++
				bo.bucketPtr[lambdaK+1] = newPos

				lambda[k]++
			}
		}

		// For each j in S[i] ∩ U: decrement lambda[j] (move toward the
		// next-lower bucket).
		sColsI, _ := s.Row(i)
		for _, j := range sColsI {
			if splitting[j] != U {
				continue
			}
			if lambda[j] == 0 {
				continue
			}

			lambdaJ := lambda[j]
			oldPos := bo.nodeToIdx[j]
			newPos := bo.bucketPtr[lambdaJ]

			bo.swap(oldPos, newPos)

			bo.bucketCount[lambdaJ]--
			bo.bucketCount[lambdaJ-1]++
			bo.bucketPtr[lambdaJ]++
			bo.bucketPtr[lambdaJ-1] = bo.bucketPtr[lambdaJ] - bo.bucketCount[lambdaJ-1]

			lambda[j]--
		}
	}

	return splitting
}
