package rssplit

// NodeClass is a node's classification during and after splitting.
// The PreF state is transient: it exists only inside a single propagation
// step of Split and never survives to the returned splitting vector.
type NodeClass int8

const (
	// F marks a fine node.
	F NodeClass = 0
	// C marks a coarse node.
	C NodeClass = 1
	// U marks an unassigned (not yet classified) node.
	U NodeClass = 2
	// PreF marks a node tentatively moving to F during propagation.
	PreF NodeClass = 3
)

// bucketOrder is the four-parallel-array bucketed priority structure from
// the data model. For every unassigned node i the invariant
//
//	BucketPtr[lambda[i]] <= NodeToIdx[i] < BucketPtr[lambda[i]] + BucketCount[lambda[i]]
//
// holds at the start and end of every loop iteration of Split. A move
// between buckets (increment/decrement lambda) must update NodeToIdx for
// both endpoints of a swap before mutating IdxToNode, so that the map never
// observes a half-applied swap — the same ordering the source enforces with
// its paired "node_to_index[...] = ...; swap(...)" sequences.
type bucketOrder struct {
	bucketPtr   []int // first slot index for a given priority
	bucketCount []int // current occupancy of a given priority's bucket
	idxToNode   []int // slot position -> node id
	nodeToIdx   []int // node id -> slot position
}

// newBucketOrder builds the bucket structure for the given lambda vector.
// L must be at least max(2*max(lambda), n+1), per the data model's
// bucket-construction rule.
func newBucketOrder(n int, lambda []int, l int) *bucketOrder {
	b := &bucketOrder{
		bucketPtr:   make([]int, l),
		bucketCount: make([]int, l),
		idxToNode:   make([]int, n),
		nodeToIdx:   make([]int, n),
	}

	for i := 0; i < n; i++ {
		b.bucketCount[lambda[i]]++
	}
	cumsum := 0
	for ell := 0; ell < l; ell++ {
		b.bucketPtr[ell] = cumsum
		cumsum += b.bucketCount[ell]
		b.bucketCount[ell] = 0
	}
	for i := 0; i < n; i++ {
		li := lambda[i]
		idx := b.bucketPtr[li] + b.bucketCount[li]
		b.idxToNode[idx] = i
		b.nodeToIdx[i] = idx
		b.bucketCount[li]++
	}

	return b
}

// swap exchanges the nodes stored at slots a and b, updating both position
// maps before touching idxToNode, so NodeToIdx never observes a
// half-applied swap.
func (b *bucketOrder) swap(a, bIdx int) {
	b.nodeToIdx[b.idxToNode[a]] = bIdx
	b.nodeToIdx[b.idxToNode[bIdx]] = a
	b.idxToNode[a], b.idxToNode[bIdx] = b.idxToNode[bIdx], b.idxToNode[a]
}
