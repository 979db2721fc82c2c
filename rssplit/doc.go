// Package rssplit implements the classical Ruge-Stuben C/F splitting
// algorithm: a bucketed-priority greedy selection over a strength-of-
// connection graph and its transpose.
//
// The central data structure is the bucketed priority order described in
// the data model: four parallel arrays (BucketPtr, BucketCount, IdxToNode,
// NodeToIdx) that support peek-max, increment/decrement-by-one, and
// removal, all in O(1), without a heap. A heap would change the tie-break
// behavior on equal priorities and destabilize any caller depending on a
// specific splitting for a specific input (regression tests, cached
// hierarchies).
//
// Complexity: O(n + nnz(S) + nnz(T)) amortized; every node's lambda changes
// by at most one per edge touching it during the propagation step, so the
// total number of bucket moves is bounded by the number of strong edges.
//
// Grounded on original_source/pyamg/amg_core/ruge_stuben.h, rs_cf_splitting.
package rssplit
