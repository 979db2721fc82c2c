// Package linalg provides a small dense least-squares solver for the local
// systems assembled by air.
//
// Complexity: O(m*n^2) for the Householder reduction, O(n^2) for the
// back-substitution.
//
// Grounded on matrix/impl_linear_algebra.go's QR: the same column-wise
// Householder reflection loop, applied here to a rectangular column-major
// buffer and fused with a right-hand-side transform instead of accumulating
// an explicit Q.
package linalg
