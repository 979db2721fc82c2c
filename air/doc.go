// Package air implements approximate ideal restriction (C8): a two-pass
// construction of a restriction operator R from a fine-grid matrix A, its
// strength-of-connection matrix, a splitting, and a caller-supplied C-point
// order.
//
// Pass1 sizes R's row pointer and prunes each C-point's strongly connected
// F-neighborhood to at most max_row entries, mutating the strength matrix
// in place. Pass2 builds, per C-point, a small dense local system from A
// restricted to that neighborhood and solves it via linalg.SolveLS,
// writing the result plus an identity entry into R.
//
// Grounded on original_source/pyamg/amg_core/ruge_stuben.h,
// approx_ideal_restriction_pass1/pass2.
package air
