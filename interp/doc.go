// Package interp builds Ruge-Stuben prolongation (interpolation) operators
// from a fine-grid operator A, its strength matrix S, and a C/F splitting:
// direct interpolation (two-pass, cheaper, less accurate) and standard
// interpolation (two-pass, more expensive, accounts for strongly connected
// F-neighbors).
//
// Both share the same pass-1 sizing rule and the same column-remap step
// (fine-grid to coarse-grid numbering via a prefix sum over the
// splitting), so that logic lives once in pass1.go rather than
// duplicated across direct.go and standard.go.
//
// Grounded on original_source/pyamg/amg_core/ruge_stuben.h,
// rs_direct_interpolation_pass1/pass2 and
// rs_standard_interpolation_pass1/pass2.
package interp
