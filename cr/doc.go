// Package cr implements the compatible-relaxation (CR) candidate-promotion
// helper: given a relaxed error vector and a target near-null-space vector,
// it promotes a greedy maximal-independent-set of high-measure F-points to
// C-points.
//
// Encoding note: this kernel's splitting array is its own Splitting type
// with F=0, C=1 — the same integer values rssplit uses for F and C, but a
// distinct type. FromRSSplitting/ToRSSplitting translate at the boundary; Promote itself
// never silently assumes one encoding or the other beyond what its own
// Splitting type enforces.
//
// Grounded on original_source/pyamg/amg_core/ruge_stuben.h, cr_helper.
package cr
