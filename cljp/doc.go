// Package cljp implements the CLJP (Cleary, Luby, Jones, Plassmann)
// parallel-style C/F splitting, driven by per-vertex weights that are
// either a fixed-seed pseudo-random draw or derived from an injected
// maximal-independent-set vertex coloring.
//
// CLJP never removes edges from S itself: it tracks live
// edges in a parallel edgemark array so S stays untouched for any other
// caller inspecting it concurrently (§5 notes AIR pass 1 is the only kernel
// that mutates shared input; CLJP's edgemark keeps it that way too).
//
// Grounded on original_source/pyamg/amg_core/ruge_stuben.h,
// cljp_naive_splitting.
package cljp
