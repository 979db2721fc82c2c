// Package soc computes classical strength-of-connection filtering and the
// per-row maximum-magnitude helper it depends on.
//
// Grounded on original_source/pyamg/amg_core/ruge_stuben.h
// (classical_strength_of_connection, maximum_row_value).
package soc
