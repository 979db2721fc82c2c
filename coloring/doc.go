// Package coloring provides a maximal-independent-set (MIS) vertex colorer
// for CSR graphs, used as the default injected Colorer for cljp.Split when
// CLJP's coloring-seeded weight mode is requested.
//
// SPEC_FULL.md's domain stack treats a colorer as an external collaborator
// the CLJP kernel only depends on through an injected function value
// (cljp.Colorer); this package is the concrete implementation that ships
// with the module so the coloring path works out of the box, without
// hard-linking cljp to one colorer implementation.
//
// The algorithm peels off successive independent sets: each round selects
// an independent set of currently-uncolored vertices, built from those whose
// pseudo-random weight beats every uncolored neighbor (equal weights go to
// the smaller vertex id; the fixed-seed weight draw is the same kind cljp
// itself uses for its D-set selection — see
// original_source/pyamg/amg_core/ruge_stuben.h, cljp_naive_splitting), and
// assigns that set the next color. Every vertex in the same independent set
// receives the same color; colors increase each round.
package coloring
