package cljp

import "github.com/amg-kernels/classical/csr"

// NodeClass mirrors rssplit.NodeClass's C/F/U constants (PreF is unused by
// CLJP; it has no tentative-F propagation step). Kept as a distinct type
// rather than importing rssplit, since CLJP's U-to-F/C transition semantics
// differ enough (no PreF state, no bucket reindexing) that sharing the
// exact same type would suggest an algorithmic coupling that doesn't exist.
type NodeClass int8

const (
	// F marks a fine node.
	F NodeClass = 0
	// C marks a coarse node.
	C NodeClass = 1
	// U marks an unassigned node.
	U NodeClass = 2
)

// Colorer computes a vertex coloring of s's sparsity graph: color(s) ->
// (coloring[n], ncolors). coloring.MIS is the default implementation; it is
// injected rather than hard-linked so a caller can substitute a different
// colorer, or reuse one cached across several related CLJP calls.
type Colorer func(s *csr.Matrix) (coloring []int, ncolors int)
