package cr

import "github.com/amg-kernels/classical/rssplit"

// Splitting is CR's own F=0, C=1 encoding, kept as a distinct type from
// rssplit.NodeClass so the compiler — not a comment — stops the two
// encodings from being silently interchanged, even though the underlying
// values happen to agree with rssplit.NodeClass's own F=0/C=1 layout.
type Splitting []int8

const (
	// SplitF marks a fine (not yet coarsened) node in CR's encoding.
	SplitF int8 = 0
	// SplitC marks a coarse node in CR's encoding.
	SplitC int8 = 1
)

// FromRSSplitting translates an rssplit.NodeClass vector (F=0,C=1) into
// CR's encoding (F=0,C=1).
func FromRSSplitting(s []rssplit.NodeClass) Splitting {
	out := make(Splitting, len(s))
	for i, cls := range s {
		if cls == rssplit.C {
			out[i] = SplitC
		} else {
			out[i] = SplitF
		}
	}

	return out
}

// ToRSSplitting translates a CR Splitting back into rssplit's encoding.
// Any CR value other than SplitC is treated as F, matching Promote's own
// "splitting[pt] == 0" check for F-ness.
func ToRSSplitting(s Splitting) []rssplit.NodeClass {
	out := make([]rssplit.NodeClass, len(s))
	for i, v := range s {
		if v == SplitC {
			out[i] = rssplit.C
		} else {
			out[i] = rssplit.F
		}
	}

	return out
}

// Indices packs the index bookkeeping array from §4.7: Indices[0] is the
// current F-point count nf; Indices[1:nf+1] are the current F-points;
// Indices[nf+1:] are the current C-points.
type Indices []int

// NF returns the current F-point count.
func (idx Indices) NF() int { return idx[0] }
