package amgsetup

import (
	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"

	"github.com/amg-kernels/classical/air"
	"github.com/amg-kernels/classical/cljp"
	"github.com/amg-kernels/classical/csr"
	"github.com/amg-kernels/classical/interp"
	"github.com/amg-kernels/classical/rssplit"
	"github.com/amg-kernels/classical/soc"
)

// Result is the output of one Setup call.
type Result struct {
	// CorrelationID tags this call; the same id prefixes every diagnostic
	// message Setup's wired kernels emitted.
	CorrelationID string

	// Strength is the strength-of-connection matrix used for splitting and
	// interpolation. When InterpMethod is AIR, Strength has been pruned in
	// place by air.Pass1 (§5: AIR pass 1 is the only kernel that mutates
	// shared input).
	Strength *csr.Matrix

	// Splitting is the C/F classification produced by the chosen
	// SplitAlgorithm, always encoded in rssplit's F=0/C=1 convention
	// regardless of which algorithm produced it.
	Splitting []rssplit.NodeClass

	// CPoints lists coarse-point indices in ascending order.
	CPoints []int

	// P is the prolongator built by Direct or Standard interpolation; nil
	// when InterpMethod is AIR.
	P *csr.Matrix

	// R is the restriction operator built by AIR; nil otherwise.
	R *csr.Matrix
}

// Setup wires one matrix through strength of connection, C/F splitting,
// and interpolation/restriction: C1 -> C3/C4 -> C5/C6/C8. It runs
// single-threaded and synchronously per call (§5); no cycling, no Galerkin
// product.
func Setup(a *csr.Matrix, opts ...Option) (*Result, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	id := uuid.NewString()

	if a == nil {
		return nil, pkgerrors.Wrapf(ErrNilMatrix, "amgsetup.Setup[%s]", id)
	}
	if a.N == 0 {
		return nil, pkgerrors.Wrapf(ErrEmptyMatrix, "amgsetup.Setup[%s]", id)
	}
	if cfg.Theta < 0 || cfg.Theta > 1 {
		return nil, pkgerrors.Wrapf(ErrBadTheta, "amgsetup.Setup[%s]", id)
	}

	diag := &taggedDiagnostics{tag: id, inner: cfg.Diagnostics}

	s := soc.ClassicalSOC(a, soc.WithTheta(cfg.Theta))
	t := transposeCSR(s)
	influence := make([]int, a.N)

	var splitting []rssplit.NodeClass
	switch cfg.SplitAlgorithm {
	case RS:
		splitting = rssplit.Split(a.N, s, t, influence, rssplit.WithDiagnostics(diag))
	case CLJP:
		var cljpOpts []cljp.Option
		if cfg.CLJPColoring {
			cljpOpts = append(cljpOpts, cljp.WithColoring(cfg.Colorer))
		}
		splitting = rsSplittingFromCLJP(cljp.Split(a.N, s, t, cljpOpts...))
	default:
		return nil, pkgerrors.Wrapf(ErrUnknownSplitAlgorithm, "amgsetup.Setup[%s]", id)
	}

	result := &Result{
		CorrelationID: id,
		Strength:      s,
		Splitting:     splitting,
		CPoints:       cPoints(splitting),
	}

	switch cfg.InterpMethod {
	case Direct:
		result.P = interp.DirectInterp(a, s, splitting)
	case Standard:
		result.P = interp.StandardInterp(a, s, splitting, interp.WithDiagnostics(diag))
	case AIR:
		r1 := air.Pass1(s, result.CPoints, splitting, cfg.MaxRowAIR)
		result.R = air.Pass2(r1, a, s, result.CPoints, splitting, air.WithDiagnostics(diag))
	default:
		return nil, pkgerrors.Wrapf(ErrUnknownInterpMethod, "amgsetup.Setup[%s]", id)
	}

	return result, nil
}

// cPoints collects coarse-point indices in ascending order, the C-point
// order AIR and a Galerkin-product caller both need.
func cPoints(splitting []rssplit.NodeClass) []int {
	var cpts []int
	for i, cls := range splitting {
		if cls == rssplit.C {
			cpts = append(cpts, i)
		}
	}

	return cpts
}

// rsSplittingFromCLJP re-encodes cljp's splitting into rssplit's NodeClass,
// which share the same F=0/C=1 integer values but are kept as distinct
// types per cljp/types.go. CLJP never leaves a node U once Split returns.
func rsSplittingFromCLJP(raw []cljp.NodeClass) []rssplit.NodeClass {
	out := make([]rssplit.NodeClass, len(raw))
	for i, cls := range raw {
		if cls == cljp.C {
			out[i] = rssplit.C
		} else {
			out[i] = rssplit.F
		}
	}

	return out
}
