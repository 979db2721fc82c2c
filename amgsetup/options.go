package amgsetup

import (
	"github.com/amg-kernels/classical/air"
	"github.com/amg-kernels/classical/cljp"
	"github.com/amg-kernels/classical/coloring"
	"github.com/amg-kernels/classical/csr"
)

// SplitAlgorithm selects which C/F splitting kernel Setup wires in: the
// classical Ruge-Stuben bucketed algorithm (C3) or CLJP (C4).
type SplitAlgorithm int

const (
	// RS selects rssplit.Split.
	RS SplitAlgorithm = iota
	// CLJP selects cljp.Split.
	CLJP
)

// InterpMethod selects which operator Setup builds from the splitting:
// direct interpolation (C5), standard interpolation (C6), or approximate
// ideal restriction (C8).
type InterpMethod int

const (
	// Direct selects interp.DirectInterp.
	Direct InterpMethod = iota
	// Standard selects interp.StandardInterp.
	Standard
	// AIR selects air.Pass1 + air.Pass2.
	AIR
)

// Options configures Setup.
type Options struct {
	// Theta is the strength-of-connection threshold, forwarded to
	// soc.ClassicalSOC. Must be in [0,1].
	Theta float64

	// SplitAlgorithm chooses the C/F splitting strategy.
	SplitAlgorithm SplitAlgorithm

	// InterpMethod chooses the interpolation/restriction strategy.
	InterpMethod InterpMethod

	// MaxRowAIR bounds AIR's per-C-point F-neighborhood size. Ignored
	// unless InterpMethod is AIR. Defaults to air.NoMaxRowLimit.
	MaxRowAIR int

	// CLJPColoring selects the coloring-seeded weight path for CLJP.
	// Ignored unless SplitAlgorithm is CLJP.
	CLJPColoring bool

	// Colorer is the colorer CLJP uses when CLJPColoring is set.
	// Defaults to coloring.MIS.
	Colorer cljp.Colorer

	// Diagnostics receives every non-fatal numerical condition surfaced by
	// the wired kernels, tagged with this call's correlation id. Defaults
	// to csr.NoopDiagnostics.
	Diagnostics csr.Diagnostics
}

// Option is a functional option for Setup.
type Option func(*Options)

// WithTheta sets the strength-of-connection threshold.
func WithTheta(theta float64) Option {
	return func(o *Options) { o.Theta = theta }
}

// WithSplitAlgorithm selects RS or CLJP splitting.
func WithSplitAlgorithm(alg SplitAlgorithm) Option {
	return func(o *Options) { o.SplitAlgorithm = alg }
}

// WithInterpMethod selects Direct, Standard, or AIR.
func WithInterpMethod(method InterpMethod) Option {
	return func(o *Options) { o.InterpMethod = method }
}

// WithMaxRowAIR bounds AIR's neighborhood size; see air.Pass1.
func WithMaxRowAIR(n int) Option {
	return func(o *Options) { o.MaxRowAIR = n }
}

// WithCLJPColoring enables CLJP's coloring-seeded weight path, optionally
// overriding the default colorer (coloring.MIS).
func WithCLJPColoring(colorer cljp.Colorer) Option {
	return func(o *Options) {
		o.CLJPColoring = true
		if colorer != nil {
			o.Colorer = colorer
		}
	}
}

// WithDiagnostics installs the sink every wired kernel reports into,
// tagged with this call's correlation id.
func WithDiagnostics(d csr.Diagnostics) Option {
	return func(o *Options) { o.Diagnostics = d }
}

func defaultOptions() Options {
	return Options{
		Theta:          0.25,
		SplitAlgorithm: RS,
		InterpMethod:   Direct,
		MaxRowAIR:      air.NoMaxRowLimit,
		Colorer:        coloring.MIS,
		Diagnostics:    csr.NoopDiagnostics{},
	}
}
