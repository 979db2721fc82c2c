package cljp

import "github.com/amg-kernels/classical/coloring"

// Options configures Split.
type Options struct {
	// UseColoring selects coloring-derived initial weights over the
	// fixed-seed pseudo-random draw (§4.4).
	UseColoring bool

	// Colorer computes the coloring used when UseColoring is true.
	// Defaults to coloring.MIS.
	Colorer Colorer

	// Seed overrides the fixed PRNG seed (2448422) used for the
	// non-coloring weight draw. Exposed for tests that need a different
	// deterministic sequence; production callers should leave it unset.
	Seed uint64
}

// Option is a functional option for Split.
type Option func(*Options)

// WithColoring enables the coloring-seeded weight path, optionally
// overriding the default colorer (coloring.MIS).
func WithColoring(colorer Colorer) Option {
	return func(o *Options) {
		o.UseColoring = true
		if colorer != nil {
			o.Colorer = colorer
		}
	}
}

// WithSeed overrides the PRNG seed used for the non-coloring weight draw.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}

// defaultSeed is the upstream fixed seed (§4.4).
const defaultSeed = 2448422

func defaultOptions() Options {
	return Options{
		UseColoring: false,
		Colorer:     coloring.MIS,
		Seed:        defaultSeed,
	}
}
