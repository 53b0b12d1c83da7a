package fill

import (
	"github.com/hashicorp/go-hclog"
	"github.com/maseology/hydrocorrect/tem"
)

// Option configures a HoleFiller.
type Option func(*HoleFiller)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l hclog.Logger) Option {
	return func(h *HoleFiller) {
		if l != nil {
			h.log = l
		}
	}
}

// WithDirector sets the flow director used to find sinks.
func WithDirector(d tem.Director) Option {
	return func(h *HoleFiller) {
		if d != nil {
			h.dir = d
		}
	}
}

// WithMaxIterations caps the locate/fill passes of FillPits. Zero keeps the
// default of one more than the number of depressions first found.
func WithMaxIterations(n int) Option {
	return func(h *HoleFiller) { h.maxIter = n }
}

// WithProgress registers a callback invoked after every locate pass with the
// pass number and the depressions found.
func WithProgress(f func(iter, found int)) Option {
	return func(h *HoleFiller) { h.progress = f }
}
