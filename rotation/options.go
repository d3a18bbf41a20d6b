// SPDX-License-Identifier: MIT

package rotation

import (
	"math"
	"runtime"

	"github.com/rs/zerolog"
)

const (
	// MaxPrecision is the convergence threshold on sin(|phi|): a pair whose
	// rotation angle is below it counts as settled for the current sweep.
	MaxPrecision = 1e-15

	// DefaultMaxIterations bounds the number of sweeps.
	DefaultMaxIterations = 25
)

const (
	panicPrecisionInvalid = "rotation: WithPrecision: precision must be finite and > 0"
	panicWorkersInvalid   = "rotation: WithWorkers: workers must be >= 1"
)

// Option configures an engine or a batch run.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	precision float64
	logger    zerolog.Logger
	workers   int
}

// WithPrecision overrides MaxPrecision.
func WithPrecision(p float64) Option {
	if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// WithLogger routes sweep diagnostics (Debug level) to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithWorkers bounds the number of engines RotateAll runs at once.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// gatherOptions resolves setters against the defaults; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		precision: MaxPrecision,
		logger:    zerolog.Nop(),
		workers:   runtime.GOMAXPROCS(0),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
