// SPDX-License-Identifier: MIT

package factor

import "math"

const (
	// DefaultMinEigenvalue is the Kaiser cut-off: components whose eigenvalue
	// is at least this value are retained when WithComponents is not given.
	DefaultMinEigenvalue = 1.0

	// DefaultTolerance bounds the largest off-diagonal entry left by the
	// Jacobi eigen solver, and the accepted asymmetry of its input.
	DefaultTolerance = 1e-12

	// DefaultMaxSweeps bounds the eigen solver in sweeps of p(p-1)/2 rotations.
	DefaultMaxSweeps = 100

	// minRetained is the floor applied to the Kaiser count.
	minRetained = 2
)

const (
	panicComponentsInvalid    = "factor: WithComponents: k must be >= 1"
	panicMinEigenvalueInvalid = "factor: WithMinEigenvalue: value must be finite"
	panicToleranceInvalid     = "factor: WithTolerance: tol must be finite and > 0"
	panicMaxSweepsInvalid     = "factor: WithMaxSweeps: sweeps must be >= 1"
)

// Option configures PCA extraction.
type Option func(*Options)

// Options holds the resolved extraction settings.
type Options struct {
	components    int // 0 selects the Kaiser rule
	minEigenvalue float64
	tol           float64
	maxSweeps     int
}

// WithComponents retains exactly k components instead of applying the Kaiser rule.
func WithComponents(k int) Option {
	if k < 1 {
		panic(panicComponentsInvalid)
	}

	return func(o *Options) { o.components = k }
}

// WithMinEigenvalue changes the Kaiser cut-off.
func WithMinEigenvalue(v float64) Option {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(panicMinEigenvalueInvalid)
	}

	return func(o *Options) { o.minEigenvalue = v }
}

// WithTolerance sets the eigen solver tolerance.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxSweeps caps the eigen solver.
func WithMaxSweeps(sweeps int) Option {
	if sweeps < 1 {
		panic(panicMaxSweepsInvalid)
	}

	return func(o *Options) { o.maxSweeps = sweeps }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		minEigenvalue: DefaultMinEigenvalue,
		tol:           DefaultTolerance,
		maxSweeps:     DefaultMaxSweeps,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
