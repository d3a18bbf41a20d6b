// SPDX-License-Identifier: MIT

package rotation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvfactor/matrix"
)

// Rotation is a single orthogonal rotation run over one loading matrix.
//
// Lifecycle: New computes communalities; Iterate runs the sweeps once and
// freezes the result. The engine is not safe for concurrent use; independent
// runs (other matrices, other criteria) each get their own engine.
type Rotation struct {
	criterion Criterion
	opts      Options

	loadings *matrix.Dense // private copy of B (n×m)
	n, m     int

	h2   []float64 // communalities Σ_j B[i,j]²
	h    []float64 // sqrt(h2): diagonal of H
	hInv []float64 // 1/h, or 0 where h == 0: diagonal of H⁻¹

	iterated       bool
	converged      bool
	iterations     int
	rotated        *matrix.Dense // H·BH, nil until Iterate
	transformation *matrix.Dense // accumulated T (m×m), nil until Iterate
}

// New prepares a rotation of loadings (n variables × m factors) under criterion.
// The input is copied; later changes to loadings do not affect the engine.
//
// Errors:
//   - ErrNilCriterion, matrix.ErrNilMatrix.
//   - ErrTooFewFactors when n < 1 or m < 2.
//   - matrix.ErrNaNInf when a loading is NaN or ±Inf, or when a row's
//     sum of squares overflows.
func New(loadings matrix.Matrix, criterion Criterion, opts ...Option) (*Rotation, error) {
	if criterion == nil {
		return nil, rotationErrorf(opNew, ErrNilCriterion)
	}
	if err := matrix.ValidateNotNil(loadings); err != nil {
		return nil, rotationErrorf(opNew, err)
	}
	if loadings.Rows() < 1 || loadings.Cols() < 2 {
		return nil, rotationErrorf(opNew, ErrTooFewFactors)
	}
	if err := matrix.ValidateFinite(loadings); err != nil {
		return nil, rotationErrorf(opNew, err)
	}
	src, err := matrix.AsDense(loadings)
	if err != nil {
		return nil, rotationErrorf(opNew, err)
	}
	b := src.Clone().(*matrix.Dense)

	h2, err := matrix.RowSumSquares(b)
	if err != nil {
		return nil, rotationErrorf(opNew, err)
	}
	h := make([]float64, len(h2))
	hInv := make([]float64, len(h2))
	for i, v := range h2 {
		if math.IsInf(v, 0) {
			// Finite loadings whose squares overflow would turn H·BH into NaN.
			return nil, rotationErrorf(opNew, fmt.Errorf("communality of row %d: %w", i, matrix.ErrNaNInf))
		}
		h[i] = math.Sqrt(v)
		if h[i] != 0 {
			hInv[i] = 1 / h[i]
		} // zero communality: the row stays zero through the whole run
	}

	return &Rotation{
		criterion: criterion,
		opts:      gatherOptions(opts...),
		loadings:  b,
		n:         b.Rows(),
		m:         b.Cols(),
		h2:        h2,
		h:         h,
		hInv:      hInv,
	}, nil
}

// NewVarimax is New with the Varimax criterion.
func NewVarimax(loadings matrix.Matrix, opts ...Option) (*Rotation, error) {
	return New(loadings, Varimax{}, opts...)
}

// NewEquimax is New with the Equimax criterion.
func NewEquimax(loadings matrix.Matrix, opts ...Option) (*Rotation, error) {
	return New(loadings, Equimax{}, opts...)
}

// NewQuartimax is New with the Quartimax criterion.
func NewQuartimax(loadings matrix.Matrix, opts ...Option) (*Rotation, error) {
	return New(loadings, Quartimax{}, opts...)
}

// Iterate runs the pairwise sweeps and returns the rotated loading matrix.
//
// Each sweep visits every factor pair (i, j), i < j, i outer and j inner. A
// pair is rotated in place in both the normalized working matrix and the
// accumulated transformation, so later pairs of the same sweep see the update.
// The run stops when a whole sweep finds every pair below the precision
// threshold, or when the sweep counter exceeds maxIterations; the latter is a
// valid terminal state reported by Converged() == false.
//
// Errors:
//   - ErrInvalidMaxIterations when maxIterations < 1.
//   - ErrAlreadyIterated on a second call.
func (r *Rotation) Iterate(maxIterations int) (*matrix.Dense, error) {
	if r.iterated {
		return nil, rotationErrorf(opIterate, ErrAlreadyIterated)
	}
	if maxIterations < 1 {
		return nil, rotationErrorf(opIterate, ErrInvalidMaxIterations)
	}
	r.iterated = true

	n, m := r.n, r.m
	t, err := matrix.NewIdentity(m)
	if err != nil {
		return nil, rotationErrorf(opIterate, err)
	}
	bh, err := matrix.ScaleRows(r.loadings, r.hInv)
	if err != nil {
		return nil, rotationErrorf(opIterate, err)
	}

	// Column buffers reused by every pair update.
	xx := make([]float64, n)
	yy := make([]float64, n)
	tx := make([]float64, m)
	ty := make([]float64, m)

	var (
		i, j, active        int
		a, b, c, d          float64
		phi, cosPhi, sinPhi float64
	)
	notConverged := true
	pairs := m * (m - 1) / 2
	log := r.opts.logger.With().Str("criterion", r.criterion.Name()).Logger()
	for notConverged {
		if r.iterations > maxIterations {
			break
		}
		r.iterations++
		active = pairs

		for i = 0; i < m-1; i++ {
			for j = i + 1; j < m; j++ {
				if xx, err = bh.Col(i, xx); err != nil {
					return nil, rotationErrorf(opIterate, err)
				}
				if yy, err = bh.Col(j, yy); err != nil {
					return nil, rotationErrorf(opIterate, err)
				}

				a, b, c, d = pairMoments(xx, yy)
				phi = math.Atan2(r.criterion.X(a, b, c, d, n, m), r.criterion.Y(a, b, c, d, n, m)) / 4

				if math.Sin(math.Abs(phi)) < r.opts.precision {
					active--
					if active == 0 {
						notConverged = false
					}
					continue
				}

				if tx, err = t.Col(i, tx); err != nil {
					return nil, rotationErrorf(opIterate, err)
				}
				if ty, err = t.Col(j, ty); err != nil {
					return nil, rotationErrorf(opIterate, err)
				}
				cosPhi, sinPhi = math.Cos(phi), math.Sin(phi)
				planeRotate(xx, yy, cosPhi, sinPhi)
				planeRotate(tx, ty, cosPhi, sinPhi)

				if err = setPair(bh, i, j, xx, yy); err != nil {
					return nil, rotationErrorf(opIterate, err)
				}
				if err = setPair(t, i, j, tx, ty); err != nil {
					return nil, rotationErrorf(opIterate, err)
				}
			}
		}
		log.Debug().Int("sweep", r.iterations).Int("settled_pairs", pairs-active).Int("pairs", pairs).Msg("sweep done")
	}
	r.converged = !notConverged

	rotated, err := matrix.ScaleRows(bh, r.h)
	if err != nil {
		return nil, rotationErrorf(opIterate, err)
	}
	r.rotated = rotated
	r.transformation = t

	log.Debug().Int("iterations", r.iterations).Bool("converged", r.converged).Msg("rotation finished")

	return r.rotated.Clone().(*matrix.Dense), nil
}

// pairMoments reduces two columns to the four scalars the criteria consume.
// Accumulation follows row order so results are reproducible bit for bit.
func pairMoments(xx, yy []float64) (a, b, c, d float64) {
	var uu, vv float64
	for k := range xx {
		uu = xx[k]*xx[k] - yy[k]*yy[k]
		vv = 2 * xx[k] * yy[k]
		a += uu
		b += vv
		c += uu*uu - vv*vv
		d += 2 * uu * vv
	}

	return a, b, c, d
}

// planeRotate applies x' = cos·x + sin·y, y' = −sin·x + cos·y in place.
func planeRotate(x, y []float64, cos, sin float64) {
	var xk, yk float64
	for k := range x {
		xk, yk = x[k], y[k]
		x[k] = cos*xk + sin*yk
		y[k] = -sin*xk + cos*yk
	}
}

// setPair writes columns i and j back into dst.
func setPair(dst *matrix.Dense, i, j int, xi, xj []float64) error {
	if err := dst.SetCol(i, xi); err != nil {
		return err
	}

	return dst.SetCol(j, xj)
}

// Criterion returns the strategy the engine was built with.
func (r *Rotation) Criterion() Criterion { return r.criterion }

// Iterations returns the number of sweeps performed (0 before Iterate).
// It never exceeds maxIterations+1.
func (r *Rotation) Iterations() int { return r.iterations }

// Converged reports whether the last sweep found every pair settled.
// False before Iterate and when the sweep bound stopped the run.
func (r *Rotation) Converged() bool { return r.converged }

// Communalities returns a copy of h2, computed at construction.
func (r *Rotation) Communalities() []float64 {
	out := make([]float64, len(r.h2))
	copy(out, r.h2)

	return out
}

// H2 is an alias of Communalities.
func (r *Rotation) H2() []float64 { return r.Communalities() }

// Rotated returns a copy of the rotated loading matrix, or nil before Iterate.
func (r *Rotation) Rotated() *matrix.Dense {
	if r.rotated == nil {
		return nil
	}

	return r.rotated.Clone().(*matrix.Dense)
}

// RotatedComponentMatrix is an alias of Rotated.
func (r *Rotation) RotatedComponentMatrix() *matrix.Dense { return r.Rotated() }

// ComponentTransformationMatrix returns a copy of the orthogonal m×m matrix T
// accumulated during Iterate, or nil before Iterate.
func (r *Rotation) ComponentTransformationMatrix() *matrix.Dense {
	if r.transformation == nil {
		return nil
	}

	return r.transformation.Clone().(*matrix.Dense)
}
