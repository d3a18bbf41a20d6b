// SPDX-License-Identifier: MIT

package rotation

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lvfactor/matrix"
)

// Result is the frozen outcome of one rotation run.
// Every matrix and slice is owned by the Result.
type Result struct {
	Criterion      string
	Iterations     int
	Converged      bool
	Rotated        *matrix.Dense // n×m rotated loadings
	Transformation *matrix.Dense // m×m orthogonal T
	Communalities  []float64     // h2, identical before and after rotation
}

// ExplainedVariance returns Σ_i Rotated[i,j]² for every factor column j.
func (r *Result) ExplainedVariance() ([]float64, error) {
	return matrix.ColSumSquares(r.Rotated)
}

// TotalVariance returns Σ_ij Rotated[i,j]², which equals Σ_i h2[i] up to rounding.
func (r *Result) TotalVariance() (float64, error) {
	return matrix.SumSquares(r.Rotated)
}

// Rotate builds an engine, iterates it once and freezes the outcome.
//
// Errors: everything New and Iterate return, tagged with rotation.Rotate.
func Rotate(loadings matrix.Matrix, criterion Criterion, maxIterations int, opts ...Option) (*Result, error) {
	eng, err := New(loadings, criterion, opts...)
	if err != nil {
		return nil, rotationErrorf(opRotate, err)
	}
	rotated, err := eng.Iterate(maxIterations)
	if err != nil {
		return nil, rotationErrorf(opRotate, err)
	}

	return &Result{
		Criterion:      criterion.Name(),
		Iterations:     eng.Iterations(),
		Converged:      eng.Converged(),
		Rotated:        rotated,
		Transformation: eng.ComponentTransformationMatrix(),
		Communalities:  eng.Communalities(),
	}, nil
}

// RotateAll rotates the same loadings under every criterion, one engine per
// criterion, with at most WithWorkers engines running at once.
//
// Implementation:
//   - Stage 1: validate the shared input once so bad matrices fail before any work starts.
//   - Stage 2: feed indices to a fixed pool; each worker writes only its own slot.
//   - Stage 3: return results in the order of criteria; the lowest-index error wins.
//
// Determinism:
//   - Engines share nothing mutable, so every Result is bit-identical to a
//     sequential Rotate call regardless of scheduling.
func RotateAll(loadings matrix.Matrix, criteria []Criterion, maxIterations int, opts ...Option) ([]*Result, error) {
	if err := matrix.ValidateNotNil(loadings); err != nil {
		return nil, rotationErrorf(opRotateAll, err)
	}
	if maxIterations < 1 {
		return nil, rotationErrorf(opRotateAll, ErrInvalidMaxIterations)
	}
	for i, c := range criteria {
		if c == nil {
			return nil, fmt.Errorf("%s: criteria[%d]: %w", opRotateAll, i, ErrNilCriterion)
		}
	}
	// Snapshot once; workers read it concurrently but never write.
	src, err := matrix.AsDense(loadings)
	if err != nil {
		return nil, rotationErrorf(opRotateAll, err)
	}
	shared := src.Clone()

	o := gatherOptions(opts...)
	workers := o.workers
	if workers > len(criteria) {
		workers = len(criteria)
	}

	results := make([]*Result, len(criteria))
	errs := make([]error, len(criteria))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx], errs[idx] = Rotate(shared, criteria[idx], maxIterations, opts...)
			}
		}()
	}
	for idx := range criteria {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	for idx, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", opRotateAll, criteria[idx].Name(), err)
		}
	}

	return results, nil
}

// RotateKinds is RotateAll over built-in kinds.
func RotateKinds(loadings matrix.Matrix, kinds []Kind, maxIterations int, opts ...Option) ([]*Result, error) {
	criteria := make([]Criterion, len(kinds))
	for i, k := range kinds {
		c := k.Criterion()
		if c == nil {
			return nil, fmt.Errorf("%s: kinds[%d]=%d: %w", opRotateAll, i, int(k), ErrUnknownCriterion)
		}
		criteria[i] = c
	}

	return RotateAll(loadings, criteria, maxIterations, opts...)
}
