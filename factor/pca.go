// SPDX-License-Identifier: MIT

package factor

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvfactor/matrix"
)

// Extraction is the outcome of a principal-component extraction.
type Extraction struct {
	// Eigenvalues of the correlation matrix, all p of them, in descending order.
	Eigenvalues []float64
	// Loadings is the p×k unrotated loading matrix, ready for rotation.
	Loadings *matrix.Dense
	// Components is k, the number of retained components.
	Components int
	// Means and Stds describe the input columns (nil for PCAFromCorrelation).
	Means, Stds []float64
}

// ExplainedVariance returns, for every retained component, the share of
// total variance it carries: λ_k / Σλ.
func (e *Extraction) ExplainedVariance() []float64 {
	var total float64
	for _, v := range e.Eigenvalues {
		total += v
	}
	out := make([]float64, e.Components)
	if total == 0 {
		return out
	}
	for k := 0; k < e.Components; k++ {
		out[k] = e.Eigenvalues[k] / total
	}

	return out
}

// PCA extracts principal-component loadings from a data matrix
// (rows = observations, columns = variables).
//
// Implementation:
//   - Stage 1: validate shape (≥2 rows, ≥2 columns) and finiteness.
//   - Stage 2: Pearson correlation of the columns (matrix.Correlation).
//   - Stage 3: PCAFromCorrelation.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNaNInf.
//   - ErrTooFewObservations, ErrTooFewVariables, ErrComponentsOutOfRange.
//   - matrix.ErrMatrixEigenFailed when the eigen solver hits its cap.
func PCA(data matrix.Matrix, opts ...Option) (*Extraction, error) {
	if err := matrix.ValidateNotNil(data); err != nil {
		return nil, factorErrorf(opPCA, err)
	}
	if data.Rows() < 2 {
		return nil, factorErrorf(opPCA, ErrTooFewObservations)
	}
	if data.Cols() < 2 {
		return nil, factorErrorf(opPCA, ErrTooFewVariables)
	}
	if err := matrix.ValidateFinite(data); err != nil {
		return nil, factorErrorf(opPCA, err)
	}

	corr, means, stds, err := matrix.Correlation(data)
	if err != nil {
		return nil, factorErrorf(opPCA, err)
	}
	ex, err := PCAFromCorrelation(corr, opts...)
	if err != nil {
		return nil, factorErrorf(opPCA, err)
	}
	ex.Means, ex.Stds = means, stds

	return ex, nil
}

// PCAFromCorrelation extracts loadings from a precomputed p×p correlation matrix.
//
// Implementation:
//   - Stage 1: Jacobi eigendecomposition (matrix.Eigen).
//   - Stage 2: order eigenpairs by descending eigenvalue; ties keep solver order.
//   - Stage 3: k from WithComponents, else the Kaiser rule with a floor of 2.
//   - Stage 4: L[:,k] = v_k·sqrt(λ_k), then flip each column so that its
//     largest absolute loading is positive.
//
// Determinism:
//   - Same input, same options: bit-identical loadings.
func PCAFromCorrelation(corr matrix.Matrix, opts ...Option) (*Extraction, error) {
	if err := matrix.ValidateSquareNonNil(corr); err != nil {
		return nil, factorErrorf(opPCAFromCorrelation, err)
	}
	p := corr.Rows()
	if p < 2 {
		return nil, factorErrorf(opPCAFromCorrelation, ErrTooFewVariables)
	}
	o := gatherOptions(opts...)
	if o.components > p {
		return nil, factorErrorf(opPCAFromCorrelation, ErrComponentsOutOfRange)
	}

	vals, vecs, err := matrix.Eigen(corr, o.tol, o.maxSweeps*p*(p-1)/2)
	if err != nil {
		return nil, factorErrorf(opPCAFromCorrelation, err)
	}

	order := make([]int, p)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return vals[order[a]] > vals[order[b]] })
	sorted := make([]float64, p)
	for i, idx := range order {
		sorted[i] = vals[idx]
	}

	k := o.components
	if k == 0 {
		for _, v := range sorted {
			if v >= o.minEigenvalue {
				k++
			}
		}
		if k < minRetained {
			k = minRetained
		}
	}

	q, err := matrix.AsDense(vecs)
	if err != nil {
		return nil, factorErrorf(opPCAFromCorrelation, err)
	}
	rows := make([]int, p)
	for i := range rows {
		rows[i] = i
	}
	lead, err := q.Induced(rows, order[:k])
	if err != nil {
		return nil, factorErrorf(opPCAFromCorrelation, err)
	}
	scale := make([]float64, k)
	for j := range scale {
		scale[j] = math.Sqrt(math.Max(sorted[j], 0)) // round-off can push λ≈0 below zero
	}
	loadings, err := matrix.ScaleCols(lead, scale)
	if err != nil {
		return nil, factorErrorf(opPCAFromCorrelation, err)
	}
	if err = normalizeSigns(loadings); err != nil {
		return nil, factorErrorf(opPCAFromCorrelation, err)
	}

	return &Extraction{
		Eigenvalues: sorted,
		Loadings:    loadings,
		Components:  k,
	}, nil
}

// normalizeSigns flips every column whose largest-magnitude entry is negative.
// The first maximum in row order decides on ties; all-zero columns stay as they are.
func normalizeSigns(l *matrix.Dense) error {
	peak := make([]float64, l.Cols()) // signed entry of largest magnitude per column
	l.Do(func(_, j int, v float64) bool {
		if math.Abs(v) > math.Abs(peak[j]) {
			peak[j] = v
		}
		return true
	})

	return l.Apply(func(_, j int, v float64) float64 {
		if peak[j] < 0 {
			return -v
		}
		return v
	})
}
