// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide common statistical transforms (centering, covariance, correlation)
//     and sum-of-squares reductions as deterministic compositions over canonical
//     kernels (Mul/Transpose/Scale) and ew* micro-kernels.
//
// Exposed API (see api.go):
//   - CenterColumns(X)   -> (Xc, means)         // subtract per-column mean
//   - Covariance(X)      -> (Cov, means)        // sample covariance of columns: (Xcᵀ Xc)/(r-1)
//   - Correlation(X)     -> (Corr, means, stds) // Pearson corr via z-scoring; degenerate std=0 → zeroed column
//   - RowSumSquares(X)   -> per-row Σ_j X[i,j]²  (communalities of a loading matrix)
//   - ColSumSquares(X)   -> per-column Σ_i X[i,j]² (variance carried by each factor)
//   - SumSquares(X)      -> Σ_ij X[i,j]²          (total explained variance)
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
	opCorrelation   = "Correlation"
	opSumSquares    = "SumSquares"
)

// centerColumns subtracts the per-column mean from every element (column-wise centering).
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Compute column means in a deterministic pass (Dense fast-path; At fallback).
//   - Stage 3: Apply ewBroadcastSubCols to produce a centered copy.
//
// Returns:
//   - Matrix: centered copy (r×c).
//   - []float64: column means (len=c), Σ_i X[i,j] / r.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for output (+ O(c) means).
func centerColumns(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	r, c := X.Rows(), X.Cols()
	means := make([]float64, c)

	var i, j int
	var v float64

	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ { // deterministic row order
			base := i * c
			for j = 0; j < c; j++ {
				means[j] += d.data[base+j]
			}
		}
	} else {
		var err error
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				v, err = X.At(i, j)
				if err != nil {
					return nil, nil, matrixErrorf(opCenterColumns, err)
				}
				means[j] += v
			}
		}
	}

	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// covariance computes the sample covariance of the columns of X.
// Implementation:
//   - Stage 1: Validate X, require r>=2.
//   - Stage 2: Center columns; Cov = (Xcᵀ Xc)/(r-1) via Transpose/Mul/Scale.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (r<2), wrapped kernel errors.
//
// Complexity:
//   - Time O(r*c + r*c^2), Space O(c^2).
func covariance(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	if X.Rows() < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}

	Xc, means, err := centerColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Xct, err := Transpose(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := Mul(Xct, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Cov, err := Scale(G, 1.0/float64(X.Rows()-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return Cov, means, nil
}

// correlation computes Pearson correlation of columns via z-scoring:
// Corr = (Zᵀ Z)/(r-1), where Z = (X − mean) * diag(1/std).
// Degenerate std==0 → that column becomes all zeros (zero row/col in Corr).
//
// Implementation:
//   - Stage 1: Validate X, require r>=2; center columns (means).
//   - Stage 2: Compute sample stds per column; build invStd with 0 for degenerate columns.
//   - Stage 3: Z = Xc * diag(invStd) via ewScaleCols; Corr = (Zᵀ Z)/(r-1).
//
// Behavior highlights:
//   - Exactly symmetric: entry (i,j) and (j,i) accumulate the same products in the same order.
//   - Scale-invariant: correlation(α*X) == correlation(X) for α>0.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (r<2), wrapped kernel errors.
//
// Complexity:
//   - Time O(r*c + r*c^2), Space O(c^2).
func correlation(X Matrix) (Matrix, []float64, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	r, c := X.Rows(), X.Cols()
	if r < 2 {
		return nil, nil, nil, matrixErrorf(opCorrelation, ErrDimensionMismatch)
	}

	Xc, means, err := centerColumns(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}

	// std[j] = sqrt( Σ_i Xc[i,j]^2 / (r-1) ).
	sumsq, err := colSumSquares(Xc)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	stds := make([]float64, c)
	invStd := make([]float64, c)
	inv := 1.0 / float64(r-1)
	for j := 0; j < c; j++ {
		stds[j] = math.Sqrt(sumsq[j] * inv)
		if stds[j] > 0 {
			invStd[j] = 1.0 / stds[j]
		} // degenerate column keeps invStd[j] == 0
	}

	Z, err := ewScaleCols(Xc, invStd)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	Zt, err := Transpose(Z)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	G, err := Mul(Zt, Z)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	Corr, err := Scale(G, inv)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}

	return Corr, means, stds, nil
}

// rowSumSquares returns out[i] = Σ_j X[i,j]².
// For a loading matrix this is the communality vector h2.
// Complexity: O(r*c).
func rowSumSquares(X Matrix) ([]float64, error) {
	d, err := sumSquaresInput(X)
	if err != nil {
		return nil, err
	}
	out := make([]float64, d.r)
	var i, j, base int
	var v float64
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			v = d.data[base+j]
			out[i] += v * v
		}
	}

	return out, nil
}

// colSumSquares returns out[j] = Σ_i X[i,j]².
// Complexity: O(r*c).
func colSumSquares(X Matrix) ([]float64, error) {
	d, err := sumSquaresInput(X)
	if err != nil {
		return nil, err
	}
	out := make([]float64, d.c)
	var i, j, base int
	var v float64
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			v = d.data[base+j]
			out[j] += v * v
		}
	}

	return out, nil
}

// sumSquares returns Σ_ij X[i,j]² accumulated in row-major order.
// Complexity: O(r*c).
func sumSquares(X Matrix) (float64, error) {
	d, err := sumSquaresInput(X)
	if err != nil {
		return 0, err
	}
	total := ZeroSum
	for _, v := range d.data {
		total += v * v
	}

	return total, nil
}

// sumSquaresInput validates X and exposes it as *Dense for the reductions above.
func sumSquaresInput(X Matrix) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opSumSquares, err)
	}
	d, err := toDense(X)
	if err != nil {
		return nil, matrixErrorf(opSumSquares, err)
	}

	return d, nil
}
