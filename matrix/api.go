// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication; each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// Starting point of every accumulated rotation (Jacobi eigenvectors, factor rotations).
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// AsDense returns m as *Dense, copying through At when m is another implementation.
// The returned value aliases m when m already is a *Dense.
// Complexity: O(1) or O(r*c).
func AsDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("AsDense", err)
	}

	return toDense(m)
}

// ---------- Linear Algebra (facades map 1:1 to kernels) ----------

// ScaleRows returns diag(scale) · X without materializing the diagonal.
// Complexity: O(rc).
func ScaleRows(X Matrix, scale []float64) (*Dense, error) { return ewScaleRows(X, scale) }

// ScaleCols returns X · diag(scale) without materializing the diagonal.
// Complexity: O(rc).
func ScaleCols(X Matrix, scale []float64) (*Dense, error) { return ewScaleCols(X, scale) }

// ---------- Comparison ----------

// AllClose reports whether |a-b| ≤ atol + rtol*|b| element-wise.
// Complexity: O(rc).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) { return ewAllClose(a, b, rtol, atol) }

// ---------- Statistics ----------

// CenterColumns subtracts per-column means.
// Returns the centered copy and the means.
// Complexity: O(rc).
func CenterColumns(X Matrix) (Matrix, []float64, error) { return centerColumns(X) }

// Covariance returns the sample covariance of the columns of X and the column means.
// Complexity: O(r*c^2).
func Covariance(X Matrix) (Matrix, []float64, error) { return covariance(X) }

// Correlation returns the Pearson correlation of the columns of X plus means and stds.
// Degenerate (constant) columns yield zero rows/columns in the result.
// Complexity: O(r*c^2).
func Correlation(X Matrix) (Matrix, []float64, []float64, error) { return correlation(X) }

// RowSumSquares returns Σ_j X[i,j]² for each row (communalities of a loading matrix).
// Complexity: O(rc).
func RowSumSquares(X Matrix) ([]float64, error) { return rowSumSquares(X) }

// ColSumSquares returns Σ_i X[i,j]² for each column (variance per factor).
// Complexity: O(rc).
func ColSumSquares(X Matrix) ([]float64, error) { return colSumSquares(X) }

// SumSquares returns Σ_ij X[i,j]² (total variance carried by a loading matrix).
// Complexity: O(rc).
func SumSquares(X Matrix) (float64, error) { return sumSquares(X) }
