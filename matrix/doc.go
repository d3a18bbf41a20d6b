// SPDX-License-Identifier: MIT

// Package matrix offers a dense, row-major float64 matrix and the numeric
// kernels used by factor extraction and factor rotation.
//
// The matrix package provides:
//
//   - Dense with bounds-checked At/Set, strided column access (Col/SetCol)
//     into caller-owned buffers, and an optional finite-only numeric policy.
//   - Linear-algebra kernels: Mul, Transpose, Scale, IsOrthogonal and a
//     symmetric Jacobi eigen solver (Eigen).
//   - Diagonal scaling without materializing the diagonal (ScaleRows, ScaleCols).
//   - Statistics: CenterColumns, Covariance, Correlation and sum-of-squares
//     reductions (RowSumSquares, ColSumSquares, SumSquares).
//
// All kernels are deterministic (fixed loop orders), never mutate their
// inputs, and report failures through sentinel errors matched with errors.Is.
//
// See the examples in this package and in rotation for usage patterns.
package matrix
