// SPDX-License-Identifier: MIT

// Package factor extracts unrotated principal-component loadings, the usual
// input of the rotation package.
//
// PCA correlates the data columns, diagonalizes the correlation matrix with
// the Jacobi solver from matrix, keeps the leading components (Kaiser rule by
// default) and scales each eigenvector by the square root of its eigenvalue:
//
//	ex, err := factor.PCA(data)
//	res, err := rotation.Rotate(ex.Loadings, rotation.Varimax{}, rotation.DefaultMaxIterations)
package factor
