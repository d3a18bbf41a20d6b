// SPDX-License-Identifier: MIT

// Package lvfactor turns loading matrices into simple structure: principal
// component extraction followed by orthogonal factor rotation.
//
// What is inside?
//
//	A small, deterministic toolkit that brings together:
//		• Dense matrices with bounds-checked access and column buffers
//		• Correlation, covariance and a symmetric Jacobi eigen solver
//		• PCA loadings with the Kaiser rule for the number of components
//		• Varimax, Equimax and Quartimax rotation by pairwise plane sweeps
//		• A CLI that reads YAML/JSON and writes YAML, JSON, tables and plots
//
// Everything is organized under four directories:
//
//	matrix/        Dense storage, linear algebra and statistics kernels
//	factor/        principal-component extraction from data or a correlation matrix
//	rotation/      rotation criteria, the sweep engine and batch helpers
//	cmd/lvrotate/  the command-line front end (rotate, pca, compare)
//
// Quick example:
//
//	res, err := rotation.Rotate(loadings, rotation.Varimax{}, rotation.DefaultMaxIterations)
//	// res.Rotated = loadings · res.Transformation
//
//	go install github.com/katalvlaran/lvfactor/cmd/lvrotate@latest
package lvfactor
