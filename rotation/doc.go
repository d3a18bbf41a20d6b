// SPDX-License-Identifier: MIT

// Package rotation implements orthogonal factor rotation (Varimax, Equimax,
// Quartimax) by pairwise plane rotations swept over all factor pairs.
//
// A loading matrix B (n variables × m factors) is row-normalized by the
// square roots of its communalities h2, rotated pair by pair until a full
// sweep changes nothing above the precision threshold, and de-normalized:
//
//	BH      = H⁻¹·B
//	repeat  for every (i < j): phi = atan2(X, Y)/4, rotate columns i, j of BH and T
//	result  = H·BH,  T orthogonal,  B·T == result
//
// The simplicity objective is a Criterion; the engine only calls X and Y and
// never inspects which criterion it runs. Custom criteria plug in through New.
//
// Quick start:
//
//	res, err := rotation.Rotate(loadings, rotation.Varimax{}, rotation.DefaultMaxIterations)
//	if err != nil { ... }
//	fmt.Println(res.Iterations, res.Converged)
//
// Engines are single use: a second Iterate returns ErrAlreadyIterated.
// Reaching the sweep bound is not an error; Converged reports it.
// RotateAll compares several criteria on the same matrix concurrently.
package rotation
