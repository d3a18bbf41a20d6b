// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise and broadcast kernels (ew*) to avoid
//     duplicating tight loops across higher-level ops (stats, diagonal scaling).
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Design:
//   - All ew* are UNEXPORTED (internal micro-kernels).
//   - Public API uses these via thin wrappers in api.go and impl_statistics.go.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

import "math"

// Operation name constants for the element-wise kernels.
const (
	opBroadcastSubCols = "broadcastSubCols"
	opScaleCols        = "ScaleCols"
	opScaleRows        = "ScaleRows"
	opAllClose         = "AllClose"
)

// ewBroadcastSubCols computes out[i,j] = X[i,j] - colMeans[j].
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
func ewBroadcastSubCols(X Matrix, colMeans []float64) (Matrix, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opBroadcastSubCols, err)
	}
	r, c := X.Rows(), X.Cols()
	if err := ValidateVecLen(colMeans, c); err != nil {
		return nil, matrixErrorf(opBroadcastSubCols, err)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opBroadcastSubCols, err)
	}

	// Dense fast-path: single pass over the flat row-major buffer.
	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c // cache the base offset for row i
			for j := 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] - colMeans[j]
			}
		}
		return out, nil
	}

	// Generic fallback.
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf(opBroadcastSubCols, e)
			}
			out.data[i*c+j] = v - colMeans[j]
		}
	}

	return out, nil
}

// ewScaleCols computes out[i,j] = X[i,j] * scale[j], i.e. X · diag(scale).
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
//
// Use factors as 1/std for z-scoring, or 0 for degenerate columns.
func ewScaleCols(X Matrix, scale []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	r, c := X.Rows(), X.Cols()
	if err := ValidateVecLen(scale, c); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}

	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c // row base offset
			for j := 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] * scale[j]
			}
		}
		return out, nil
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf(opScaleCols, e)
			}
			out.data[i*c+j] = v * scale[j]
		}
	}

	return out, nil
}

// ewScaleRows computes out[i,j] = X[i,j] * scale[i], i.e. diag(scale) · X.
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
//
// This is the left product with a diagonal matrix without materializing it:
// the communality normalization H⁻¹·B and its inverse H·BH both go through here.
func ewScaleRows(X Matrix, scale []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	r, c := X.Rows(), X.Cols()
	if err := ValidateVecLen(scale, r); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}

	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c  // row base offset
			sf := scale[i] // scale factor for row i
			for j := 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] * sf
			}
		}
		return out, nil
	}

	for i := 0; i < r; i++ {
		sf := scale[i] // row scale once per row
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf(opScaleRows, e)
			}
			out.data[i*c+j] = v * sf
		}
	}

	return out, nil
}

// ewAllClose reports whether |a-b| ≤ atol + rtol*|b| holds element-wise.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	r, c := a.Rows(), a.Cols()

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := r * c
			for idx := 0; idx < n; idx++ {
				if math.Abs(da.data[idx]-db.data[idx]) > atol+rtol*math.Abs(db.data[idx]) {
					return false, nil // early-exit on first violation
				}
			}
			return true, nil
		}
	}

	// Generic fallback via At (bounds-safe; still deterministic).
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
