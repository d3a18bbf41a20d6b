// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfactor/matrix"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

func TestValidateShapes(t *testing.T) {
	sq := MustDense(t, 2, 2)
	wide := MustDense(t, 2, 3)

	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(wide), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateSameShape(sq, hide{MustDense(t, 2, 2)}))
	require.ErrorIs(t, matrix.ValidateSameShape(sq, wide), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(nil, sq), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateMulCompatible(sq, wide))
	require.ErrorIs(t, matrix.ValidateMulCompatible(wide, sq), matrix.ErrDimensionMismatch)
}

func TestValidateVecLen(t *testing.T) {
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 0), matrix.ErrNilMatrix)
}

func TestValidateFinite(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, math.NaN()}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	require.ErrorIs(t, matrix.ValidateFinite(m), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite(hide{m}), matrix.ErrNaNInf)
	require.NoError(t, matrix.ValidateFinite(NewFilledDense(t, 1, 2, []float64{-1e300, 1e300})))
	require.ErrorIs(t, matrix.ValidateFinite(nil), matrix.ErrNilMatrix)
}

func TestValidateSymmetric(t *testing.T) {
	near := NewFilledDense(t, 2, 2, []float64{1, 0.5, 0.5 + 1e-10, 1})

	require.NoError(t, matrix.ValidateSymmetric(near, 1e-9))
	require.ErrorIs(t, matrix.ValidateSymmetric(near, 1e-12), matrix.ErrAsymmetry)
	// A negative tolerance is read as its magnitude.
	require.NoError(t, matrix.ValidateSymmetric(hide{near}, -1e-9))

	require.NoError(t, matrix.ValidateSymmetric(MustDense(t, 1, 1), 0))
	require.ErrorIs(t, matrix.ValidateSymmetric(MustDense(t, 2, 3), 0), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSymmetric(near, math.Inf(1)), matrix.ErrNaNInf)
}
