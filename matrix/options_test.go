// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfactor/matrix"
)

// TestDefaultOptions_Documented verifies that NewMatrixOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewMatrixOptions()
	require.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
}

// TestNewMatrixOptions_LastWriterWins ensures options apply in order.
func TestNewMatrixOptions_LastWriterWins(t *testing.T) {
	o := matrix.NewMatrixOptions(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.True(t, o.ValidateNaNInf())

	o = matrix.NewMatrixOptions(matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.False(t, o.ValidateNaNInf())

	o = matrix.NewMatrixOptions(matrix.WithEpsilon(1e-3), matrix.WithEpsilon(0))
	require.Zero(t, o.Epsilon())
}

// TestWithEpsilon_Panics rejects nonsense tolerances at construction time.
func TestWithEpsilon_Panics(t *testing.T) {
	for _, eps := range []float64{-1e-9, math.NaN(), math.Inf(1)} {
		require.Panics(t, func() { matrix.WithEpsilon(eps) }, "eps=%v", eps)
	}
}
