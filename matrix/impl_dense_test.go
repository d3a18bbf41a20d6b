// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfactor/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, -1)                      // attempt to create with negative columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsColsShape verifies the dimension accessors.
func TestRowsColsShape(t *testing.T) {
	m := MustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())

	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
}

func TestNewDenseFromRows(t *testing.T) {
	src := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m, err := matrix.NewDenseFromRows(src)
	require.NoError(t, err)
	require.Equal(t, src, m.ToRows())

	// The input is copied.
	src[0][0] = 99
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestNewDenseFromRows_Errors(t *testing.T) {
	_, err := matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDenseFromRows([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.NewDenseFromRows([][]float64{{math.Inf(-1), 0}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestNewDenseFromRows_NoValidate keeps non-finite values and carries the
// relaxed policy into later writes and clones.
func TestNewDenseFromRows_NoValidate(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, math.NaN()}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsNaN(MustAt(t, m, 0, 1)))

	require.NoError(t, m.Set(0, 0, math.Inf(1)))
	require.NoError(t, m.Clone().Set(0, 0, math.NaN()))
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)                         // negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                           // column index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, 1.23)                       // row index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(0, -1, 4.56)                      // negative column index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.89))
	require.Equal(t, 7.89, MustAt(t, m, 1, 2))

	err := m.Set(0, 0, math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Equal(t, 0.0, MustAt(t, m, 0, 0)) // rejected write leaves the cell untouched
}

func TestCol(t *testing.T) {
	m := NewFilledDense(t, 3, 2, []float64{1, 2, 3, 4, 5, 6})

	got, err := m.Col(1, nil)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4, 6}, got)

	// A large enough buffer is reused.
	buf := make([]float64, 0, 8)
	got, err = m.Col(0, buf)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3, 5}, got)
	require.Same(t, &buf[:1][0], &got[0])

	_, err = m.Col(2, nil)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1, nil)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestSetCol(t *testing.T) {
	m := NewFilledDense(t, 3, 2, []float64{1, 2, 3, 4, 5, 6})

	require.NoError(t, m.SetCol(0, []float64{-1, -3, -5}))
	require.Equal(t, [][]float64{{-1, 2}, {-3, 4}, {-5, 6}}, m.ToRows())

	require.ErrorIs(t, m.SetCol(2, []float64{0, 0, 0}), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetCol(0, []float64{0, 0}), matrix.ErrDimensionMismatch)

	// All-or-nothing: a NaN in the last slot leaves the whole column as it was.
	err := m.SetCol(1, []float64{7, 8, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	col, err := m.Col(1, nil)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4, 6}, col)
}

func TestToRows_IsCopy(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	rows := m.ToRows()
	rows[1][1] = 40
	require.Equal(t, 4.0, MustAt(t, m, 1, 1))
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 0, 0, 2})

	clone := m.Clone()
	require.IsType(t, &matrix.Dense{}, clone)
	require.NoError(t, clone.Set(0, 0, 3.0)) // modify the clone, but not the original

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0))
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4.5})
	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}

func TestInduced(t *testing.T) {
	m := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	sub, err := m.Induced([]int{1, 0}, []int{2, 2, 0})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{6, 6, 4}, {3, 3, 1}}, sub.ToRows())

	_, err = m.Induced(nil, []int{0})
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = m.Induced([]int{0}, []int{})
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = m.Induced([]int{2}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Induced([]int{0}, []int{-1})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDo_RowMajorAndEarlyStop(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return true
	})
	assert.Equal(t, []float64{1, 2, 3, 4}, seen)

	visits := 0
	m.Do(func(i, j int, _ float64) bool {
		visits++
		return !(i == 0 && j == 1)
	})
	assert.Equal(t, 2, visits)
}

func TestApply(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v*10 + float64(i+j) }))
	require.Equal(t, [][]float64{{10, 21}, {31, 42}}, m.ToRows())

	err := m.Apply(func(i, j int, v float64) float64 {
		if i == 1 {
			return math.Inf(1)
		}
		return 0
	})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	// Row 0 was written before the failure; row 1 was not.
	require.Equal(t, [][]float64{{0, 0}, {31, 42}}, m.ToRows())
}

func TestNewIdentity(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id.ToRows())

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestAsDense(t *testing.T) {
	d := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})

	same, err := matrix.AsDense(d)
	require.NoError(t, err)
	require.Same(t, d, same) // *Dense passes through

	copied, err := matrix.AsDense(hide{d})
	require.NoError(t, err)
	require.NotSame(t, d, copied)
	require.Equal(t, d.ToRows(), copied.ToRows())

	var nilDense *matrix.Dense
	_, err = matrix.AsDense(nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
