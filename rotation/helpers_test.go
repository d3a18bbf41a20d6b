// SPDX-License-Identifier: MIT

package rotation_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvfactor/matrix"
	"github.com/katalvlaran/lvfactor/rotation"
)

// referenceRows is a 4×3 principal-component loading matrix.
var referenceRows = [][]float64{
	{0.4320, 0.8129, 0.3872},
	{0.7950, -0.5416, 0.2565},
	{0.5944, 0.7234, -0.3441},
	{0.8945, -0.3921, -0.1863},
}

// mustRows builds a Dense from literal rows or fails the test.
func mustRows(t testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows, opts...)
	require.NoError(t, err)

	return d
}

func reference(t testing.TB) *matrix.Dense { return mustRows(t, referenceRows) }

// toGonum copies d into a gonum matrix used as an independent oracle.
func toGonum(d *matrix.Dense) *mat.Dense {
	rows := d.ToRows()
	r, c := len(rows), len(rows[0])
	flat := make([]float64, 0, r*c)
	for _, row := range rows {
		flat = append(flat, row...)
	}

	return mat.NewDense(r, c, flat)
}

// requireOrthogonal checks TᵀT = I and TTᵀ = I within tol.
func requireOrthogonal(t *testing.T, tm *matrix.Dense, tol float64) {
	t.Helper()
	g := toGonum(tm)
	n, _ := g.Dims()
	eye := mat.NewDiagDense(n, nil)
	for i := 0; i < n; i++ {
		eye.SetDiag(i, 1)
	}

	var tt, ttT mat.Dense
	tt.Mul(g.T(), g)
	ttT.Mul(g, g.T())
	require.True(t, mat.EqualApprox(&tt, eye, tol), "TᵀT != I:\n%v", mat.Formatted(&tt))
	require.True(t, mat.EqualApprox(&ttT, eye, tol), "TTᵀ != I:\n%v", mat.Formatted(&ttT))

	ok, err := matrix.IsOrthogonal(tm, matrix.WithEpsilon(tol))
	require.NoError(t, err)
	require.True(t, ok)
}

// requireProduct checks B·T == rotated within tol.
func requireProduct(t *testing.T, b, tm, rotated *matrix.Dense, tol float64) {
	t.Helper()
	var bt mat.Dense
	bt.Mul(toGonum(b), toGonum(tm))
	require.True(t, mat.EqualApprox(&bt, toGonum(rotated), tol), "B·T != rotated:\n%v", mat.Formatted(&bt))
}

// stubborn never settles: phi is always π/8.
type stubborn struct{}

func (stubborn) Name() string                           { return "stubborn" }
func (stubborn) X(_, _, _, _ float64, _, _ int) float64 { return 1 }
func (stubborn) Y(_, _, _, _ float64, _, _ int) float64 { return 0 }

// counting wraps a criterion and counts pair evaluations.
type counting struct {
	inner rotation.Criterion
	calls int
}

func (c *counting) Name() string { return c.inner.Name() }

func (c *counting) X(a, b, cc, d float64, n, m int) float64 {
	c.calls++
	return c.inner.X(a, b, cc, d, n, m)
}

func (c *counting) Y(a, b, cc, d float64, n, m int) float64 { return c.inner.Y(a, b, cc, d, n, m) }

// requireRowsClose compares two row slices entry by entry within tol.
func requireRowsClose(t *testing.T, want, got [][]float64, tol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Len(t, got[i], len(want[i]), "row %d", i)
		for j := range want[i] {
			require.InDelta(t, want[i][j], got[i][j], tol, "(%d,%d)", i, j)
		}
	}
}
