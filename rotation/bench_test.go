// SPDX-License-Identifier: MIT

package rotation_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvfactor/matrix"
	"github.com/katalvlaran/lvfactor/rotation"
)

// randomLoadings returns an n×m matrix with entries in [-1, 1) from a fixed seed.
func randomLoadings(b *testing.B, n, m int, seed int64) *matrix.Dense {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, m)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*2 - 1
		}
	}

	return mustRows(b, rows)
}

func benchmarkRotate(b *testing.B, n, m int) {
	loadings := randomLoadings(b, n, m, 42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rotation.Rotate(loadings, rotation.Varimax{}, rotation.DefaultMaxIterations); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRotate_20x3(b *testing.B)  { benchmarkRotate(b, 20, 3) }
func BenchmarkRotate_100x6(b *testing.B) { benchmarkRotate(b, 100, 6) }
func BenchmarkRotate_500x12(b *testing.B) {
	benchmarkRotate(b, 500, 12)
}

func BenchmarkRotateAll_100x6(b *testing.B) {
	loadings := randomLoadings(b, 100, 6, 7)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rotation.RotateKinds(loadings, rotation.Kinds(), rotation.DefaultMaxIterations); err != nil {
			b.Fatal(err)
		}
	}
}
