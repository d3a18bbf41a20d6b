// SPDX-License-Identifier: MIT

package rotation_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfactor/rotation"
)

func TestWithPrecision_PanicsOnNonsense(t *testing.T) {
	t.Parallel()
	for _, p := range []float64{0, -1e-6, math.NaN(), math.Inf(1)} {
		p := p
		assert.Panics(t, func() { _ = rotation.WithPrecision(p) }, "precision=%v", p)
	}
	assert.NotPanics(t, func() { _ = rotation.WithPrecision(1e-6) })
}

func TestWithWorkers_PanicsOnNonsense(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { _ = rotation.WithWorkers(0) })
	assert.Panics(t, func() { _ = rotation.WithWorkers(-2) })
	assert.NotPanics(t, func() { _ = rotation.WithWorkers(1) })
}

func TestWithPrecision_LooseThreshold(t *testing.T) {
	t.Parallel()
	b := reference(t)
	eng, err := rotation.NewVarimax(b, rotation.WithPrecision(1e-4))
	require.NoError(t, err)
	rotated, err := eng.Iterate(rotation.DefaultMaxIterations)
	require.NoError(t, err)

	assert.True(t, eng.Converged())
	tm := eng.ComponentTransformationMatrix()
	requireOrthogonal(t, tm, 1e-10)
	requireProduct(t, b, tm, rotated, 1e-10)
}

func TestWithPrecision_HugeThresholdSettlesFirstSweep(t *testing.T) {
	t.Parallel()
	// sin(|phi|) ≤ sin(π/4) < 1 for every pair, so a threshold of 1 settles all.
	eng, err := rotation.NewVarimax(reference(t), rotation.WithPrecision(1))
	require.NoError(t, err)
	_, err = eng.Iterate(rotation.DefaultMaxIterations)
	require.NoError(t, err)

	assert.True(t, eng.Converged())
	assert.Equal(t, 1, eng.Iterations())
	assert.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, eng.ComponentTransformationMatrix().ToRows())
}

func TestWithLogger_SweepDiagnostics(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	eng, err := rotation.NewVarimax(reference(t), rotation.WithLogger(logger))
	require.NoError(t, err)
	_, err = eng.Iterate(rotation.DefaultMaxIterations)
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, eng.Iterations(), strings.Count(out, `"message":"sweep done"`))
	assert.Contains(t, out, `"criterion":"varimax"`)
	assert.Contains(t, out, `"message":"rotation finished"`)
}

func TestWithLogger_LevelFiltered(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)

	_, err := rotation.Rotate(reference(t), rotation.Quartimax{}, rotation.DefaultMaxIterations, rotation.WithLogger(logger))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
