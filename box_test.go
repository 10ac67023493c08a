// SPDX-License-Identifier: MIT

package prox_test

import (
	"testing"

	"github.com/katalvlaran/prox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBox_ClampExactness pins the elementwise projection onto [0, 1].
func TestBox_ClampExactness(t *testing.T) {
	op, err := prox.NewBox(0, 0, 1)
	require.NoError(t, err)

	got := op.Apply([]float64{-1, 0.5, 2})
	assert.Equal(t, []float64{0, 0.5, 1}, got, "clamp into [0,1]")
}

// TestBox_LambdaIndependence verifies that the stored regularization weight
// never influences the projection — it is a vestigial constructor parameter
// kept for uniformity across variants.
func TestBox_LambdaIndependence(t *testing.T) {
	v := []float64{-3, 0.25, 9}

	for _, lambda := range []float64{0, 0.5, 100} {
		op, err := prox.NewBox(lambda, -1, 1)
		require.NoError(t, err)
		assert.Equal(t, []float64{-1, 0.25, 1}, op.Apply(v),
			"projection must be identical for every Lambda")
		assert.Equal(t, lambda, op.Lambda(), "the weight is stored as supplied")
	}
}

// TestBox_BoundsInclusive verifies that values already inside (or exactly
// on) the interval pass through unchanged.
func TestBox_BoundsInclusive(t *testing.T) {
	op, err := prox.NewBox(0, -2, 2)
	require.NoError(t, err)

	v := []float64{-2, -1.999, 0, 2}
	assert.Equal(t, v, op.Apply(v), "endpoints are part of the interval")
}

// TestBox_DegenerateInterval verifies the lower == upper edge: every
// element projects to the single feasible point.
func TestBox_DegenerateInterval(t *testing.T) {
	op, err := prox.NewBox(0, 1.5, 1.5)
	require.NoError(t, err)

	assert.Equal(t, []float64{1.5, 1.5, 1.5}, op.Apply([]float64{-4, 1.5, 100}),
		"a point interval collapses everything to that point")
}

// TestBox_Accessors verifies the read-only parameter surface.
func TestBox_Accessors(t *testing.T) {
	op, err := prox.NewBox(3, -1, 4)
	require.NoError(t, err)

	lower, upper := op.Bounds()
	assert.Equal(t, -1.0, lower)
	assert.Equal(t, 4.0, upper)
	assert.Equal(t, 3.0, op.Lambda())
}

// TestBox_InputNotMutated verifies the caller-ownership guarantee.
func TestBox_InputNotMutated(t *testing.T) {
	op, err := prox.NewBox(0, 0, 1)
	require.NoError(t, err)

	v := []float64{-5, 5}
	op.Apply(v)
	assert.Equal(t, []float64{-5, 5}, v, "input must never be mutated")
}
