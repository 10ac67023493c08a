// SPDX-License-Identifier: MIT

package prox_test

import (
	"testing"

	"github.com/katalvlaran/prox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestL1_SoftThresholdExactness pins the scalar closed form: zero inside
// the threshold, shrink by exactly Lambda outside.
func TestL1_SoftThresholdExactness(t *testing.T) {
	op, err := prox.NewL1(2)
	require.NoError(t, err)

	got := op.Apply([]float64{5, -5, 1, 2, -2, 0})
	assert.Equal(t, []float64{3, -3, 0, 0, 0, 0}, got,
		"soft threshold: |v| ≤ λ collapses to 0, otherwise shrink by λ toward 0")
}

// TestL1_ZeroLambdaIdentity verifies that λ = 0 returns the input values
// unchanged.
func TestL1_ZeroLambdaIdentity(t *testing.T) {
	op, err := prox.NewL1(0)
	require.NoError(t, err)

	v := []float64{-1.5, 0, 2.25, 1e-12}
	assert.Equal(t, v, op.Apply(v), "λ=0 must be the identity")
}

// TestL1_InputNotMutated verifies the caller-ownership guarantee: the input
// array is left untouched and the output is a fresh allocation.
func TestL1_InputNotMutated(t *testing.T) {
	op, err := prox.NewL1(1)
	require.NoError(t, err)

	v := []float64{3, -3, 0.5}
	orig := []float64{3, -3, 0.5}

	got := op.Apply(v)
	assert.Equal(t, orig, v, "input must never be mutated")

	got[0] = 99
	assert.Equal(t, orig, v, "output must not alias the input")
}

// TestL1_IdentityTransform verifies that a unitary identity transform
// leaves the result identical to the transform-free operator.
func TestL1_IdentityTransform(t *testing.T) {
	plain, err := prox.NewL1(1.5)
	require.NoError(t, err)
	wrapped, err := prox.NewL1(1.5, prox.WithTransform(prox.Identity{}))
	require.NoError(t, err)

	v := []float64{4, -0.5, -9, 1.5}
	assert.Equal(t, plain.Apply(v), wrapped.Apply(v),
		"the identity transform must not change the soft-threshold result")
}

// TestL1_TransformAppliedBeforeThreshold verifies the documented order:
// the transform runs on the array first, thresholding second, exactly once
// per call.
func TestL1_TransformAppliedBeforeThreshold(t *testing.T) {
	m := &countingMap{props: []prox.Property{prox.Unitary}}
	op, err := prox.NewL1(2, prox.WithTransform(m))
	require.NoError(t, err)

	got := op.Apply([]float64{5, 1})
	assert.Equal(t, []float64{3, 0}, got, "threshold applies to the transformed array")
	assert.Equal(t, 1, m.applyCalls, "the transform must run exactly once per Apply")
}

// TestL1_Accessors verifies the read-only parameter surface.
func TestL1_Accessors(t *testing.T) {
	op, err := prox.NewL1(0.25)
	require.NoError(t, err)

	assert.Equal(t, 0.25, op.Lambda())
	assert.Nil(t, op.Transform())
}
