// SPDX-License-Identifier: MIT

package prox_test

import (
	"testing"

	"github.com/katalvlaran/prox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSquaredL2_Formula verifies the ridge closed form v/(1+2λ).
func TestSquaredL2_Formula(t *testing.T) {
	op, err := prox.NewSquaredL2(0.5) // 1 + 2λ = 2
	require.NoError(t, err)

	got := op.Apply([]float64{4, -2, 0})
	assert.Equal(t, []float64{2, -1, 0}, got, "every element divides by 1+2λ")
}

// TestSquaredL2_FormulaNonExactDivisor checks a divisor that is not a power
// of two, within floating tolerance.
func TestSquaredL2_FormulaNonExactDivisor(t *testing.T) {
	op, err := prox.NewSquaredL2(1) // divide by 3
	require.NoError(t, err)

	got := op.Apply([]float64{3, -7.5})
	require.Len(t, got, 2)
	assert.InDelta(t, 1.0, got[0], 1e-15)
	assert.InDelta(t, -2.5, got[1], 1e-15)
}

// TestSquaredL2_ZeroLambdaIdentity verifies that λ = 0 returns v unchanged.
func TestSquaredL2_ZeroLambdaIdentity(t *testing.T) {
	op, err := prox.NewSquaredL2(0)
	require.NoError(t, err)

	v := []float64{-1, 0, 3.75}
	assert.Equal(t, v, op.Apply(v), "dividing by exactly 1 must be the identity")
}

// TestSquaredL2_InputNotMutated verifies the caller-ownership guarantee.
func TestSquaredL2_InputNotMutated(t *testing.T) {
	op, err := prox.NewSquaredL2(2)
	require.NoError(t, err)

	v := []float64{5, -5}
	op.Apply(v)
	assert.Equal(t, []float64{5, -5}, v, "input must never be mutated")
}
