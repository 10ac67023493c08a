// SPDX-License-Identifier: MIT
// Package prox: L2 regularizer (block shrinkage).

package prox

import "math"

// L2Regularizer is the proximal operator of the (unsquared) L2 penalty,
//
//	argmin_x ½‖x − v‖₂² + λ‖x‖₂,
//
// solved in closed form by shrinking the whole array toward zero with a
// single shared scale factor:
//
//	scale = 1 − λ / max(λ, ‖v‖₂),   out = scale · v.
//
// This is block (vector) shrinkage, not elementwise: the max in the
// denominator clamps the scale at 0 when ‖v‖₂ ≤ λ, so small arrays collapse
// exactly to zero instead of flipping sign.
//
// Closed form from Beck, "First-Order Methods in Optimization", ch. 6.
type L2Regularizer struct {
	lambda float64
}

// NewL2 constructs an L2Regularizer with weight lambda ≥ 0.
//
// Errors: ErrNegativeLambda / ErrNaNParameter on an unusable lambda.
func NewL2(lambda float64) (*L2Regularizer, error) {
	if err := validateLambda(lambda); err != nil {
		return nil, err
	}

	return &L2Regularizer{lambda: lambda}, nil
}

// Lambda returns the construction-time weight.
func (p *L2Regularizer) Lambda() float64 { return p.lambda }

// Apply scales v by 1 − λ/max(λ, ‖v‖₂). One reduction pass for the norm,
// one pass for the scaling; the input is never mutated.
//
// Edge cases: λ = 0 and ‖v‖₂ = 0 leaves the (all-zero) array unchanged —
// the denominator guard keeps the scale at 0 rather than dividing by zero.
//
// Complexity: O(n). One fresh allocation.
func (p *L2Regularizer) Apply(v []float64) []float64 {
	var sq float64
	for _, x := range v {
		sq += x * x
	}
	norm := math.Sqrt(sq)

	scale := 0.0
	if den := math.Max(p.lambda, norm); den > 0 {
		scale = 1 - p.lambda/den
	}

	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = scale * x
	}

	return out
}

// ApplyComplex dispatches through the shared magnitude/phase rule. The norm
// of the magnitude array equals the norm of v itself, so the complex path
// shrinks by the same factor the real path would.
func (p *L2Regularizer) ApplyComplex(v []complex128) []complex128 {
	return evalComplex(p.Apply, v)
}

var _ Operator = (*L2Regularizer)(nil)
