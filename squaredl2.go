// SPDX-License-Identifier: MIT
// Package prox: squared-L2 regularizer (ridge shrinkage).

package prox

// SquaredL2Regularizer is the proximal operator of the squared L2 penalty,
//
//	argmin_x ½‖x − v‖₂² + λ‖x‖₂²,
//
// solved in closed form by uniform elementwise division:
//
//	out[i] = v[i] / (1 + 2λ).
//
// No branching, no reductions — the simplest variant in the package.
type SquaredL2Regularizer struct {
	lambda float64
}

// NewSquaredL2 constructs a SquaredL2Regularizer with weight lambda ≥ 0.
//
// Errors: ErrNegativeLambda / ErrNaNParameter on an unusable lambda.
func NewSquaredL2(lambda float64) (*SquaredL2Regularizer, error) {
	if err := validateLambda(lambda); err != nil {
		return nil, err
	}

	return &SquaredL2Regularizer{lambda: lambda}, nil
}

// Lambda returns the construction-time weight.
func (p *SquaredL2Regularizer) Lambda() float64 { return p.lambda }

// Apply divides every element by 1 + 2λ. The input is never mutated.
//
// Complexity: O(n). One fresh allocation.
func (p *SquaredL2Regularizer) Apply(v []float64) []float64 {
	den := 1 + 2*p.lambda // hoisted; exactly 1 when λ = 0

	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x / den
	}

	return out
}

// ApplyComplex dispatches through the shared magnitude/phase rule.
func (p *SquaredL2Regularizer) ApplyComplex(v []complex128) []complex128 {
	return evalComplex(p.Apply, v)
}

var _ Operator = (*SquaredL2Regularizer)(nil)
