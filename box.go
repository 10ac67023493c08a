// SPDX-License-Identifier: MIT
// Package prox: box constraint (interval projection).

package prox

// BoxConstraint is the proximal operator of the indicator of the interval
// [lower, upper], i.e. Euclidean projection onto the box:
//
//	argmin_{x, lower ≤ x ≤ upper} ½‖x − v‖₂²  ⇒  out[i] = clamp(v[i]).
//
// Lambda is accepted for constructor uniformity with the other variants but
// does not appear in the formula — projection onto a fixed set is invariant
// to the regularization weight. It is validated and stored, nothing more.
type BoxConstraint struct {
	lambda float64 // accepted-but-unused; see type comment
	lower  float64
	upper  float64
}

// NewBox constructs a BoxConstraint projecting onto [lower, upper].
//
// Errors:
//   - ErrNegativeLambda / ErrNaNParameter on an unusable lambda.
//   - ErrNaNParameter when either bound is NaN.
//   - ErrBoundsOrder when lower > upper.
//
// Infinite bounds are legal and give a half-open clamp.
func NewBox(lambda, lower, upper float64) (*BoxConstraint, error) {
	if err := validateLambda(lambda); err != nil {
		return nil, err
	}
	if err := validateBounds(lower, upper); err != nil {
		return nil, err
	}

	return &BoxConstraint{lambda: lambda, lower: lower, upper: upper}, nil
}

// Lambda returns the stored (unused) regularization weight.
func (p *BoxConstraint) Lambda() float64 { return p.lambda }

// Bounds returns the interval endpoints.
func (p *BoxConstraint) Bounds() (lower, upper float64) { return p.lower, p.upper }

// Apply clamps every element into [lower, upper]. The input is never
// mutated.
//
// Complexity: O(n). One fresh allocation.
func (p *BoxConstraint) Apply(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		if x < p.lower {
			x = p.lower
		} else if x > p.upper {
			x = p.upper
		}
		out[i] = x
	}

	return out
}

// ApplyComplex dispatches through the shared magnitude/phase rule: the
// magnitudes are clamped into the interval and the phase is restored.
func (p *BoxConstraint) ApplyComplex(v []complex128) []complex128 {
	return evalComplex(p.Apply, v)
}

var _ Operator = (*BoxConstraint)(nil)
