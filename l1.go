// SPDX-License-Identifier: MIT
// Package prox: L1 regularizer (soft-thresholding).

package prox

// L1Regularizer is the proximal operator of the scaled L1 penalty,
//
//	argmin_x ½‖x − v‖₂² + λ‖Tx‖₁,
//
// solved in closed form by elementwise soft-thresholding:
//
//	out[i] = sign(v[i]) · max(|v[i]| − λ, 0).
//
// T is an optional unitary transform (WithTransform); when present it is
// applied to the array before thresholding. Unitarity is enforced at
// construction via the map's self-reported properties, never at call time.
//
// Closed form from Beck, "First-Order Methods in Optimization", ch. 6.
type L1Regularizer struct {
	lambda float64
	t      LinearMap // nil when no transform was supplied
}

// NewL1 constructs an L1Regularizer with threshold lambda ≥ 0 and an
// optional unitary transform supplied via WithTransform.
//
// Errors:
//   - ErrNegativeLambda / ErrNaNParameter on an unusable lambda.
//   - ErrNonUnitaryTransform when a transform is supplied that does not
//     report the Unitary property.
//
// Complexity: O(1) plus the transform's property scan.
func NewL1(lambda float64, opts ...Option) (*L1Regularizer, error) {
	if err := validateLambda(lambda); err != nil {
		return nil, err
	}

	o := gatherOptions(opts...)
	if err := validateTransform(o.transform); err != nil {
		return nil, err
	}

	return &L1Regularizer{lambda: lambda, t: o.transform}, nil
}

// Lambda returns the construction-time threshold.
func (p *L1Regularizer) Lambda() float64 { return p.lambda }

// Transform returns the attached unitary transform, or nil.
func (p *L1Regularizer) Transform() LinearMap { return p.t }

// Apply soft-thresholds v elementwise, after running the optional transform.
// The input is never mutated; the result is freshly allocated (by the
// transform when one is present, by the thresholding loop otherwise).
//
// Complexity: O(n) plus one transform application.
func (p *L1Regularizer) Apply(v []float64) []float64 {
	if p.t != nil {
		v = p.t.Apply(v)
	}

	out := make([]float64, len(v))
	for i, x := range v {
		// Branchy shrink: predictable, and exact at the threshold.
		switch {
		case x > p.lambda:
			out[i] = x - p.lambda
		case x < -p.lambda:
			out[i] = x + p.lambda
		default:
			out[i] = 0
		}
	}

	return out
}

// ApplyComplex dispatches through the shared magnitude/phase rule.
func (p *L1Regularizer) ApplyComplex(v []complex128) []complex128 {
	return evalComplex(p.Apply, v)
}

var _ Operator = (*L1Regularizer)(nil)
