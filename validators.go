// SPDX-License-Identifier: MIT
// Package prox: construction-time precondition checks, centralized.
// Every constructor funnels its parameters through these validators so the
// accepted domain is defined in exactly one place. Validators return the
// sentinels from errors.go; they never panic.

package prox

import "math"

// validateLambda checks that a regularization weight is a usable
// non-negative real scalar.
//
// Policy:
//   - NaN        → ErrNaNParameter (would poison every later call).
//   - negative   → ErrNegativeLambda.
//   - +Inf       → accepted: an infinite weight is a legal (if extreme)
//     parameterization that shrinks everything to zero.
//
// Complexity: O(1).
func validateLambda(lambda float64) error {
	if math.IsNaN(lambda) {
		return ErrNaNParameter
	}
	if lambda < 0 {
		return ErrNegativeLambda
	}

	return nil
}

// validateBounds checks that [lower, upper] is a non-empty interval with
// usable endpoints. Infinite endpoints are legal (a half-open clamp); NaN
// endpoints are not.
//
// Complexity: O(1).
func validateBounds(lower, upper float64) error {
	if math.IsNaN(lower) || math.IsNaN(upper) {
		return ErrNaNParameter
	}
	if lower > upper {
		return ErrBoundsOrder
	}

	return nil
}

// validateTransform enforces the L1 unitarity precondition: a supplied
// transform must self-report the Unitary property. A nil transform is valid
// (the transform is optional).
//
// The check happens here, at construction, and never at call time — a
// failed construction is the package's only error path.
//
// Complexity: O(p) in the number of reported properties.
func validateTransform(t LinearMap) error {
	if t == nil {
		return nil
	}
	if !hasProperty(t, Unitary) {
		return ErrNonUnitaryTransform
	}

	return nil
}
