// SPDX-License-Identifier: MIT
// Package prox: functional configuration for operator constructors.
// This file defines:
//   - Option / options (functional options with internal state),
//   - WithTransform constructor,
//   - gatherOptions helper (internal) applying setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: validation lives in the constructors (NewL1 and
//     friends return sentinel errors); setters stay pure.
//   - Reusability: options fields are unexported; public entry points
//     consume ...Option.

package prox

// Option mutates internal options. Safe to apply repeatedly (last-writer-wins).
// Setters are pure; all validation happens in the operator constructors so
// that failures surface as sentinel errors, not panics.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// Intentionally unexported to prevent external mutation.
type options struct {
	transform LinearMap // optional unitary map for L1; nil means none
}

// WithTransform attaches an optional linear transform to an L1 operator.
//
// Behavior highlights:
//   - The transform is applied to the magnitude array before thresholding.
//   - NewL1 requires the map to self-report Unitary and fails construction
//     with ErrNonUnitaryTransform otherwise; the setter itself never checks.
//
// Inputs:
//   - t: a LinearMap from the caller's linear-algebra layer; nil clears.
//
// Returns:
//   - Option: functional setter.
//
// Complexity: O(1).
//
// AI-Hints:
//   - Pass FFT-like or permutation maps here; anything norm-preserving.
//   - Only NewL1 consumes this option; other constructors ignore it.
func WithTransform(t LinearMap) Option {
	return func(o *options) { o.transform = t }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Canonical internal entry point; constructors never default fields ad hoc.
//
// Complexity: O(k) for k setters.
func gatherOptions(user ...Option) options {
	var o options // zero value is the documented default: no transform
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
