// SPDX-License-Identifier: MIT
// Package prox: shared complex dispatch.
// A complex element is processed as magnitude times phase: the variant's
// real-valued closed form runs on the elementwise magnitudes, and the
// original phase is multiplied back in. Every operator's ApplyComplex is a
// one-line delegation to evalComplex with its own Apply as the magnitude
// solver, so the dispatch rule lives in exactly one place.

package prox

import "math"

// phase reconstructs the unit-magnitude complex direction of c as
// cos(θ) + i·sin(θ) with θ = atan(Im/Re).
//
// This deliberately mirrors the reference formulation, which avoids the
// native angle/exp primitives, rather than using atan2 or c/|c|. The two
// agree on the right half-plane (Re > 0); elsewhere the policy is:
//
//   - Re = 0, Im ≠ 0: Im/Re is ±Inf, atan(±Inf) = ±π/2, so the phase is
//     ±i — a defined value, following floating-point division semantics.
//   - Re = 0, Im = 0: Im/Re is NaN and the phase is NaN+NaNi. Documented
//     behavior, not an error; callers feeding exact zeros through the
//     complex path get NaN back.
//   - Re < 0: atan (unlike atan2) folds the angle into (−π/2, π/2), off by
//     π from the true angle, so the reconstructed direction is the negation
//     of c/|c|. Kept for numeric parity with the reference.
func phase(c complex128) complex128 {
	theta := math.Atan(imag(c) / real(c))

	return complex(math.Cos(theta), math.Sin(theta))
}

// magnitudes returns the elementwise magnitudes |v| as a real array.
// The result is always non-negative, which is what makes the real-valued
// closed forms applicable to complex inputs at all.
//
// Complexity: O(n). One fresh allocation.
func magnitudes(v []complex128) []float64 {
	out := make([]float64, len(v))
	for i, c := range v {
		out[i] = math.Hypot(real(c), imag(c))
	}

	return out
}

// evalComplex is the complex side of the Operator contract, shared by every
// variant: out[i] = phase(v[i]) · apply(|v|)[i].
//
// apply is the variant's real-valued magnitude solver (its Apply method).
// The solver sees one non-negative real array of the same length as v; it
// runs exactly once per call, so transform-bearing variants (L1) apply
// their transform to the magnitude array, matching the real path.
//
// Complexity: O(n) plus one call to apply. Two fresh allocations.
func evalComplex(apply func([]float64) []float64, v []complex128) []complex128 {
	m := apply(magnitudes(v))

	out := make([]complex128, len(v))
	for i, c := range v {
		out[i] = phase(c) * complex(m[i], 0)
	}

	return out
}
