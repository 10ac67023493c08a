// SPDX-License-Identifier: MIT
// Package prox: trivial unitary LinearMap.

package prox

// Identity is the identity LinearMap. It exists as the minimal unitary
// reference implementation of the collaborator contract — handy for wiring
// an L1Regularizer where the surrounding algorithm works in an already
// sparse basis, and as a template for real transform implementations.
type Identity struct{}

// Apply returns a copy of v. Copying (rather than aliasing) keeps the
// "operators never retain caller arrays" guarantee intact even through a
// transform.
func (Identity) Apply(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}

// Properties reports Unitary (and Symmetric and Orthogonal, which the
// identity trivially satisfies).
func (Identity) Properties() []Property {
	return []Property{Unitary, Symmetric, Orthogonal}
}

var _ LinearMap = Identity{}
