// SPDX-License-Identifier: MIT
// Package prox: public contracts shared by every operator variant.

package prox

// Operator is the call contract every proximal operator implements.
//
// Apply evaluates the variant's real-valued closed form on v and returns a
// freshly allocated result of the same length; v is never mutated and never
// retained beyond the call.
//
// ApplyComplex extends the same closed form to complex elements via the
// magnitude/phase decomposition: the real solver runs on the elementwise
// magnitudes |v| and the reconstructed phase of v is multiplied back in.
// See evalComplex for the dispatch rule and its documented Re(v)=0 branch.
//
// Implementations are pure functions of (construction parameters, input):
// parameters are immutable after construction, so concurrent calls from any
// number of goroutines are safe without synchronization.
type Operator interface {
	Apply(v []float64) []float64
	ApplyComplex(v []complex128) []complex128
}

// Property names an algebraic property a LinearMap may self-report.
// The prox package only ever queries Unitary, but the set is open-ended so
// collaborating linear-map libraries can expose richer classifications
// through the same channel.
type Property uint8

const (
	// Unitary marks a norm-preserving map (inverse equals adjoint).
	// Required of any transform passed to NewL1 via WithTransform.
	Unitary Property = iota + 1

	// Symmetric marks a self-adjoint map. Not required by any operator
	// here; carried for collaborator completeness.
	Symmetric

	// Orthogonal marks a real unitary map. Maps reporting Orthogonal
	// should normally report Unitary as well; prox checks only Unitary.
	Orthogonal
)

// String returns a stable human-readable name for the property.
func (p Property) String() string {
	switch p {
	case Unitary:
		return "unitary"
	case Symmetric:
		return "symmetric"
	case Orthogonal:
		return "orthogonal"
	default:
		return "unknown"
	}
}

// LinearMap is the collaborator contract consumed by the L1 operator.
// The prox package does not implement linear-map machinery itself (beyond
// the trivial Identity); callers supply maps from their own linear-algebra
// layer. Shape or dimension mismatches inside Apply propagate from that
// layer — prox adds no checking of its own at call time.
type LinearMap interface {
	// Apply applies the map to v and returns the transformed array.
	Apply(v []float64) []float64

	// Properties reports the algebraic properties the map guarantees.
	// NewL1 requires membership of Unitary.
	Properties() []Property
}

// hasProperty reports whether want is among the properties the map
// self-reports. A nil map has no properties.
func hasProperty(m LinearMap, want Property) bool {
	if m == nil {
		return false
	}
	for _, p := range m.Properties() {
		if p == want {
			return true
		}
	}

	return false
}
