// Package prox provides closed-form proximal operators over real and
// complex numeric arrays, the elementary building blocks of splitting
// algorithms such as proximal gradient and ADMM.
//
// 🚀 What is a proximal operator?
//
//	For a convex penalty f, the proximal operator of f maps a point v to
//	the solution of a small regularized least-squares subproblem:
//
//	    prox_f(v) = argmin_x ½‖x − v‖₂² + f(x)
//
//	Splitting algorithms call prox_f once per iteration, so each operator
//	here is a constant-time-per-element closed form — no inner iteration,
//	no root finding.
//
// ✨ Operators provided:
//   - L1Regularizer       — soft-thresholding, prox of λ‖T·‖₁
//     (optional unitary transform T)
//   - L2Regularizer       — block shrinkage, prox of λ‖·‖₂
//     (one scale factor for the whole array)
//   - SquaredL2Regularizer — ridge shrinkage, prox of λ‖·‖₂²
//   - BoxConstraint       — interval projection onto [lower, upper]
//
// Complex inputs:
//
//	Every operator accepts complex arrays through ApplyComplex. A complex
//	element is split into magnitude and phase; the real-valued closed form
//	runs on the magnitude, and the original phase is multiplied back:
//
//	    ApplyComplex(v)[i] = phase(v[i]) · Apply(|v|)[i]
//
//	The phase is reconstructed as cos(θ) + i·sin(θ) with θ = atan(Im/Re),
//	reproducing the reference formulation bit-for-bit, including its
//	degenerate branch at Re = 0 (±π/2 phase for Im ≠ 0, NaN for 0+0i).
//	See the phase function documentation for the full policy.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/prox"
//
//	op, err := prox.NewL1(0.1)
//	if err != nil {
//	  // handle ErrInvalidParameter
//	}
//	x := op.Apply(v)          // v untouched, x freshly allocated
//	z := op.ApplyComplex(w)   // magnitude/phase split happens here
//
// Guarantees:
//
//   - Operators are immutable after construction and never retain or
//     mutate caller arrays; concurrent Apply calls are always safe.
//   - The only failure mode is a construction-time precondition violation
//     (sentinels in errors.go, matched via errors.Is). Per-call
//     computation is total.
//
// Performance: every operator is a single O(n) pass; L2 adds one O(n)
// norm reduction. No hidden allocations beyond the output slice.
package prox
