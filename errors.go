// SPDX-License-Identifier: MIT
// Package prox: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the prox
// package. Constructors MUST return these sentinels and tests MUST check them
// via errors.Is. Operators never panic on user-triggered error conditions;
// panics are reserved for programmer errors in private helpers (if any).

package prox

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "prox: ..." for consistency and to allow
// easy grepping across logs. The specific sentinels below wrap
// ErrInvalidParameter, so errors.Is matches BOTH the specific sentinel and
// the class, e.g.
//
//	_, err := prox.NewL2(-1)
//	errors.Is(err, prox.ErrNegativeLambda)   // true
//	errors.Is(err, prox.ErrInvalidParameter) // true
//
// There is no call-time error path: evaluation is total by design, and the
// documented Re(v)=0 phase degeneracy yields NaN values, not errors.

// ErrInvalidParameter is the class sentinel for every construction-time
// precondition violation. All specific parameter errors wrap it.
var ErrInvalidParameter = errors.New("prox: invalid parameter")

var (
	// ErrNegativeLambda is returned when a regularization weight is
	// negative. Lambda must be a non-negative real scalar for every
	// operator variant.
	ErrNegativeLambda = fmt.Errorf("%w: Lambda must be non-negative", ErrInvalidParameter)

	// ErrNaNParameter is returned when a scalar parameter (Lambda or an
	// interval bound) is NaN. NaN parameters would silently poison every
	// subsequent call, so they are rejected up front.
	ErrNaNParameter = fmt.Errorf("%w: parameter is NaN", ErrInvalidParameter)

	// ErrBoundsOrder is returned by NewBox when lower > upper. An empty
	// interval has no projection.
	ErrBoundsOrder = fmt.Errorf("%w: lower bound exceeds upper bound", ErrInvalidParameter)

	// ErrNonUnitaryTransform is returned by NewL1 when the supplied
	// LinearMap does not self-report the Unitary property. Soft-thresholding
	// commutes with the transform only when the transform preserves norms,
	// so the precondition is enforced at construction, before any Apply.
	ErrNonUnitaryTransform = fmt.Errorf("%w: transform must report the Unitary property", ErrInvalidParameter)
)
