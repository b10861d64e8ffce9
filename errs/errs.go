// Package errs holds the error taxonomy shared by field, curve and ecdsa.
//
// Three kinds, matching the failure modes those packages can produce:
// a precondition a caller violated, a state that should be unreachable
// given honest inputs, and an arithmetic operation (inverse of zero)
// that has no defined result.
package errs

import "errors"

var (
	// ErrPreconditionViolated marks an operand out of its required
	// range, a point that fails the on-curve check, or equal points
	// passed to Curve.Add.
	ErrPreconditionViolated = errors.New("precondition violated")

	// ErrInvalidState marks a degenerate intermediate result that
	// honest ECDSA inputs should never produce: k*A = Identity during
	// Sign. Verify reports u1*A + u2*B = Identity as false, not with
	// this error.
	ErrInvalidState = errors.New("invalid state")

	// ErrArithmeticFailure marks an undefined arithmetic result, i.e.
	// the modular inverse of zero.
	ErrArithmeticFailure = errors.New("arithmetic failure")
)
