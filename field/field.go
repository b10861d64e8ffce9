// Package field implements stateless arithmetic in a prime field F_p.
//
// Every operation takes the modulus p explicitly rather than binding it
// to a receiver — there's no stored state here, just functions over
// big.Int operands that are assumed to already lie in [0, p). Callers
// further up the stack (curve, ecdsa) are responsible for keeping their
// own values inside that range; this package panics if they don't, the
// same posture as the reference it's ported from.
package field

import (
	"fmt"
	"math/big"

	"github.com/Pshypher/ec-cryptography/errs"
)

// Add returns (c + d) mod p.
func Add(c, d, p *big.Int) *big.Int {
	mustInRange(c, p, "c")
	mustInRange(d, p, "d")

	r := new(big.Int).Add(c, d)
	return r.Mod(r, p)
}

// Sub returns (c - d) mod p, computed as Add(c, Neg(d, p), p).
func Sub(c, d, p *big.Int) *big.Int {
	mustInRange(c, p, "c")
	mustInRange(d, p, "d")

	return Add(c, Neg(d, p), p)
}

// Mul returns (c * d) mod p.
func Mul(c, d, p *big.Int) *big.Int {
	mustInRange(c, p, "c")
	mustInRange(d, p, "d")

	r := new(big.Int).Mul(c, d)
	return r.Mod(r, p)
}

// Neg returns the additive inverse of c modulo p, i.e. p - c reduced
// back into [0, p). The naive p - 0 = p would break the range
// invariant every other operation here depends on, so Neg(0, p) = 0.
func Neg(c, p *big.Int) *big.Int {
	mustInRange(c, p, "c")

	if c.Sign() == 0 {
		return big.NewInt(0)
	}
	r := new(big.Int).Sub(p, c)
	return r.Mod(r, p)
}

// Inv returns the multiplicative inverse of c modulo p via Fermat's
// little theorem, c^(p-2) mod p. Valid only when p is prime; the
// inverse of zero is undefined and reported as ErrArithmeticFailure
// rather than silently returning zero (which is what Exp would compute).
func Inv(c, p *big.Int) *big.Int {
	mustInRange(c, p, "c")
	if c.Sign() == 0 {
		panic(fmt.Errorf("%w: modular inverse of 0 mod %s is undefined", errs.ErrArithmeticFailure, p))
	}

	exp := new(big.Int).Sub(p, big.NewInt(2))
	return new(big.Int).Exp(c, exp, p)
}

// Div returns Mul(c, Inv(d, p), p).
func Div(c, d, p *big.Int) *big.Int {
	mustInRange(c, p, "c")
	mustInRange(d, p, "d")

	return Mul(c, Inv(d, p), p)
}

func mustInRange(c, p *big.Int, name string) {
	if c.Sign() < 0 || c.Cmp(p) >= 0 {
		panic(fmt.Errorf("%w: %s = %s is not in [0, %s)", errs.ErrPreconditionViolated, name, c, p))
	}
}
