// Package curve implements the group law of a short-Weierstrass
// elliptic curve y² = x³ + ax + b over a prime field F_p: point
// addition, doubling, scalar multiplication by left-to-right
// double-and-add, and on-curve membership.
//
// Curve is an immutable value — a,b,p never change after New returns —
// so a *Curve may be freely shared across goroutines.
package curve

import (
	"fmt"
	"math/big"

	"github.com/davecgh/go-spew/spew"

	"github.com/Pshypher/ec-cryptography/errs"
	"github.com/Pshypher/ec-cryptography/field"
)

// Curve holds the parameters (a, b, p) of y² = x³ + ax + b mod p. The
// discriminant 4a³ + 27b² ≢ 0 (mod p), which rules out singular curves,
// is assumed but not checked, matching the reference.
type Curve struct {
	a, b, p *big.Int
}

// New constructs a Curve with 0 <= a, b < p. It panics if that range
// invariant is violated; these are curve parameters a caller hard-codes
// or parses once at startup, not attacker-controlled input.
func New(a, b, p *big.Int) *Curve {
	if a.Sign() < 0 || a.Cmp(p) >= 0 {
		panic(fmt.Errorf("%w: a = %s is not in [0, %s)", errs.ErrPreconditionViolated, a, p))
	}
	if b.Sign() < 0 || b.Cmp(p) >= 0 {
		panic(fmt.Errorf("%w: b = %s is not in [0, %s)", errs.ErrPreconditionViolated, b, p))
	}
	return &Curve{a: new(big.Int).Set(a), b: new(big.Int).Set(b), p: new(big.Int).Set(p)}
}

// A returns the curve's a coefficient.
func (c *Curve) A() *big.Int { return new(big.Int).Set(c.a) }

// B returns the curve's b coefficient.
func (c *Curve) B() *big.Int { return new(big.Int).Set(c.b) }

// P returns the curve's prime modulus.
func (c *Curve) P() *big.Int { return new(big.Int).Set(c.p) }

// IsOnCurve reports whether v satisfies y² ≡ x³ + ax + b (mod p).
// Identity is vacuously on every curve.
func (c *Curve) IsOnCurve(v Point) bool {
	if v.identity {
		return true
	}
	if v.x.Sign() < 0 || v.x.Cmp(c.p) >= 0 || v.y.Sign() < 0 || v.y.Cmp(c.p) >= 0 {
		return false
	}

	ySquared := field.Mul(v.y, v.y, c.p)
	xCubed := field.Mul(field.Mul(v.x, v.x, c.p), v.x, c.p)
	ax := field.Mul(c.a, v.x, c.p)
	rhs := field.Add(xCubed, field.Add(ax, c.b, c.p), c.p)
	return ySquared.Cmp(rhs) == 0
}

func (c *Curve) mustBeOnCurve(v Point, name string) {
	if !c.IsOnCurve(v) {
		panic(fmt.Errorf("%w: %s = %s is not on curve %s", errs.ErrPreconditionViolated, name, v, spew.Sdump(c)))
	}
}

// Add returns the sum of two on-curve points under the chord-and-tangent
// group law.
//
//   - Identity is the neutral element: Add(Identity, q) = q and
//     Add(p, Identity) = p.
//   - p + (-p) = Identity, detected as equal x coordinates with
//     y-coordinates summing to 0 mod p.
//   - Add(p, p) (the same point passed twice) is a precondition
//     violation; route to Double instead. ScalarMul never does this.
func (c *Curve) Add(p, q Point) Point {
	c.mustBeOnCurve(p, "p")
	c.mustBeOnCurve(q, "q")

	if p.identity {
		return q
	}
	if q.identity {
		return p
	}
	if p.x.Cmp(q.x) == 0 && field.Add(p.y, q.y, c.p).Sign() == 0 {
		// q = -p, including the p == q case where y = 0 (a point of
		// order 2 is its own inverse): checked ahead of the
		// equal-points rejection below, since that's a legitimate
		// cancellation, not an undefined operation.
		return Identity
	}
	if p.Equal(q) {
		panic(fmt.Errorf("%w: Add(%s, %s): points must not be equal, use Double", errs.ErrPreconditionViolated, p, q))
	}

	// s = (y2 - y1) / (x2 - x1) mod p
	s := field.Div(field.Sub(q.y, p.y, c.p), field.Sub(q.x, p.x, c.p), c.p)
	return c.thirdPoint(p.x, p.y, q.x, s)
}

// Double returns p + p.
//
//   - Double(Identity) = Identity.
//   - A point with y = 0 has a vertical tangent; Double returns
//     Identity for it.
func (c *Curve) Double(p Point) Point {
	c.mustBeOnCurve(p, "p")

	if p.identity {
		return Identity
	}
	if p.y.Sign() == 0 {
		return Identity
	}

	// s = (3x² + a) / (2y) mod p
	threeXSquared := field.Mul(big.NewInt(3), field.Mul(p.x, p.x, c.p), c.p)
	numerator := field.Add(threeXSquared, c.a, c.p)
	denominator := field.Mul(big.NewInt(2), p.y, c.p)
	s := field.Div(numerator, denominator, c.p)
	return c.thirdPoint(p.x, p.y, p.x, s)
}

// thirdPoint computes the third intersection point of the line through
// (x1, y1) and (x2, _) with slope s: x3 = s² - x1 - x2, y3 = s(x1 - x3) - y1.
func (c *Curve) thirdPoint(x1, y1, x2, s *big.Int) Point {
	sSquared := field.Mul(s, s, c.p)
	x3 := field.Sub(field.Sub(sSquared, x1, c.p), x2, c.p)
	y3 := field.Sub(field.Mul(s, field.Sub(x1, x3, c.p), c.p), y1, c.p)
	return NewPoint(x3, y3)
}

// ScalarMul returns d*p using left-to-right double-and-add, seeded at
// the top set bit: T := p, then for i from bitlen(d)-2 down to 0,
// T := Double(T) and, if bit i of d is 1, T := Add(T, p).
//
// The doubling-and-add loop has no representation for d = 0 (there is
// no leading bit to seed T with); ScalarMul special-cases it to Identity,
// consistent with 0*p being the group law's neutral element. d < 0 is a
// precondition violation, since scalars are always treated as
// non-negative integers in this library.
func (c *Curve) ScalarMul(p Point, d *big.Int) Point {
	c.mustBeOnCurve(p, "p")
	if d.Sign() < 0 {
		panic(fmt.Errorf("%w: ScalarMul scalar must be >= 0, got %s", errs.ErrPreconditionViolated, d))
	}
	if d.Sign() == 0 {
		return Identity
	}

	t := p
	for i := d.BitLen() - 2; i >= 0; i-- {
		t = c.Double(t)
		if d.Bit(i) == 1 {
			t = c.Add(t, p)
		}
	}
	return t
}
