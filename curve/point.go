package curve

import "math/big"

// Point is a point of a short-Weierstrass curve: either an affine
// coordinate pair or the identity (the point at infinity). Keeping
// identity as a distinct variant, rather than overloading a sentinel
// coordinate like (0, 0), avoids ever confusing it with a coordinate
// that may or may not itself be on the curve. Points are immutable
// once constructed — methods on Point never mutate X or Y in place.
type Point struct {
	x, y     *big.Int
	identity bool
}

// NewPoint constructs the affine point (x, y). It does not check that
// the point lies on any particular curve; use Curve.IsOnCurve for that.
func NewPoint(x, y *big.Int) Point {
	return Point{x: new(big.Int).Set(x), y: new(big.Int).Set(y)}
}

// Identity is the neutral element of the group law, also called the
// point at infinity.
var Identity = Point{identity: true}

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool {
	return p.identity
}

// X returns the affine X coordinate. It panics if p is Identity, which
// has none.
func (p Point) X() *big.Int {
	if p.identity {
		panic("curve: Identity has no X coordinate")
	}
	return new(big.Int).Set(p.x)
}

// Y returns the affine Y coordinate. It panics if p is Identity, which
// has none.
func (p Point) Y() *big.Int {
	if p.identity {
		panic("curve: Identity has no Y coordinate")
	}
	return new(big.Int).Set(p.y)
}

// Equal reports whether p and q denote the same point, comparing
// structurally: two Identity values are always equal, an Identity and
// a coordinate are never equal, and two coordinates are equal iff both
// components match.
func (p Point) Equal(q Point) bool {
	if p.identity || q.identity {
		return p.identity == q.identity
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

// String renders p for debugging; it is not a serialization format.
func (p Point) String() string {
	if p.identity {
		return "Identity"
	}
	return "(" + p.x.String() + ", " + p.y.String() + ")"
}
