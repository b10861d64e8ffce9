package curve

import "math/big"

// fromHex parses a hex literal into a big.Int and panics on failure.
// Only ever called on constants embedded in this source file, so a
// parse failure means the source itself is broken, not bad input.
func fromHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curve: invalid hex literal in source: " + s)
	}
	return v
}

// Domain is a curve together with its generator and subgroup order —
// the three values an ECDSA context needs, bundled the way a caller
// actually wants to consume a named curve.
type Domain struct {
	Curve     *Curve
	Generator Point
	Order     *big.Int
}

// Toy returns the hand-verifiable curve y² = x³ + 2x + 2 mod 17 from
// spec §8, with generator A = (5, 1) and subgroup order q = 19. Small
// enough to check every intermediate value by hand; useful for tests
// and for learning the algorithm, not for anything security-sensitive.
func Toy() Domain {
	c := New(big.NewInt(2), big.NewInt(2), big.NewInt(17))
	return Domain{
		Curve:     c,
		Generator: NewPoint(big.NewInt(5), big.NewInt(1)),
		Order:     big.NewInt(19),
	}
}

// Secp256k1 returns the standard secp256k1 domain parameters as
// specified by SEC 2: y² = x³ + 7 mod p, with the SECG base point G and
// subgroup order n.
func Secp256k1() Domain {
	p := fromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")
	n := fromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")
	gx := fromHex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")
	gy := fromHex("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8")

	c := New(big.NewInt(0), big.NewInt(7), p)
	return Domain{
		Curve:     c,
		Generator: NewPoint(gx, gy),
		Order:     n,
	}
}
