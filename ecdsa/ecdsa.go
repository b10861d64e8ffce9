// Package ecdsa implements the ECDSA sign/verify protocol on top of
// package curve: key-pair generation, signing, verification, and the
// message-to-scalar hash used to turn an arbitrary byte message into a
// value the signature math can consume.
//
// This is a from-scratch, educational implementation, not a
// constant-time or side-channel-hardened one — see spec.md §1's
// Non-goals. Do not use it to protect anything that matters.
package ecdsa

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"math/big"

	"go.uber.org/zap"

	"github.com/Pshypher/ec-cryptography/curve"
	"github.com/Pshypher/ec-cryptography/errs"
	"github.com/Pshypher/ec-cryptography/field"
)

// Config configures a Context. Curve, Generator and Order are required;
// Rand and Logger are optional and default to crypto/rand.Reader and a
// no-op logger respectively.
type Config struct {
	Curve     *curve.Curve
	Generator curve.Point
	Order     *big.Int

	// Rand supplies randomness for GeneratePrivateKey and GenerateNonce.
	// Defaults to crypto/rand.Reader.
	Rand io.Reader

	// Logger receives Debug-level events for key generation, signing
	// and verification. Never logs the private key or nonce. Defaults
	// to a no-op logger, so the library is silent unless a caller asks
	// otherwise.
	Logger *zap.Logger
}

// Context is the immutable triple (curve, A, q) spec.md §3 describes: a
// curve, its generator A, and the order q of the subgroup A generates.
// A *Context may be shared across goroutines once constructed.
type Context struct {
	curve     *curve.Curve
	generator curve.Point
	order     *big.Int
	rand      io.Reader
	log       *zap.Logger
}

// New validates cfg and constructs a Context. It does not verify that
// Order is actually the order of Generator in the curve's group, or
// that Order is prime — spec.md §3 notes those are assumed, not
// checked, at construction.
func New(cfg Config) (*Context, error) {
	if cfg.Curve == nil {
		return nil, fmt.Errorf("%w: ecdsa.New: Curve is required", errs.ErrPreconditionViolated)
	}
	if cfg.Order == nil || cfg.Order.Sign() <= 0 {
		return nil, fmt.Errorf("%w: ecdsa.New: Order must be positive", errs.ErrPreconditionViolated)
	}
	if !cfg.Curve.IsOnCurve(cfg.Generator) || cfg.Generator.IsIdentity() {
		return nil, fmt.Errorf("%w: ecdsa.New: Generator must be a non-identity point on Curve", errs.ErrPreconditionViolated)
	}

	r := cfg.Rand
	if r == nil {
		r = rand.Reader
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Context{
		curve:     cfg.Curve,
		generator: cfg.Generator,
		order:     new(big.Int).Set(cfg.Order),
		rand:      r,
		log:       log,
	}, nil
}

// NewFromDomain is a convenience constructor for a curve.Domain preset,
// e.g. ecdsa.NewFromDomain(curve.Secp256k1()).
func NewFromDomain(d curve.Domain, opts ...func(*Config)) (*Context, error) {
	cfg := Config{Curve: d.Curve, Generator: d.Generator, Order: d.Order}
	for _, opt := range opts {
		opt(&cfg)
	}
	return New(cfg)
}

// WithLogger is a Config-mutating option for NewFromDomain.
func WithLogger(log *zap.Logger) func(*Config) {
	return func(cfg *Config) { cfg.Logger = log }
}

// WithRand is a Config-mutating option for NewFromDomain.
func WithRand(r io.Reader) func(*Config) {
	return func(cfg *Config) { cfg.Rand = r }
}

// GeneratePrivateKey draws a uniformly random scalar d in [1, q).
func (c *Context) GeneratePrivateKey() (*big.Int, error) {
	return randomScalar(c.rand, c.order)
}

// GenerateNonce draws a uniformly random per-message scalar k in
// [1, q). It is a distinct name from GeneratePrivateKey because the two
// have very different lifetimes — a private key persists, a nonce is
// single-use — even though the sampling is identical.
func (c *Context) GenerateNonce() (*big.Int, error) {
	return randomScalar(c.rand, c.order)
}

// GenerateKeyPair draws a private key d from [1, q) and computes the
// corresponding public key B = d*A.
func (c *Context) GenerateKeyPair() (d *big.Int, pub curve.Point, err error) {
	d, err = c.GeneratePrivateKey()
	if err != nil {
		return nil, curve.Point{}, fmt.Errorf("ecdsa: GenerateKeyPair: %w", err)
	}
	pub = c.curve.ScalarMul(c.generator, d)
	c.log.Debug("generated key pair")
	return d, pub, nil
}

// Sign computes a signature (r, s) over hash h under private key d with
// per-message nonce k:
//
//  1. R = k*A; r is R's x-coordinate.
//  2. s = (h + d*r) * k⁻¹ mod q.
//
// Preconditions — 0 < h, d, k < q, and R must not be Identity (which
// would mean k ≡ 0 mod q, already excluded by k's range) — are
// programmer errors on the caller's own key material, not
// attacker-controlled input, so Sign panics rather than returning an
// error, matching spec.md §7's reference behavior.
func (c *Context) Sign(h, d, k *big.Int) (r, s *big.Int) {
	c.mustBeInSubgroup(h, "h")
	c.mustBeInSubgroup(d, "d")
	c.mustBeInSubgroup(k, "k")

	R := c.curve.ScalarMul(c.generator, k)
	if R.IsIdentity() {
		panic(fmt.Errorf("%w: Sign: k*A is Identity", errs.ErrInvalidState))
	}
	r = R.X()

	kInv := field.Inv(k, c.order)
	s = field.Mul(field.Add(h, field.Mul(d, r, c.order), c.order), kInv, c.order)

	c.log.Debug("signed message", zap.String("r", r.String()))
	return r, s
}

// Verify reports whether (r, s) is a valid signature over hash h under
// public key pub.
//
// Unlike Sign, Verify treats pub, r and s as attacker-controlled: it
// never panics on them, returning false for any malformed or
// out-of-range input instead (spec.md §7's guidance for a
// production-grade rewrite). h is still treated as the caller's own,
// since it's the output of HashScalar over a message the caller chose,
// not something an attacker hands the verifier directly.
func (c *Context) Verify(h *big.Int, pub curve.Point, r, s *big.Int) bool {
	c.mustBeInSubgroup(h, "h")

	if !inOpenRange(r, c.order) || !inOpenRange(s, c.order) {
		c.log.Debug("verify failed: r or s out of range")
		return false
	}
	if pub.IsIdentity() || !c.curve.IsOnCurve(pub) {
		c.log.Debug("verify failed: public key not a valid curve point")
		return false
	}

	w := field.Inv(s, c.order)
	u1 := field.Mul(w, h, c.order)
	u2 := field.Mul(w, r, c.order)

	p1 := c.curve.ScalarMul(c.generator, u1)
	p2 := c.curve.ScalarMul(pub, u2)
	p := addPoints(c.curve, p1, p2)

	if p.IsIdentity() {
		c.log.Debug("verify failed: u1*A + u2*B is Identity")
		return false
	}

	ok := p.X().Cmp(r) == 0
	c.log.Debug("verify finished", zap.Bool("ok", ok))
	return ok
}

// addPoints adds p and q, dispatching to Double when they happen to be
// equal. curve.Add itself keeps the reference's strict posture of
// rejecting equal operands (spec.md §4.2.1, §9's Open Question) since
// ScalarMul's own invariant means it never needs this; Verify's
// combination step takes attacker-chosen scalars u1, u2, though, so it
// can't assume p1 != p2 and must not panic if they collide.
func addPoints(c *curve.Curve, p, q curve.Point) curve.Point {
	switch {
	case p.IsIdentity():
		return q
	case q.IsIdentity():
		return p
	case p.Equal(q):
		return c.Double(p)
	default:
		return c.Add(p, q)
	}
}

// HashScalar hashes message with SHA-256, interprets the digest as a
// big-endian integer H, and returns H mod (q-1) + 1, guaranteeing
// 1 <= h < q by construction. This is not standard ECDSA truncation
// (which takes the leftmost bits of the digest without the +1 shift);
// spec.md §4.3.4 chooses this construction deliberately so h always
// lands in range regardless of how the digest compares to q.
func (c *Context) HashScalar(message []byte) *big.Int {
	return HashScalar(message, c.order)
}

// HashScalar is the package-level form of Context.HashScalar, for
// callers hashing against a subgroup order without a full Context.
func HashScalar(message []byte, q *big.Int) *big.Int {
	digest := sha256.Sum256(message)
	h := new(big.Int).SetBytes(digest[:])
	qMinus1 := new(big.Int).Sub(q, big.NewInt(1))
	h.Mod(h, qMinus1)
	return h.Add(h, big.NewInt(1))
}

func (c *Context) mustBeInSubgroup(v *big.Int, name string) {
	if !inOpenRange(v, c.order) {
		panic(fmt.Errorf("%w: %s = %s is not in (0, %s)", errs.ErrPreconditionViolated, name, v, c.order))
	}
}

func inOpenRange(v, max *big.Int) bool {
	return v.Sign() > 0 && v.Cmp(max) < 0
}
