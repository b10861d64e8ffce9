package curve_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Pshypher/ec-cryptography/curve"
)

func bi(v int64) *big.Int { return big.NewInt(v) }

func toyPoint(x, y int64) curve.Point { return curve.NewPoint(bi(x), bi(y)) }

func TestPointAddition(t *testing.T) {
	dom := curve.Toy()
	p1 := toyPoint(6, 3)
	p2 := toyPoint(5, 1)
	want := toyPoint(10, 6)

	got := dom.Curve.Add(p1, p2)
	require.True(t, want.Equal(got), "got %s, want %s", got, want)
}

func TestPointDoubling(t *testing.T) {
	dom := curve.Toy()
	p := toyPoint(5, 1)
	want := toyPoint(6, 3)

	got := dom.Curve.Double(p)
	require.True(t, want.Equal(got))
}

func TestDoubleIdentityIsIdentity(t *testing.T) {
	dom := curve.Toy()
	require.True(t, dom.Curve.Double(curve.Identity).IsIdentity())
}

func TestGroupIdentityLaws(t *testing.T) {
	dom := curve.Toy()
	p := dom.Generator

	require.True(t, p.Equal(dom.Curve.Add(curve.Identity, p)))
	require.True(t, p.Equal(dom.Curve.Add(p, curve.Identity)))
}

func TestScalarMultiplicationTable(t *testing.T) {
	// y^2 = x^3 + 2x + 2 mod 17, A = (5, 1), |A| = 19.
	dom := curve.Toy()
	cases := []struct {
		d    int64
		x, y int64
		inf  bool
	}{
		{2, 6, 3, false},
		{10, 7, 11, false},
		{16, 10, 11, false},
		{17, 6, 14, false},
		{18, 5, 16, false},
		{19, 0, 0, true},
	}
	for _, tc := range cases {
		got := dom.Curve.ScalarMul(dom.Generator, bi(tc.d))
		if tc.inf {
			require.True(t, got.IsIdentity(), "d=%d", tc.d)
			continue
		}
		want := toyPoint(tc.x, tc.y)
		require.True(t, want.Equal(got), "d=%d: got %s, want %s", tc.d, got, want)
	}
}

func TestScalarMulByZeroIsIdentity(t *testing.T) {
	dom := curve.Toy()
	require.True(t, dom.Curve.ScalarMul(dom.Generator, bi(0)).IsIdentity())
}

func TestSubgroupOrder(t *testing.T) {
	dom := curve.Toy()
	require.True(t, dom.Curve.ScalarMul(dom.Generator, dom.Order).IsIdentity())
}

func TestIsOnCurve(t *testing.T) {
	dom := curve.Toy()
	require.True(t, dom.Curve.IsOnCurve(dom.Generator))
	require.True(t, dom.Curve.IsOnCurve(curve.Identity))
	require.False(t, dom.Curve.IsOnCurve(toyPoint(0, 0)))
}

func TestAddEqualPointsPanics(t *testing.T) {
	dom := curve.Toy()
	p := dom.Generator
	require.Panics(t, func() { dom.Curve.Add(p, toyPoint(5, 1)) })
}

func TestClosureUnderGroupOps(t *testing.T) {
	dom := curve.Toy()
	for d := int64(1); d < dom.Order.Int64(); d++ {
		p := dom.Curve.ScalarMul(dom.Generator, bi(d))
		require.True(t, dom.Curve.IsOnCurve(p), "d=%d", d)
		if !p.IsIdentity() {
			require.True(t, dom.Curve.IsOnCurve(dom.Curve.Double(p)), "double d=%d", d)
		}
	}
}

func TestSecp256k1SubgroupOrder(t *testing.T) {
	dom := curve.Secp256k1()
	require.True(t, dom.Curve.IsOnCurve(dom.Generator))
	require.True(t, dom.Curve.ScalarMul(dom.Generator, dom.Order).IsIdentity())
}
