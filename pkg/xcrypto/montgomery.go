package xcrypto

import "math/big"

// PointX is an X25519 Montgomery point: a 32-byte little-endian
// u-coordinate. Unlike PointEd it carries no sign information, which is why
// receiver-side scanning (which only ever sees a wire D_e, never its Edwards
// lift) must use the explicit ladder below rather than Edwards arithmetic.
type PointX [32]byte

var (
	curveP    = mustBig("57896044618658097711785492504343953926634992332820282019728792003956564819949") // 2^255 - 19
	curveA24  = big.NewInt(121665)                                                                      // (486662 - 2) / 4
	pMinusTwo = new(big.Int).Sub(curveP, big.NewInt(2))
)

func mustBig(dec string) *big.Int {
	v, ok := new(big.Int).SetString(dec, 10)
	if !ok {
		panic("xcrypto: bad constant")
	}
	return v
}

func feFromBytes(b [32]byte) *big.Int {
	// u-coordinates are encoded little-endian; the top bit is unused by the
	// Montgomery representation (unlike the Edwards sign bit) but is masked
	// off for robustness against non-canonical input, per RFC 7748 §5.
	clamped := b
	clamped[31] &= 0x7f
	le := make([]byte, 32)
	for i := 0; i < 32; i++ {
		le[i] = clamped[31-i]
	}
	v := new(big.Int).SetBytes(le)
	return v.Mod(v, curveP)
}

func feToBytes(v *big.Int) [32]byte {
	v = new(big.Int).Mod(v, curveP)
	be := v.Bytes()
	var out [32]byte
	for i, b := range be {
		out[len(be)-1-i] = b
	}
	return out
}

func feInv(v *big.Int) *big.Int {
	return new(big.Int).Exp(v, pMinusTwo, curveP)
}

func feMul(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Mul(a, b), curveP)
}

func feAdd(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Add(a, b), curveP)
}

func feSub(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Sub(a, b), curveP)
}

func feSquare(a *big.Int) *big.Int {
	return feMul(a, a)
}

// scalarToUnclampedInt interprets a Scalar's little-endian bytes as a plain
// non-negative integer, with NO RFC 7748 clamping applied. This is
// deliberate: the spec's "8 · d_e · P" formula needs the literal reduced
// scalar, not the clamped/masked value golang.org/x/crypto/curve25519.X25519
// would substitute.
func scalarToUnclampedInt(s *Scalar) *big.Int {
	b := s.Bytes()
	le := make([]byte, 32)
	for i := 0; i < 32; i++ {
		le[i] = b[31-i]
	}
	return new(big.Int).SetBytes(le)
}

// montgomeryLadderRaw computes k*u on the Curve25519 Montgomery curve using
// the unclamped x-only ladder of RFC 7748 §5. k is an arbitrary (not
// necessarily clamped) non-negative integer below 2^255.
func montgomeryLadderRaw(k *big.Int, u *big.Int) *big.Int {
	x1 := u
	x2, z2 := big.NewInt(1), big.NewInt(0)
	x3, z3 := new(big.Int).Set(u), big.NewInt(1)
	swap := 0

	for t := 254; t >= 0; t-- {
		kt := int(k.Bit(t))
		swap ^= kt
		if swap == 1 {
			x2, x3 = x3, x2
			z2, z3 = z3, z2
		}
		swap = kt

		a := feAdd(x2, z2)
		aa := feSquare(a)
		b := feSub(x2, z2)
		bb := feSquare(b)
		e := feSub(aa, bb)
		c := feAdd(x3, z3)
		d := feSub(x3, z3)
		da := feMul(d, a)
		cb := feMul(c, b)

		x3 = feSquare(feAdd(da, cb))
		z3 = feMul(x1, feSquare(feSub(da, cb)))
		x2 = feMul(aa, bb)
		z2 = feMul(e, feAdd(aa, feMul(curveA24, e)))
	}
	if swap == 1 {
		x2, x3 = x3, x2
		z2, z3 = z3, z2
	}

	return feMul(x2, feInv(z2))
}

// MontgomeryLadder computes scalar*u on the Montgomery curve without RFC
// 7748 clamping.
func MontgomeryLadder(scalar *Scalar, u PointX) PointX {
	k := scalarToUnclampedInt(scalar)
	uFe := feFromBytes([32]byte(u))
	return PointX(feToBytes(montgomeryLadderRaw(k, uFe)))
}

// MontgomeryLadder8 computes 8*scalar*u in one ladder call, folding the
// cofactor-clearing factor of 8 into the scalar beforehand
// (8·n·P = (8n mod l)·P), since the ladder itself takes only one scalar.
func MontgomeryLadder8(scalar *Scalar, u PointX) PointX {
	scaled := Mul(eight, scalar)
	return MontgomeryLadder(scaled, u)
}

// EdwardsToMontgomery implements the standard birational equivalence between
// the Edwards and Montgomery models: u = (1+y)/(1-y) mod p, where y is
// recovered from the compressed Edwards point (the sign bit, which only
// affects the x-coordinate, is irrelevant to u).
func EdwardsToMontgomery(p *PointEd) PointX {
	b := p.Bytes()
	b[31] &= 0x7f // clear the sign bit to isolate y
	y := feFromBytes(b)
	one := big.NewInt(1)
	num := feAdd(one, y)
	den := feSub(one, y)
	u := feMul(num, feInv(den))
	return PointX(feToBytes(u))
}

// x25519BasePoint is the Montgomery image of the Ed25519 base point G,
// i.e. ConvertPointE(G) = B from §4.4. Computed once from the birational
// map rather than hardcoded, so it is self-consistently grounded in the
// same formula used everywhere else in this file.
var x25519BasePoint = EdwardsToMontgomery(BaseG())

// X25519BasePoint returns B, the Ed25519 base point in X25519 coordinates.
func X25519BasePoint() PointX {
	return x25519BasePoint
}
