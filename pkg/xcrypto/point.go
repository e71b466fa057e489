package xcrypto

import (
	"fmt"

	"filippo.io/edwards25519"
)

// PointEd is a point on the Ed25519 group, 32-byte compressed.
type PointEd struct {
	inner edwards25519.Point
}

// BaseG is the standard Ed25519 base point.
func BaseG() *PointEd {
	p := &PointEd{}
	p.inner.Set(edwards25519.NewGeneratorPoint())
	return p
}

// IdentityPoint returns the group identity (point at infinity).
func IdentityPoint() *PointEd {
	p := &PointEd{}
	p.inner.Set(edwards25519.NewIdentityPoint())
	return p
}

// PointFromBytes decodes a 32-byte compressed Ed25519 point.
func PointFromBytes(b [32]byte) (*PointEd, error) {
	p := &PointEd{}
	if _, err := p.inner.SetBytes(b[:]); err != nil {
		return nil, fmt.Errorf("xcrypto: invalid point encoding: %w", err)
	}
	return p, nil
}

// Bytes returns the 32-byte compressed encoding.
func (p *PointEd) Bytes() [32]byte {
	var out [32]byte
	copy(out[:], p.inner.Bytes())
	return out
}

// AddPoints returns a + b.
func AddPoints(a, b *PointEd) *PointEd {
	p := &PointEd{}
	p.inner.Add(&a.inner, &b.inner)
	return p
}

// SubPoints returns a - b.
func SubPoints(a, b *PointEd) *PointEd {
	p := &PointEd{}
	p.inner.Subtract(&a.inner, &b.inner)
	return p
}

// ScalarMultPoint returns s*p.
func ScalarMultPoint(s *Scalar, p *PointEd) *PointEd {
	r := &PointEd{}
	r.inner.ScalarMult(&s.inner, &p.inner)
	return r
}

// ScalarMultBase returns s*G.
func ScalarMultBase(s *Scalar) *PointEd {
	r := &PointEd{}
	r.inner.ScalarBaseMult(&s.inner)
	return r
}

// Mul8 returns 8*p via three doublings (Edwards point addition is complete,
// so Add(p, p) correctly doubles). This is the cofactor-clearing "8 ·" that
// appears throughout the Carrot shared-secret and generator formulas.
func Mul8(p *PointEd) *PointEd {
	r := &PointEd{}
	r.inner.Add(&p.inner, &p.inner)
	r.inner.Add(&r.inner, &r.inner)
	r.inner.Add(&r.inner, &r.inner)
	return r
}

// Equal reports whether a and b encode the same point.
func (p *PointEd) Equal(q *PointEd) bool {
	return p.inner.Equal(&q.inner) == 1
}

// IsIdentity reports whether p is the group identity.
func (p *PointEd) IsIdentity() bool {
	return p.Equal(IdentityPoint())
}

// HashToPoint maps an arbitrary seed to a point on the Ed25519 curve using
// try-and-increment decompression: the seed is treated as a candidate
// compressed point; if it fails to decode (roughly half of all 32-byte
// strings are not valid compressed points), it is rehashed and retried.
// This stands in for the curve library's hash-to-curve primitive, which the
// spec treats as provided; it is not constant-time, which is acceptable
// since side-channel-resistant field arithmetic is explicitly out of scope.
func HashToPoint(seed []byte) *PointEd {
	candidate := seed
	for {
		var buf [32]byte
		copy(buf[:], candidate)
		if p, err := PointFromBytes(buf); err == nil {
			return p
		}
		next := KeccakRaw(candidate)
		candidate = next[:]
	}
}
