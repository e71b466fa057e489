package xcrypto

import (
	"fmt"

	"filippo.io/edwards25519"
)

// Scalar is an integer modulo the Ed25519 group order l. It wraps
// edwards25519.Scalar and adds the explicit zeroization this spec's secret
// lifecycle requires; Go has no destructors, so Zeroize must be called
// explicitly (callers defer it) rather than relied upon at GC time.
type Scalar struct {
	inner edwards25519.Scalar
}

// NewScalarZero returns the additive identity scalar.
func NewScalarZero() *Scalar {
	return &Scalar{}
}

// HashScalar implements hash_scalar(label, parts...): Hash32 reduced mod l.
// The 32-byte digest is zero-extended to 64 bytes before calling
// SetUniformBytes; since the digest is already < 2^256, wide-reducing its
// zero-padded form mod l is mathematically identical to reducing the
// 32-byte value directly, while reusing the library's constant-time
// reduction instead of hand-rolling one.
func HashScalar(label string, parts ...[]byte) *Scalar {
	digest := Hash32(label, parts...)
	var wide [64]byte
	copy(wide[:32], digest[:])
	s := &Scalar{}
	if _, err := s.inner.SetUniformBytes(wide[:]); err != nil {
		panic(fmt.Sprintf("xcrypto: SetUniformBytes: %v", err))
	}
	return s
}

// ScalarFromUint64 encodes a little-endian, canonical scalar from a uint64
// amount or small index. Used wherever the spec multiplies by a plain
// integer (e.g. the amount in a Pedersen commitment, or the cofactor 8).
func ScalarFromUint64(v uint64) *Scalar {
	var buf [32]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
	s := &Scalar{}
	if _, err := s.inner.SetCanonicalBytes(buf[:]); err != nil {
		panic(fmt.Sprintf("xcrypto: SetCanonicalBytes: %v", err))
	}
	return s
}

// RandomScalar draws a uniformly random scalar via RandReader.
func RandomScalar() *Scalar {
	var wide [64]byte
	if _, err := RandReader.Read(wide[:]); err != nil {
		panic(fmt.Sprintf("xcrypto: RandReader: %v", err))
	}
	s := &Scalar{}
	if _, err := s.inner.SetUniformBytes(wide[:]); err != nil {
		panic(fmt.Sprintf("xcrypto: SetUniformBytes: %v", err))
	}
	return s
}

// ScalarFromCanonicalBytes decodes a little-endian, already-reduced 32-byte
// scalar, rejecting any representation that is not the canonical one.
func ScalarFromCanonicalBytes(b [32]byte) (*Scalar, error) {
	s := &Scalar{}
	if _, err := s.inner.SetCanonicalBytes(b[:]); err != nil {
		return nil, fmt.Errorf("xcrypto: scalar not canonical: %w", err)
	}
	return s, nil
}

// Bytes returns the little-endian canonical encoding.
func (s *Scalar) Bytes() [32]byte {
	var out [32]byte
	copy(out[:], s.inner.Bytes())
	return out
}

// Add returns s = x + y.
func Add(x, y *Scalar) *Scalar {
	s := &Scalar{}
	s.inner.Add(&x.inner, &y.inner)
	return s
}

// Sub returns s = x - y.
func Sub(x, y *Scalar) *Scalar {
	s := &Scalar{}
	s.inner.Subtract(&x.inner, &y.inner)
	return s
}

// Mul returns s = x * y.
func Mul(x, y *Scalar) *Scalar {
	s := &Scalar{}
	s.inner.Multiply(&x.inner, &y.inner)
	return s
}

// MulAdd returns s = x*y + z.
func MulAdd(x, y, z *Scalar) *Scalar {
	s := &Scalar{}
	s.inner.MultiplyAdd(&x.inner, &y.inner, &z.inner)
	return s
}

// Equal reports whether s and t encode the same value.
func (s *Scalar) Equal(t *Scalar) bool {
	return s.inner.Equal(&t.inner) == 1
}

// IsZero reports whether s is the additive identity.
func (s *Scalar) IsZero() bool {
	return s.Equal(NewScalarZero())
}

// Zeroize overwrites the scalar's backing bytes. Callers holding a secret
// scalar (k_ps, k_gi, k_v, an ephemeral d_e, ...) must defer this on release;
// it is not run automatically.
func (s *Scalar) Zeroize() {
	*s = Scalar{}
}

// eight is the scalar "8", used throughout the Carrot shared-secret formulas
// for cofactor clearing (the literal "8 ·" in "s_sr = 8 · d_e · ...").
var eight = ScalarFromUint64(8)
