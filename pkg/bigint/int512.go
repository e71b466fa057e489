package bigint

import "github.com/holiman/uint256"

// Int512 is a signed 512-bit integer in the same sign-magnitude style as
// Int256, but with no 512-bit unsigned counterpart available in
// github.com/holiman/uint256: the magnitude is instead split across two
// uint256.Int limbs (lo holds the low 256 bits, hi the high bits), composed
// the way a 64-byte value would be from two 32-byte halves.
type Int512 struct {
	neg    bool
	lo, hi uint256.Int
}

// NewInt512 constructs an Int512 from a plain int64.
func NewInt512(v int64) *Int512 {
	if v < 0 {
		return &Int512{neg: true, lo: *uint256.NewInt(uint64(-v))}
	}
	return &Int512{lo: *uint256.NewInt(uint64(v))}
}

// Int512FromBytes decodes the little-endian, 64-byte, sign-magnitude wire
// format: the top bit of the last byte is the sign, the remaining 511 bits
// are the magnitude (bytes 0-31 as the low limb, 32-63 as the high limb).
func Int512FromBytes(b [64]byte) *Int512 {
	neg := b[63]&0x80 != 0
	magLE := b
	magLE[63] &= 0x7f

	var loBE, hiBE [32]byte
	for i := 0; i < 32; i++ {
		loBE[i] = magLE[31-i]
		hiBE[i] = magLE[63-i]
	}

	var lo, hi uint256.Int
	lo.SetBytes32(loBE[:])
	hi.SetBytes32(hiBE[:])
	if lo.IsZero() && hi.IsZero() {
		neg = false
	}
	return &Int512{neg: neg, lo: lo, hi: hi}
}

// Bytes encodes x into the little-endian, 64-byte, sign-magnitude wire
// format described on Int512FromBytes.
func (x *Int512) Bytes() [64]byte {
	loBE := x.lo.Bytes32()
	hiBE := x.hi.Bytes32()

	var out [64]byte
	for i := 0; i < 32; i++ {
		out[i] = loBE[31-i]
		out[32+i] = hiBE[31-i]
	}
	out[63] &= 0x7f
	if x.neg && !(x.lo.IsZero() && x.hi.IsZero()) {
		out[63] |= 0x80
	}
	return out
}

// Equal reports whether x and y encode the same signed value.
func (x *Int512) Equal(y *Int512) bool {
	xZero := x.lo.IsZero() && x.hi.IsZero()
	yZero := y.lo.IsZero() && y.hi.IsZero()
	if xZero && yZero {
		return true
	}
	return x.neg == y.neg && x.lo.Eq(&y.lo) && x.hi.Eq(&y.hi)
}
