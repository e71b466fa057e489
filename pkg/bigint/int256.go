// Package bigint provides small fixed-width signed integer codecs
// (sign-magnitude, little-endian). It has no dependency on pkg/carrot or
// pkg/xcrypto, and no other package of this module imports it.
package bigint

import "github.com/holiman/uint256"

// Int256 is a signed 256-bit integer in sign-magnitude form: the magnitude
// is carried in a github.com/holiman/uint256.Int (already a dependency of
// the reference corpus's Ethereum-execution-client teacher, and the
// natural fixed-width unsigned 256-bit type for this job), with a separate
// sign bit serialized into bit 255 of the wire encoding.
type Int256 struct {
	neg bool
	mag uint256.Int
}

// NewInt256 constructs an Int256 from a plain int64.
func NewInt256(v int64) *Int256 {
	if v < 0 {
		return &Int256{neg: true, mag: *uint256.NewInt(uint64(-v))}
	}
	return &Int256{mag: *uint256.NewInt(uint64(v))}
}

// Int256FromBytes decodes the little-endian, 32-byte, sign-magnitude wire
// format: the top bit of the last byte is the sign, the remaining 255 bits
// are the magnitude.
func Int256FromBytes(b [32]byte) *Int256 {
	neg := b[31]&0x80 != 0
	magLE := b
	magLE[31] &= 0x7f

	var magBE [32]byte
	for i := 0; i < 32; i++ {
		magBE[i] = magLE[31-i]
	}

	var mag uint256.Int
	mag.SetBytes32(magBE[:])
	if mag.IsZero() {
		neg = false
	}
	return &Int256{neg: neg, mag: mag}
}

// Bytes encodes x into the little-endian, 32-byte, sign-magnitude wire
// format described on Int256FromBytes.
func (x *Int256) Bytes() [32]byte {
	magBE := x.mag.Bytes32()
	var out [32]byte
	for i := 0; i < 32; i++ {
		out[i] = magBE[31-i]
	}
	out[31] &= 0x7f
	if x.neg && !x.mag.IsZero() {
		out[31] |= 0x80
	}
	return out
}

// Equal reports whether x and y encode the same signed value.
func (x *Int256) Equal(y *Int256) bool {
	if x.mag.IsZero() && y.mag.IsZero() {
		return true
	}
	return x.neg == y.neg && x.mag.Eq(&y.mag)
}

// Negative reports whether x is strictly negative.
func (x *Int256) Negative() bool {
	return x.neg && !x.mag.IsZero()
}
