// Package xcrypto provides the curve and hashing primitives the Carrot
// addressing core is built on: Ed25519 scalars and points, a second
// independent generator, X25519 conversion, domain-separated hashing, a
// Pedersen amount commitment, and keystream encryption. Everything above
// this package (the transaction-specific key hierarchy, address derivation,
// enote construction and scanning) lives in pkg/carrot.
package xcrypto

import (
	"golang.org/x/crypto/sha3"
)

// Hash32 computes Keccak-256 over the canonical concatenation of label and
// parts (label verbatim, then each part verbatim in order), and returns the
// raw 32-byte digest. No length framing is applied: the domain strings are
// fixed, literal constants (§6), not attacker-influenced, so there is no
// variable-length label/part boundary for an adversary to shift.
func Hash32(label string, parts ...[]byte) [32]byte {
	d := sha3.NewLegacyKeccak256()
	d.Write([]byte(label))
	for _, p := range parts {
		d.Write(p)
	}
	var out [32]byte
	d.Sum(out[:0])
	return out
}

// KeccakRaw hashes an already-assembled byte string with no domain
// separation applied. Used by HashToPoint, which needs to rehash a
// candidate compressed point as-is while retrying try-and-increment.
func KeccakRaw(data []byte) [32]byte {
	d := sha3.NewLegacyKeccak256()
	d.Write(data)
	var out [32]byte
	d.Sum(out[:0])
	return out
}
