package carrot

import "github.com/t1amak/salvium/pkg/xcrypto"

// PaymentId is the 8-byte cleartext (sender-side) or decrypted (receiver-
// side) payment identifier. The zero value encodes "no payment id".
type PaymentId [8]byte

// IsZero reports whether this is the "no payment id" sentinel.
func (p PaymentId) IsZero() bool { return p == PaymentId{} }

// JanusAnchor is the 16-byte randomness a normal-send proposal commits to,
// and the value the Janus check recomputes on the receiving side.
type JanusAnchor [16]byte

// IsZero reports whether the anchor is the all-zero value, which a valid
// normal proposal must never use (§3 invariants).
func (a JanusAnchor) IsZero() bool { return a == JanusAnchor{} }

// EncryptedAmount is the 8-byte keystream-XORed amount.
type EncryptedAmount [8]byte

// EncryptedPaymentId is the 8-byte keystream-XORed payment id.
type EncryptedPaymentId [8]byte

// EncryptedJanusAnchor is the 16-byte keystream-XORed (or, for an internal
// self-send, freshly random) anchor.
type EncryptedJanusAnchor [16]byte

// ViewTag is the 3-byte fast-rejection prefix computed over s_sr.
type ViewTag [3]byte

// KeyImage is an opaque 32-byte linkability tag, produced and consumed
// outside this package's scope; carried here only as the enote's
// tx_first_key_image field.
type KeyImage [32]byte

// EnoteType distinguishes a self-send's purpose.
type EnoteType int

const (
	EnoteTypePayment EnoteType = iota
	EnoteTypeChange
)

func (t EnoteType) String() string {
	if t == EnoteTypeChange {
		return "change"
	}
	return "payment"
}

// tag returns the domain-separation tag mixed into k_a's
// hash_scalar call so that PAYMENT and CHANGE commitments are
// cryptographically distinct even for an identical s_ctx_sr.
func (t EnoteType) tag() []byte {
	return []byte{byte(t)}
}

// InputContext is a tagged byte string binding enotes to their transaction:
// "R" || first key image for a normal tx, or "C" || block index (8-byte LE)
// for a coinbase tx.
type InputContext []byte

// NormalInputContext builds the InputContext for a non-coinbase transaction.
func NormalInputContext(firstKeyImage KeyImage) InputContext {
	ctx := make(InputContext, 0, 1+len(firstKeyImage))
	ctx = append(ctx, 'R')
	ctx = append(ctx, firstKeyImage[:]...)
	return ctx
}

// CoinbaseInputContext builds the InputContext for a coinbase transaction.
func CoinbaseInputContext(blockIndex uint64) InputContext {
	ctx := make(InputContext, 0, 9)
	ctx = append(ctx, 'C')
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(blockIndex >> (8 * i))
	}
	ctx = append(ctx, buf[:]...)
	return ctx
}

// pointBytes is a small helper shared by every file in this package that
// needs to feed a PointEd into a hash as its compressed encoding.
func pointBytes(p *xcrypto.PointEd) []byte {
	b := p.Bytes()
	return b[:]
}
