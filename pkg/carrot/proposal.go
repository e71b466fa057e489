package carrot

import "github.com/t1amak/salvium/pkg/xcrypto"

// NormalProposal is a payment to someone else's address: destination,
// amount, and the randomness the sender commits to as a Janus anchor (§3).
type NormalProposal struct {
	Destination Destination
	Amount      uint64
	Randomness  JanusAnchor
}

// Validate checks the one precondition construction requires of a normal
// proposal before any cryptographic work is done.
func (p NormalProposal) Validate() error {
	if p.Randomness.IsZero() {
		return invalidProposal(ReasonZeroAnchor)
	}
	return nil
}

// SelfSendProposal is an output the sender sends to their own wallet: a
// change output, or an internal "record-keeping" payment (§3). D_e is
// supplied by the caller rather than generated here, so that an output set
// can reuse a normal proposal's ephemeral pubkey under the 2-out sharing
// rule (§4.7).
type SelfSendProposal struct {
	AddressSpendPubkey *xcrypto.PointEd // K_s^j of the receiving (own) address
	Amount             uint64
	EnoteType          EnoteType
	De                 xcrypto.PointX
}
