package carrot

import "github.com/t1amak/salvium/pkg/xcrypto"

// deriveEphemeralScalar computes d_e for a normal (non-self-send) proposal,
// binding it to the destination and the randomness so that a different
// recipient or a reused anchor produces an unrelated ephemeral key (§4.4).
func deriveEphemeralScalar(randomness JanusAnchor, inputContext InputContext, dest Destination) *xcrypto.Scalar {
	return xcrypto.HashScalar(domainDe,
		randomness[:],
		[]byte(inputContext),
		pointBytes(dest.Ksj),
		pointBytes(dest.Kvj),
		dest.PaymentID[:],
	)
}

// ephemeralPubkey computes D_e = d_e · ConvertPointE(K_s^j) for a subaddress
// destination, or d_e · B for a main/integrated destination, per §4.4.
func ephemeralPubkey(dE *xcrypto.Scalar, dest Destination) xcrypto.PointX {
	if dest.IsSubaddress {
		return xcrypto.MontgomeryLadder(dE, xcrypto.EdwardsToMontgomery(dest.Ksj))
	}
	return xcrypto.MontgomeryLadder(dE, xcrypto.X25519BasePoint())
}

// senderSharedSecretNormal computes s_sr = 8 · d_e · ConvertPointE(K_v^j),
// the sender's side of the normal-send ECDH.
func senderSharedSecretNormal(dE *xcrypto.Scalar, dest Destination) [32]byte {
	return xcrypto.MontgomeryLadder8(dE, xcrypto.EdwardsToMontgomery(dest.Kvj))
}

// contextualizeSharedSecret computes s_ctx_sr = hash32("s_ctx_sr", s_sr, D_e,
// input_context), binding an uncontextualized shared secret to this
// particular transaction (§4.4).
func contextualizeSharedSecret(sSr [32]byte, dE xcrypto.PointX, inputContext InputContext) [32]byte {
	return xcrypto.Hash32(domainSCtxSr, sSr[:], dE[:], []byte(inputContext))
}
