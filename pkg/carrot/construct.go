package carrot

import (
	"encoding/binary"

	"github.com/t1amak/salvium/pkg/xcrypto"
)

// deriveKa computes k_a = hash_scalar("k_a", s_ctx_sr, enote_type), the
// amount commitment's blinding factor for any non-coinbase enote (§4.5).
func deriveKa(sCtxSr [32]byte, et EnoteType) *xcrypto.Scalar {
	return xcrypto.HashScalar(domainKa, sCtxSr[:], et.tag())
}

// deriveKoScalars computes the two sender-extension scalars
// k_o^g = hash_scalar("k_o^g", s_ctx_sr, C_a) and k_o^t similarly (§4.5).
func deriveKoScalars(sCtxSr [32]byte, ca *xcrypto.PointEd) (kog, kot *xcrypto.Scalar) {
	caBytes := pointBytes(ca)
	kog = xcrypto.HashScalar(domainKoG, sCtxSr[:], caBytes)
	kot = xcrypto.HashScalar(domainKoT, sCtxSr[:], caBytes)
	return kog, kot
}

// deriveKo computes K_o = K_s^j + k_o^g·G + k_o^t·T (§4.5).
func deriveKo(ksj *xcrypto.PointEd, kog, kot *xcrypto.Scalar) *xcrypto.PointEd {
	ext := xcrypto.AddPoints(xcrypto.ScalarMultBase(kog), xcrypto.ScalarMultPoint(kot, xcrypto.GeneratorT()))
	return xcrypto.AddPoints(ksj, ext)
}

func amountToBytes(amount uint64) [8]byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], amount)
	return b
}

func bytesToAmount(b [8]byte) uint64 {
	return binary.LittleEndian.Uint64(b[:])
}

// encryptAmount computes amount_enc = a XOR hash32("enc_a", s_ctx_sr, K_o) (§4.5).
func encryptAmount(sCtxSr [32]byte, ko *xcrypto.PointEd, amount uint64) EncryptedAmount {
	plain := amountToBytes(amount)
	enc := xcrypto.XORKeystream(domainEncAmount, plain[:], sCtxSr[:], pointBytes(ko))
	var out EncryptedAmount
	copy(out[:], enc)
	return out
}

// decryptAmount reverses encryptAmount (XOR is its own inverse).
func decryptAmount(sCtxSr [32]byte, ko *xcrypto.PointEd, encAmount EncryptedAmount) uint64 {
	dec := xcrypto.XORKeystream(domainEncAmount, encAmount[:], sCtxSr[:], pointBytes(ko))
	var b [8]byte
	copy(b[:], dec)
	return bytesToAmount(b)
}

// encryptPaymentID computes pid_enc = payment_id XOR hash32("enc_pid", s_ctx_sr, K_o) (§4.5).
func encryptPaymentID(sCtxSr [32]byte, ko *xcrypto.PointEd, pid PaymentId) EncryptedPaymentId {
	enc := xcrypto.XORKeystream(domainEncPaymentID, pid[:], sCtxSr[:], pointBytes(ko))
	var out EncryptedPaymentId
	copy(out[:], enc)
	return out
}

// decryptPaymentID reverses encryptPaymentID.
func decryptPaymentID(sCtxSr [32]byte, ko *xcrypto.PointEd, encPid EncryptedPaymentId) PaymentId {
	dec := xcrypto.XORKeystream(domainEncPaymentID, encPid[:], sCtxSr[:], pointBytes(ko))
	var pid PaymentId
	copy(pid[:], dec)
	return pid
}

// computeViewTag computes view_tag = hash32("vt", s_sr, input_context, K_o)[0:3] (§4.5).
func computeViewTag(sSr [32]byte, inputContext InputContext, ko *xcrypto.PointEd) ViewTag {
	digest := xcrypto.Hash32(domainViewTag, sSr[:], []byte(inputContext), pointBytes(ko))
	var vt ViewTag
	copy(vt[:], digest[:3])
	return vt
}

// encryptAnchorNormal computes anchor_enc = randomness XOR
// hash32("enc_anchor", s_ctx_sr, K_o), used for normal and coinbase sends
// (§4.5).
func encryptAnchorNormal(sCtxSr [32]byte, ko *xcrypto.PointEd, randomness JanusAnchor) EncryptedJanusAnchor {
	enc := xcrypto.XORKeystream(domainEncAnchor, randomness[:], sCtxSr[:], pointBytes(ko))
	var out EncryptedJanusAnchor
	copy(out[:], enc)
	return out
}

// decryptAnchorNormal reverses encryptAnchorNormal.
func decryptAnchorNormal(sCtxSr [32]byte, ko *xcrypto.PointEd, encAnchor EncryptedJanusAnchor) JanusAnchor {
	dec := xcrypto.XORKeystream(domainEncAnchor, encAnchor[:], sCtxSr[:], pointBytes(ko))
	var a JanusAnchor
	copy(a[:], dec)
	return a
}

// specialSelfSendAnchor computes the SPECIAL_ANCHOR plaintext bound to D_e,
// the input context, K_o, the sender-receiver secret and the account spend
// key (§4.5 step 8), then keystream-encrypts it the same way a normal
// anchor is encrypted.
func specialSelfSendAnchor(sCtxSr, sSr [32]byte, dE xcrypto.PointX, inputContext InputContext, ko, accountSpendPubkey *xcrypto.PointEd) EncryptedJanusAnchor {
	digest := xcrypto.Hash32(domainAnchorSpecial, dE[:], []byte(inputContext), pointBytes(ko), sSr[:], pointBytes(accountSpendPubkey))
	var plain [16]byte
	copy(plain[:], digest[:16])
	enc := xcrypto.XORKeystream(domainEncAnchor, plain[:], sCtxSr[:], pointBytes(ko))
	var out EncryptedJanusAnchor
	copy(out[:], enc)
	return out
}

// GetCoinbaseOutputProposalV1 builds a coinbase enote (§4.5, §4.6). Coinbase
// destinations must be the plain main address with no payment id: there is
// no committed amount for a subaddress table scan to disambiguate against.
func GetCoinbaseOutputProposalV1(dest Destination, amount uint64, randomness JanusAnchor, blockIndex uint64) (CarrotCoinbaseEnoteV1, error) {
	if dest.IsSubaddress {
		return CarrotCoinbaseEnoteV1{}, invalidProposal(ReasonSubaddressInCoinbase)
	}
	if !dest.PaymentID.IsZero() {
		return CarrotCoinbaseEnoteV1{}, invalidProposal(ReasonIntegratedInCoinbase)
	}
	if randomness.IsZero() {
		return CarrotCoinbaseEnoteV1{}, invalidProposal(ReasonZeroAnchor)
	}

	inputContext := CoinbaseInputContext(blockIndex)
	dE := deriveEphemeralScalar(randomness, inputContext, dest)
	de := ephemeralPubkey(dE, dest)
	sSr := senderSharedSecretNormal(dE, dest)
	sCtxSr := contextualizeSharedSecret(sSr, de, inputContext)

	one := xcrypto.ScalarFromUint64(1)
	ca := xcrypto.PedersenCommit(one, amount)
	kog, kot := deriveKoScalars(sCtxSr, ca)
	ko := deriveKo(dest.Ksj, kog, kot)

	viewTag := computeViewTag(sSr, inputContext, ko)
	anchorEnc := encryptAnchorNormal(sCtxSr, ko, randomness)

	return CarrotCoinbaseEnoteV1{
		Ko:         ko.Bytes(),
		Amount:     amount,
		AnchorEnc:  anchorEnc,
		ViewTag:    viewTag,
		De:         de,
		BlockIndex: blockIndex,
	}, nil
}

// GetOutputProposalNormalV1 builds a normal (outgoing, non-self-send) enote
// (§4.5). It returns the enote together with its encrypted payment id; the
// finalization pipeline decides which single proposal's pid, if any, is
// actually published on the transaction.
func GetOutputProposalNormalV1(dest Destination, amount uint64, randomness JanusAnchor, firstKeyImage KeyImage) (CarrotEnoteV1, EncryptedPaymentId, error) {
	if randomness.IsZero() {
		return CarrotEnoteV1{}, EncryptedPaymentId{}, invalidProposal(ReasonZeroAnchor)
	}

	inputContext := NormalInputContext(firstKeyImage)
	dE := deriveEphemeralScalar(randomness, inputContext, dest)
	de := ephemeralPubkey(dE, dest)
	sSr := senderSharedSecretNormal(dE, dest)
	sCtxSr := contextualizeSharedSecret(sSr, de, inputContext)

	ka := deriveKa(sCtxSr, EnoteTypePayment)
	ca := xcrypto.PedersenCommit(ka, amount)
	kog, kot := deriveKoScalars(sCtxSr, ca)
	ko := deriveKo(dest.Ksj, kog, kot)

	amountEnc := encryptAmount(sCtxSr, ko, amount)
	pidEnc := encryptPaymentID(sCtxSr, ko, dest.PaymentID)
	viewTag := computeViewTag(sSr, inputContext, ko)
	anchorEnc := encryptAnchorNormal(sCtxSr, ko, randomness)

	enote := CarrotEnoteV1{
		Ko:              ko.Bytes(),
		Ca:              ca.Bytes(),
		AmountEnc:       amountEnc,
		AnchorEnc:       anchorEnc,
		ViewTag:         viewTag,
		De:              de,
		TxFirstKeyImage: firstKeyImage,
	}
	return enote, pidEnc, nil
}

// GetOutputProposalSpecialV1 builds a "special" self-send enote: a self-send
// constructed without a view-balance device, using only the account's
// incoming view key via the normal ECDH shared-secret formula but with a
// caller-supplied D_e (so it can share an ephemeral pubkey with another
// output in the same transaction, per the 2-out rule and scenario S6).
func GetOutputProposalSpecialV1(p SelfSendProposal, firstKeyImage KeyImage, viewDevice ViewIncomingDevice, accountSpendPubkey *xcrypto.PointEd) (CarrotEnoteV1, EncryptedPaymentId, error) {
	inputContext := NormalInputContext(firstKeyImage)
	sSr := viewDevice.SharedSecretNormal(p.De)
	sCtxSr := contextualizeSharedSecret(sSr, p.De, inputContext)

	ka := deriveKa(sCtxSr, p.EnoteType)
	ca := xcrypto.PedersenCommit(ka, p.Amount)
	kog, kot := deriveKoScalars(sCtxSr, ca)
	ko := deriveKo(p.AddressSpendPubkey, kog, kot)

	amountEnc := encryptAmount(sCtxSr, ko, p.Amount)
	pidEnc := encryptPaymentID(sCtxSr, ko, PaymentId{})
	viewTag := computeViewTag(sSr, inputContext, ko)
	anchorEnc := specialSelfSendAnchor(sCtxSr, sSr, p.De, inputContext, ko, accountSpendPubkey)

	enote := CarrotEnoteV1{
		Ko:              ko.Bytes(),
		Ca:              ca.Bytes(),
		AmountEnc:       amountEnc,
		AnchorEnc:       anchorEnc,
		ViewTag:         viewTag,
		De:              p.De,
		TxFirstKeyImage: firstKeyImage,
	}
	return enote, pidEnc, nil
}

// GetOutputProposalInternalV1 builds an internal self-send: the shared
// secret is s_vb directly, with no ECDH at all, since the wallet that
// constructs this enote is the same wallet that will later scan it (§4.4).
func GetOutputProposalInternalV1(p SelfSendProposal, firstKeyImage KeyImage, balanceDevice ViewBalanceDevice) (CarrotEnoteV1, EncryptedPaymentId, error) {
	inputContext := NormalInputContext(firstKeyImage)
	sSr := balanceDevice.InternalSharedSecret()
	sCtxSr := contextualizeSharedSecret(sSr, p.De, inputContext)

	ka := deriveKa(sCtxSr, p.EnoteType)
	ca := xcrypto.PedersenCommit(ka, p.Amount)
	kog, kot := deriveKoScalars(sCtxSr, ca)
	ko := deriveKo(p.AddressSpendPubkey, kog, kot)

	amountEnc := encryptAmount(sCtxSr, ko, p.Amount)
	pidEnc := encryptPaymentID(sCtxSr, ko, PaymentId{})
	viewTag := computeViewTag(sSr, inputContext, ko)
	anchorEnc := EncryptedJanusAnchor{}
	copy(anchorEnc[:], xcrypto.RandomBytes(16))

	enote := CarrotEnoteV1{
		Ko:              ko.Bytes(),
		Ca:              ca.Bytes(),
		AmountEnc:       amountEnc,
		AnchorEnc:       anchorEnc,
		ViewTag:         viewTag,
		De:              p.De,
		TxFirstKeyImage: firstKeyImage,
	}
	return enote, pidEnc, nil
}

// EnoteProposal is a sum type over the two proposal flavors a finalized
// output set is built from, with ergonomic accessors that work regardless
// of which variant is held (DESIGN NOTES §9) — a plain type switch is
// enough in Go, with no visitor/interface dispatch needed.
type EnoteProposal struct {
	Normal   *NormalProposal
	SelfSend *SelfSendProposal
}

// Amount returns the proposal's amount regardless of variant.
func (p EnoteProposal) Amount() uint64 {
	if p.Normal != nil {
		return p.Normal.Amount
	}
	return p.SelfSend.Amount
}

// OnetimeAddress returns the destination spend pubkey (K_s^j) a one-time
// address is built from, regardless of variant.
func (p EnoteProposal) OnetimeAddress() *xcrypto.PointEd {
	if p.Normal != nil {
		return p.Normal.Destination.Ksj
	}
	return p.SelfSend.AddressSpendPubkey
}

// IsSelfSend reports whether this proposal is a self-send.
func (p EnoteProposal) IsSelfSend() bool {
	return p.SelfSend != nil
}
