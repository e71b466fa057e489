package carrot

import (
	"crypto/subtle"

	"github.com/t1amak/salvium/pkg/xcrypto"
)

// ScanResult is the outcome of a scan attempt against a single enote,
// carrying the recovered fields when Outcome is ScanMatched (§7).
type ScanResult struct {
	Outcome              ScanOutcome
	AddressSpendPubkey   *xcrypto.PointEd
	Amount               uint64
	AmountBlindingFactor *xcrypto.Scalar
	PaymentID            PaymentId
	EnoteType            EnoteType
}

// scanCoreNonCoinbase implements the common non-coinbase scanning core of
// §4.6: view-tag fast rejection, then recomputing the commitment under both
// candidate enote types and accepting whichever matches (PAYMENT wins ties
// by trying it first). It returns the decrypted nominal anchor alongside
// the result so callers that need Janus verification don't redo the work.
func scanCoreNonCoinbase(enote CarrotEnoteV1, sSr [32]byte, inputContext InputContext, txEncPid EncryptedPaymentId) (ScanResult, JanusAnchor, bool) {
	ko, err := xcrypto.PointFromBytes(enote.Ko)
	if err != nil {
		return ScanResult{Outcome: ScanMiss}, JanusAnchor{}, false
	}

	if computeViewTag(sSr, inputContext, ko) != enote.ViewTag {
		return ScanResult{Outcome: ScanMiss}, JanusAnchor{}, false
	}

	sCtxSr := contextualizeSharedSecret(sSr, xcrypto.PointX(enote.De), inputContext)

	for _, et := range [...]EnoteType{EnoteTypePayment, EnoteTypeChange} {
		ka := deriveKa(sCtxSr, et)
		amount := decryptAmount(sCtxSr, ko, enote.AmountEnc)
		candidateCa := xcrypto.PedersenCommit(ka, amount)
		candidateBytes := candidateCa.Bytes()
		if subtle.ConstantTimeCompare(candidateBytes[:], enote.Ca[:]) != 1 {
			continue
		}

		kog, kot := deriveKoScalars(sCtxSr, candidateCa)
		ext := xcrypto.AddPoints(xcrypto.ScalarMultBase(kog), xcrypto.ScalarMultPoint(kot, xcrypto.GeneratorT()))
		ksj := xcrypto.SubPoints(ko, ext)
		pid := decryptPaymentID(sCtxSr, ko, txEncPid)
		anchor := decryptAnchorNormal(sCtxSr, ko, enote.AnchorEnc)

		return ScanResult{
			Outcome:              ScanMatched,
			AddressSpendPubkey:   ksj,
			Amount:               amount,
			AmountBlindingFactor: ka,
			PaymentID:            pid,
			EnoteType:            et,
		}, anchor, true
	}

	return ScanResult{Outcome: ScanMiss}, JanusAnchor{}, false
}

// TryScanCarrotEnoteExternal scans a normal enote against a view-incoming
// device, including the Janus anti-linkability check (§4.6).
//
// txEncPid is the transaction-level encrypted payment id (see enote.go);
// pass the zero value if the transaction carries none.
func TryScanCarrotEnoteExternal(enote CarrotEnoteV1, viewDevice ViewIncomingDevice, accountSpendPubkey *xcrypto.PointEd, txEncPid EncryptedPaymentId) ScanResult {
	inputContext := NormalInputContext(enote.TxFirstKeyImage)
	sSr := viewDevice.SharedSecretNormal(xcrypto.PointX(enote.De))

	result, nominalAnchor, ok := scanCoreNonCoinbase(enote, sSr, inputContext, txEncPid)
	if !ok {
		return result
	}

	isSubaddress := !result.AddressSpendPubkey.Equal(accountSpendPubkey)
	var kvj *xcrypto.PointEd
	if isSubaddress {
		kvj = viewDevice.DeriveViewPubkey(result.AddressSpendPubkey)
	} else {
		kvj = viewDevice.MainAddressViewPubkey()
	}
	dest := Destination{
		Ksj:          result.AddressSpendPubkey,
		Kvj:          kvj,
		IsSubaddress: isSubaddress,
		PaymentID:    result.PaymentID,
	}

	dE := deriveEphemeralScalar(nominalAnchor, inputContext, dest)
	recomputedDe := ephemeralPubkey(dE, dest)
	if recomputedDe != xcrypto.PointX(enote.De) {
		result.Outcome = ScanJanusFail
		return result
	}

	return result
}

// TryScanCarrotEnoteInternal scans a normal enote using s_vb directly
// (no ECDH, no Janus check — internal self-sends are trusted by
// construction since the same wallet built them) (§4.6).
func TryScanCarrotEnoteInternal(enote CarrotEnoteV1, balanceDevice ViewBalanceDevice, txEncPid EncryptedPaymentId) ScanResult {
	inputContext := NormalInputContext(enote.TxFirstKeyImage)
	sSr := balanceDevice.InternalSharedSecret()
	result, _, _ := scanCoreNonCoinbase(enote, sSr, inputContext, txEncPid)
	return result
}

// TryScanCarrotCoinbaseEnote scans a coinbase enote. Only the main address
// is recognized: there is no committed amount to disambiguate a subaddress
// table scan against, since the amount is cleartext (§4.6).
func TryScanCarrotCoinbaseEnote(enote CarrotCoinbaseEnoteV1, viewDevice ViewIncomingDevice, accountSpendPubkey *xcrypto.PointEd) ScanResult {
	ko, err := xcrypto.PointFromBytes(enote.Ko)
	if err != nil {
		return ScanResult{Outcome: ScanMiss}
	}

	inputContext := CoinbaseInputContext(enote.BlockIndex)
	sSr := viewDevice.SharedSecretNormal(xcrypto.PointX(enote.De))

	if computeViewTag(sSr, inputContext, ko) != enote.ViewTag {
		return ScanResult{Outcome: ScanMiss}
	}

	sCtxSr := contextualizeSharedSecret(sSr, xcrypto.PointX(enote.De), inputContext)
	one := xcrypto.ScalarFromUint64(1)
	ca := xcrypto.PedersenCommit(one, enote.Amount)
	kog, kot := deriveKoScalars(sCtxSr, ca)
	ext := xcrypto.AddPoints(xcrypto.ScalarMultBase(kog), xcrypto.ScalarMultPoint(kot, xcrypto.GeneratorT()))
	ksj := xcrypto.SubPoints(ko, ext)

	if !ksj.Equal(accountSpendPubkey) {
		return ScanResult{Outcome: ScanMiss}
	}

	return ScanResult{
		Outcome:              ScanMatched,
		AddressSpendPubkey:   ksj,
		Amount:               enote.Amount,
		AmountBlindingFactor: one,
		EnoteType:            EnoteTypePayment,
	}
}
