package carrot

import (
	"bytes"
	"sort"

	"github.com/t1amak/salvium/pkg/xcrypto"
)

// AdditionalOutputType is the result of the output-set completion policy of
// §4.7: given the proposals gathered so far, what (if anything) the caller
// must still append before calling GetOutputEnoteProposals.
type AdditionalOutputType int

const (
	AdditionalOutputNone AdditionalOutputType = iota
	AdditionalOutputChangeShared
	AdditionalOutputDummy
	AdditionalOutputPaymentShared
	AdditionalOutputChangeUnique
)

func (t AdditionalOutputType) String() string {
	switch t {
	case AdditionalOutputNone:
		return "none"
	case AdditionalOutputChangeShared:
		return "change_shared"
	case AdditionalOutputDummy:
		return "dummy"
	case AdditionalOutputPaymentShared:
		return "payment_shared"
	case AdditionalOutputChangeUnique:
		return "change_unique"
	default:
		return "unknown"
	}
}

// DetermineAdditionalOutputType implements the policy table of §4.7 exactly.
// It is a total function on its documented domain; the two FATAL rows
// (empty set, set already at or beyond CarrotMaxTxOutputs) are the only
// cases returning a non-nil error.
func DetermineAdditionalOutputType(numOutputs, numSelfSend int, remainingChange, haveSelfSendPayment bool) (AdditionalOutputType, error) {
	switch {
	case numOutputs == 0:
		return 0, fatalf("finalize: output set is empty")
	case numOutputs >= CarrotMaxTxOutputs:
		return 0, fatalf("finalize: output set already at or beyond CarrotMaxTxOutputs (%d)", CarrotMaxTxOutputs)
	case numOutputs >= 2 && numSelfSend >= 1 && !remainingChange:
		return AdditionalOutputNone, nil
	case numOutputs == 1 && numSelfSend == 0:
		return AdditionalOutputChangeShared, nil
	case numOutputs == 1 && numSelfSend == 1 && !remainingChange:
		return AdditionalOutputDummy, nil
	case numOutputs == 1 && numSelfSend == 1 && remainingChange && haveSelfSendPayment:
		return AdditionalOutputChangeShared, nil
	case numOutputs == 1 && numSelfSend == 1 && remainingChange && !haveSelfSendPayment:
		return AdditionalOutputPaymentShared, nil
	case numOutputs > 1:
		return AdditionalOutputChangeUnique, nil
	default:
		return 0, fatalf("finalize: no policy rule matched (numOutputs=%d numSelfSend=%d)", numOutputs, numSelfSend)
	}
}

// GetOutputEnoteProposals is the finalization pipeline of §4.7: it assumes
// the caller has already used DetermineAdditionalOutputType to arrive at a
// complete (normals, selfSends) proposal list, and turns that list into a
// fully constructed, sorted output set.
//
// balanceDevice is preferred when non-nil (internal self-sends); otherwise
// viewDevice and accountSpendPubkey are used to build special self-sends.
// The returned EncryptedPaymentId is the single tx-level value to publish:
// the first integrated normal proposal's encrypted pid, or, when no
// proposal carries a real payment id, fresh random bytes.
func GetOutputEnoteProposals(
	normals []NormalProposal,
	selfSends []SelfSendProposal,
	firstKeyImage KeyImage,
	balanceDevice ViewBalanceDevice,
	viewDevice ViewIncomingDevice,
	accountSpendPubkey *xcrypto.PointEd,
) ([]CarrotEnoteV1, EncryptedPaymentId, error) {
	total := len(normals) + len(selfSends)
	if total < CarrotMinTxOutputs {
		return nil, EncryptedPaymentId{}, invalidProposal(ReasonTooFewOutputs)
	}
	if total > CarrotMaxTxOutputs {
		return nil, EncryptedPaymentId{}, invalidProposal(ReasonTooManyOutputs)
	}
	if len(selfSends) == 0 {
		return nil, EncryptedPaymentId{}, invalidProposal(ReasonNoSelfSend)
	}

	integratedCount := 0
	for _, n := range normals {
		if !n.Destination.PaymentID.IsZero() {
			integratedCount++
		}
	}
	if integratedCount > 1 {
		return nil, EncryptedPaymentId{}, invalidProposal(ReasonMultipleIntegrated)
	}

	sorted := append([]NormalProposal(nil), normals...)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i].Randomness[:], sorted[j].Randomness[:]) < 0
	})
	for i, n := range sorted {
		if n.Randomness.IsZero() {
			return nil, EncryptedPaymentId{}, invalidProposal(ReasonZeroAnchor)
		}
		if i > 0 && sorted[i].Randomness == sorted[i-1].Randomness {
			return nil, EncryptedPaymentId{}, invalidProposal(ReasonDuplicateRandomness)
		}
	}

	enotes := make([]CarrotEnoteV1, 0, total)
	var publishedPid EncryptedPaymentId
	var havePublishedPid bool

	for _, n := range sorted {
		enote, pidEnc, err := GetOutputProposalNormalV1(n.Destination, n.Amount, n.Randomness, firstKeyImage)
		if err != nil {
			return nil, EncryptedPaymentId{}, err
		}
		enotes = append(enotes, enote)
		if !n.Destination.PaymentID.IsZero() && !havePublishedPid {
			publishedPid = pidEnc
			havePublishedPid = true
		}
	}

	for _, s := range selfSends {
		var enote CarrotEnoteV1
		var err error
		if balanceDevice != nil {
			enote, _, err = GetOutputProposalInternalV1(s, firstKeyImage, balanceDevice)
		} else {
			enote, _, err = GetOutputProposalSpecialV1(s, firstKeyImage, viewDevice, accountSpendPubkey)
		}
		if err != nil {
			return nil, EncryptedPaymentId{}, err
		}
		enotes = append(enotes, enote)
	}

	if !havePublishedPid {
		copy(publishedPid[:], xcrypto.RandomBytes(8))
	}

	if err := verifyEphemeralPubkeySharing(enotes); err != nil {
		return nil, EncryptedPaymentId{}, err
	}

	sort.Slice(enotes, func(i, j int) bool {
		return bytes.Compare(enotes[i].Ko[:], enotes[j].Ko[:]) < 0
	})

	return enotes, publishedPid, nil
}

// verifyEphemeralPubkeySharing enforces the §4.7/§5 ordering invariant: an
// exactly-2-output set must share a single D_e; any larger set must have
// pairwise-distinct D_e values. It sorts by D_e internally only to make the
// pairwise-distinct check linear; the caller re-sorts by K_o afterward for
// emission.
func verifyEphemeralPubkeySharing(enotes []CarrotEnoteV1) error {
	byDe := append([]CarrotEnoteV1(nil), enotes...)
	sort.Slice(byDe, func(i, j int) bool {
		return bytes.Compare(byDe[i].De[:], byDe[j].De[:]) < 0
	})

	if len(byDe) == 2 {
		if byDe[0].De != byDe[1].De {
			return fatalf("finalize: 2-output set must share a single ephemeral pubkey")
		}
		return nil
	}

	for i := 1; i < len(byDe); i++ {
		if byDe[i].De == byDe[i-1].De {
			return fatalf("finalize: output set of size %d must have pairwise-distinct ephemeral pubkeys", len(byDe))
		}
	}
	return nil
}
