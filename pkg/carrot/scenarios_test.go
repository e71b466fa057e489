package carrot

import "testing"

// TestScenarioS1MainAddressNormalSend: Alice sends a normal payment to Bob's
// main address; Bob recovers amount and spend pubkey via external scanning.
func TestScenarioS1MainAddressNormalSend(t *testing.T) {
	bob := DeriveAll(testSeed(0xe1))
	defer bob.Zeroize()

	dest := DestinationOf(MakeMainAddress(bob))
	enote, pidEnc, err := GetOutputProposalNormalV1(dest, 10_000, testAnchor(0xa1), testKeyImage(0xf1))
	if err != nil {
		t.Fatalf("S1: construction failed: %v", err)
	}

	device := NewMemoryViewBalanceDevice(bob)
	result := TryScanCarrotEnoteExternal(enote, device, bob.Ks, pidEnc)
	if result.Outcome != ScanMatched || result.Amount != 10_000 {
		t.Fatalf("S1: got outcome=%s amount=%d, want matched/10000", result.Outcome, result.Amount)
	}
}

// TestScenarioS2SubaddressNormalSend: Alice sends to Bob's subaddress (7,3);
// Bob's scanner must recover exactly that subaddress's spend pubkey.
func TestScenarioS2SubaddressNormalSend(t *testing.T) {
	bob := DeriveAll(testSeed(0xe2))
	defer bob.Zeroize()

	sub := MakeSubaddress(bob, 7, 3)
	dest := DestinationOfSubaddress(sub.Ksj, sub.Kvj)
	enote, pidEnc, err := GetOutputProposalNormalV1(dest, 2_500, testAnchor(0xa2), testKeyImage(0xf2))
	if err != nil {
		t.Fatalf("S2: construction failed: %v", err)
	}

	device := NewMemoryViewBalanceDevice(bob)
	result := TryScanCarrotEnoteExternal(enote, device, bob.Ks, pidEnc)
	if result.Outcome != ScanMatched {
		t.Fatalf("S2: got outcome=%s, want matched", result.Outcome)
	}
	if !result.AddressSpendPubkey.Equal(sub.Ksj) {
		t.Fatal("S2: recovered spend pubkey must equal subaddress (7,3)'s spend key")
	}
}

// TestScenarioS3IntegratedAddressSend: Alice sends to Bob's integrated
// address; Bob recovers the embedded payment id.
func TestScenarioS3IntegratedAddressSend(t *testing.T) {
	bob := DeriveAll(testSeed(0xe3))
	defer bob.Zeroize()

	pid := PaymentId{0xca, 0xfe, 0xba, 0xbe, 0x00, 0x11, 0x22, 0x33}
	ia := MakeIntegratedAddress(bob, pid)
	dest := DestinationOfIntegrated(ia)

	enote, pidEnc, err := GetOutputProposalNormalV1(dest, 750, testAnchor(0xa3), testKeyImage(0xf3))
	if err != nil {
		t.Fatalf("S3: construction failed: %v", err)
	}

	device := NewMemoryViewBalanceDevice(bob)
	result := TryScanCarrotEnoteExternal(enote, device, bob.Ks, pidEnc)
	if result.Outcome != ScanMatched || result.PaymentID != pid {
		t.Fatalf("S3: got outcome=%s pid=%v, want matched/%v", result.Outcome, result.PaymentID, pid)
	}
}

// TestScenarioS4InternalChangeRejectedByViewOnly: Bob constructs his own
// internal change output (s_vb-keyed); it must scan correctly via the
// internal path but must NOT be recoverable via a k_v-only (external)
// device, since internal self-sends intentionally bypass the ECDH formula
// external scanning relies on.
func TestScenarioS4InternalChangeRejectedByViewOnly(t *testing.T) {
	bob := DeriveAll(testSeed(0xe4))
	defer bob.Zeroize()

	main := MakeMainAddress(bob)
	device := NewMemoryViewBalanceDevice(bob)
	var de [32]byte
	de[0] = 0x01

	proposal := SelfSendProposal{AddressSpendPubkey: main.Ks, Amount: 333, EnoteType: EnoteTypeChange, De: de}
	enote, pidEnc, err := GetOutputProposalInternalV1(proposal, testKeyImage(0xf4), device)
	if err != nil {
		t.Fatalf("S4: construction failed: %v", err)
	}

	internalResult := TryScanCarrotEnoteInternal(enote, device, pidEnc)
	if internalResult.Outcome != ScanMatched || internalResult.Amount != 333 {
		t.Fatalf("S4: internal scan got outcome=%s amount=%d, want matched/333", internalResult.Outcome, internalResult.Amount)
	}

	externalResult := TryScanCarrotEnoteExternal(enote, device, bob.Ks, pidEnc)
	if externalResult.Outcome == ScanMatched {
		t.Fatal("S4: an internal self-send must not scan as matched via the external (k_v ECDH) path")
	}
}

// TestScenarioS5CoinbaseToSubaddressFails: a coinbase output may only ever
// target the main address; constructing one against a subaddress must fail.
func TestScenarioS5CoinbaseToSubaddressFails(t *testing.T) {
	bob := DeriveAll(testSeed(0xe5))
	defer bob.Zeroize()

	sub := MakeSubaddress(bob, 9, 9)
	dest := DestinationOfSubaddress(sub.Ksj, sub.Kvj)

	_, err := GetCoinbaseOutputProposalV1(dest, 1, testAnchor(0xa5), 42)
	if err == nil {
		t.Fatal("S5: coinbase construction against a subaddress must return an error")
	}
	invalidErr, ok := err.(*ErrInvalidProposal)
	if !ok || invalidErr.Reason != ReasonSubaddressInCoinbase {
		t.Fatalf("S5: got error %v, want ErrInvalidProposal{ReasonSubaddressInCoinbase}", err)
	}
}

// TestScenarioS6AliceToBobWithSharedChange: Alice builds a two-output
// transaction paying Bob and returning herself change, sharing D_e between
// the two outputs per the 2-out rule; both outputs scan correctly for their
// respective owners.
func TestScenarioS6AliceToBobWithSharedChange(t *testing.T) {
	alice := DeriveAll(testSeed(0xe6))
	defer alice.Zeroize()
	bob := DeriveAll(testSeed(0xe7))
	defer bob.Zeroize()

	firstKI := testKeyImage(0xf6)
	paymentToBob := NormalProposal{
		Destination: DestinationOf(MakeMainAddress(bob)),
		Amount:      8_000,
		Randomness:  testAnchor(0xa6),
	}

	dE := deriveEphemeralScalar(paymentToBob.Randomness, NormalInputContext(firstKI), paymentToBob.Destination)
	sharedDe := ephemeralPubkey(dE, paymentToBob.Destination)

	changeToAlice := SelfSendProposal{
		AddressSpendPubkey: alice.Ks,
		Amount:             2_000,
		EnoteType:          EnoteTypeChange,
		De:                 sharedDe,
	}

	aliceDevice := NewMemoryViewBalanceDevice(alice)
	enotes, pidEnc, err := GetOutputEnoteProposals(
		[]NormalProposal{paymentToBob},
		[]SelfSendProposal{changeToAlice},
		firstKI,
		aliceDevice, nil, nil,
	)
	if err != nil {
		t.Fatalf("S6: finalization failed: %v", err)
	}
	if len(enotes) != 2 {
		t.Fatalf("S6: got %d enotes, want 2", len(enotes))
	}
	if enotes[0].De != enotes[1].De {
		t.Fatal("S6: both outputs must share the same ephemeral pubkey")
	}

	bobDevice := NewMemoryViewBalanceDevice(bob)
	var bobMatched, aliceMatched int
	for _, e := range enotes {
		if r := TryScanCarrotEnoteExternal(e, bobDevice, bob.Ks, pidEnc); r.Outcome == ScanMatched && r.Amount == 8_000 {
			bobMatched++
		}
		if r := TryScanCarrotEnoteInternal(e, aliceDevice, pidEnc); r.Outcome == ScanMatched && r.Amount == 2_000 {
			aliceMatched++
		}
	}
	if bobMatched != 1 {
		t.Errorf("S6: bob must match exactly one output, matched %d", bobMatched)
	}
	if aliceMatched != 1 {
		t.Errorf("S6: alice must match exactly one output, matched %d", aliceMatched)
	}
}
