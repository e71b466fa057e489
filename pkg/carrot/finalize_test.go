package carrot

import (
	"testing"

	"github.com/t1amak/salvium/pkg/xcrypto"
)

func TestDetermineAdditionalOutputTypePolicy(t *testing.T) {
	cases := []struct {
		numOutputs, numSelfSend     int
		remaining, haveSelfSendPay  bool
		want                        AdditionalOutputType
		wantErr                     bool
	}{
		{numOutputs: 0, want: 0, wantErr: true},
		{numOutputs: 2, numSelfSend: 1, remaining: false, want: AdditionalOutputNone},
		{numOutputs: 1, numSelfSend: 0, want: AdditionalOutputChangeShared},
		{numOutputs: 1, numSelfSend: 1, remaining: false, want: AdditionalOutputDummy},
		{numOutputs: 1, numSelfSend: 1, remaining: true, haveSelfSendPay: true, want: AdditionalOutputChangeShared},
		{numOutputs: 1, numSelfSend: 1, remaining: true, haveSelfSendPay: false, want: AdditionalOutputPaymentShared},
		{numOutputs: 5, numSelfSend: 1, remaining: true, want: AdditionalOutputChangeUnique},
		{numOutputs: CarrotMaxTxOutputs, numSelfSend: 1, want: 0, wantErr: true},
	}

	for i, c := range cases {
		got, err := DetermineAdditionalOutputType(c.numOutputs, c.numSelfSend, c.remaining, c.haveSelfSendPay)
		if c.wantErr {
			if err == nil {
				t.Errorf("case %d: expected error, got none", i)
			}
			continue
		}
		if err != nil {
			t.Errorf("case %d: unexpected error: %v", i, err)
			continue
		}
		if got != c.want {
			t.Errorf("case %d: got %s, want %s", i, got, c.want)
		}
	}
}

func TestGetOutputEnoteProposalsTwoOutputSharesEphemeralPubkey(t *testing.T) {
	bob := DeriveAll(testSeed(0xc0))
	defer bob.Zeroize()

	device := NewMemoryViewBalanceDevice(bob)
	firstKI := testKeyImage(0x21)

	recipient := DeriveAll(testSeed(0xc1))
	defer recipient.Zeroize()

	normal := NormalProposal{
		Destination: DestinationOf(MakeMainAddress(recipient)),
		Amount:      1000,
		Randomness:  testAnchor(0x31),
	}

	// The self-send must share D_e with the normal proposal: derive the
	// normal proposal's ephemeral pubkey the same way construction would,
	// then hand it to the self-send proposal explicitly.
	dE := deriveEphemeralScalar(normal.Randomness, NormalInputContext(firstKI), normal.Destination)
	sharedDe := ephemeralPubkey(dE, normal.Destination)

	selfSend := SelfSendProposal{
		AddressSpendPubkey: bob.Ks,
		Amount:             500,
		EnoteType:          EnoteTypeChange,
		De:                 sharedDe,
	}

	enotes, _, err := GetOutputEnoteProposals([]NormalProposal{normal}, []SelfSendProposal{selfSend}, firstKI, device, nil, nil)
	if err != nil {
		t.Fatalf("GetOutputEnoteProposals: %v", err)
	}
	if len(enotes) != 2 {
		t.Fatalf("expected 2 enotes, got %d", len(enotes))
	}
	if enotes[0].De != enotes[1].De {
		t.Error("2-output set must share a single ephemeral pubkey")
	}
}

func TestGetOutputEnoteProposalsRejectsTooFewOutputs(t *testing.T) {
	bob := DeriveAll(testSeed(0xc2))
	defer bob.Zeroize()
	device := NewMemoryViewBalanceDevice(bob)

	selfSend := SelfSendProposal{AddressSpendPubkey: bob.Ks, Amount: 1, EnoteType: EnoteTypeChange, De: xcrypto.PointX{}}
	_, _, err := GetOutputEnoteProposals(nil, []SelfSendProposal{selfSend}, testKeyImage(0x01), device, nil, nil)
	if err == nil {
		t.Fatal("expected ReasonTooFewOutputs error for a single-output set")
	}
}

func TestGetOutputEnoteProposalsRejectsDuplicateRandomness(t *testing.T) {
	bob := DeriveAll(testSeed(0xc3))
	defer bob.Zeroize()
	device := NewMemoryViewBalanceDevice(bob)

	recipient := DeriveAll(testSeed(0xc4))
	defer recipient.Zeroize()
	dest := DestinationOf(MakeMainAddress(recipient))

	normals := []NormalProposal{
		{Destination: dest, Amount: 1, Randomness: testAnchor(0x40)},
		{Destination: dest, Amount: 2, Randomness: testAnchor(0x40)},
	}
	selfSend := SelfSendProposal{AddressSpendPubkey: bob.Ks, Amount: 1, EnoteType: EnoteTypeChange, De: xcrypto.PointX{}}

	_, _, err := GetOutputEnoteProposals(normals, []SelfSendProposal{selfSend}, testKeyImage(0x02), device, nil, nil)
	if err == nil {
		t.Fatal("expected ReasonDuplicateRandomness error")
	}
}
