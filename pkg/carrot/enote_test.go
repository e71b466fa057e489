package carrot

import (
	"bytes"
	"testing"
)

func TestCarrotEnoteV1MarshalRoundTrip(t *testing.T) {
	bob := DeriveAll(testSeed(0xd0))
	defer bob.Zeroize()

	dest := DestinationOf(MakeMainAddress(bob))
	enote, _, err := GetOutputProposalNormalV1(dest, 4242, testAnchor(0x50), testKeyImage(0x60))
	if err != nil {
		t.Fatalf("GetOutputProposalNormalV1: %v", err)
	}

	data, err := enote.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if len(data) != carrotEnoteV1Size {
		t.Fatalf("marshaled length = %d, want %d", len(data), carrotEnoteV1Size)
	}

	var decoded CarrotEnoteV1
	if err := decoded.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if decoded != enote {
		t.Fatal("decoded enote does not equal the original")
	}
}

func TestCarrotEnoteV1UnmarshalRejectsWrongLength(t *testing.T) {
	var e CarrotEnoteV1
	if err := e.UnmarshalBinary(make([]byte, carrotEnoteV1Size-1)); err == nil {
		t.Fatal("expected an error for a truncated buffer")
	}
}

func TestCarrotCoinbaseEnoteV1MarshalRoundTrip(t *testing.T) {
	bob := DeriveAll(testSeed(0xd1))
	defer bob.Zeroize()

	dest := DestinationOf(MakeMainAddress(bob))
	enote, err := GetCoinbaseOutputProposalV1(dest, 1_000, testAnchor(0x51), 99)
	if err != nil {
		t.Fatalf("GetCoinbaseOutputProposalV1: %v", err)
	}

	data, err := enote.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if len(data) != carrotCoinbaseEnoteV1Size {
		t.Fatalf("marshaled length = %d, want %d", len(data), carrotCoinbaseEnoteV1Size)
	}

	var decoded CarrotCoinbaseEnoteV1
	if err := decoded.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if decoded != enote {
		t.Fatal("decoded coinbase enote does not equal the original")
	}

	redone, _ := decoded.MarshalBinary()
	if !bytes.Equal(redone, data) {
		t.Fatal("re-marshaling a decoded coinbase enote must reproduce the same bytes")
	}
}
