package carrot

import (
	"testing"

	"github.com/t1amak/salvium/pkg/xcrypto"
)

func TestMainAddressIsSubaddressZeroZero(t *testing.T) {
	secrets := DeriveAll(testSeed(0x01))
	defer secrets.Zeroize()

	main := MakeMainAddress(secrets)
	sub := MakeSubaddress(secrets, 0, 0)

	if !sub.Ksj.Equal(main.Ks) {
		t.Error("subaddress (0,0) must equal the main address spend key")
	}
	// K_v^j at (0,0) is k_v*K_s, distinct from K_v_main = k_v*G: the main
	// address publishes k_v*G specifically so senders can ECDH against the
	// base point, while the general subaddress formula is always k_v*K_s^j.
	wantKvj := xcrypto.ScalarMultPoint(secrets.KV, secrets.Ks)
	if !sub.Kvj.Equal(wantKvj) {
		t.Error("subaddress (0,0)'s view key must equal k_v * K_s")
	}
	wantKvMain := xcrypto.ScalarMultBase(secrets.KV)
	if !main.KvMain.Equal(wantKvMain) {
		t.Error("main address view key must equal k_v * G")
	}
}

func TestSubaddressViewKeyConsistency(t *testing.T) {
	secrets := DeriveAll(testSeed(0x02))
	defer secrets.Zeroize()

	for _, idx := range [][2]uint32{{0, 0}, {0, 1}, {1, 0}, {7, 3}, {1 << 20, 1 << 20}} {
		sub := MakeSubaddress(secrets, idx[0], idx[1])
		want := xcrypto.ScalarMultPoint(secrets.KV, sub.Ksj)
		if !want.Equal(sub.Kvj) {
			t.Errorf("subaddress (%d,%d): K_v^j must equal k_v * K_s^j", idx[0], idx[1])
		}
	}
}

func TestDistinctSubaddressesHaveDistinctKeys(t *testing.T) {
	secrets := DeriveAll(testSeed(0x03))
	defer secrets.Zeroize()

	a := MakeSubaddress(secrets, 1, 0)
	b := MakeSubaddress(secrets, 0, 1)
	if a.Ksj.Equal(b.Ksj) {
		t.Error("distinct subaddress indices must yield distinct spend keys")
	}
}

func TestIntegratedAddressCarriesPaymentID(t *testing.T) {
	secrets := DeriveAll(testSeed(0x04))
	defer secrets.Zeroize()

	pid := PaymentId{1, 2, 3, 4, 5, 6, 7, 8}
	ia := MakeIntegratedAddress(secrets, pid)
	if ia.PaymentID != pid {
		t.Error("integrated address must carry the given payment id")
	}
	if !ia.Ks.Equal(secrets.Ks) {
		t.Error("integrated address must reuse the main address spend key")
	}
}
