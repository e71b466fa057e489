package carrot

import (
	"testing"

	"github.com/t1amak/salvium/pkg/xcrypto"
)

func testSeed(b byte) [32]byte {
	var s [32]byte
	for i := range s {
		s[i] = b
	}
	return s
}

func TestDeriveAllKeyConsistency(t *testing.T) {
	secrets := DeriveAll(testSeed(0x11))
	defer secrets.Zeroize()

	wantKv := xcrypto.ScalarMultBase(secrets.KV)
	if !wantKv.Equal(secrets.KvMain) {
		t.Error("K_v_main must equal k_v * G")
	}

	wantKs := xcrypto.AddPoints(xcrypto.ScalarMultBase(secrets.KGi), xcrypto.ScalarMultPoint(secrets.KPs, xcrypto.GeneratorT()))
	if !wantKs.Equal(secrets.Ks) {
		t.Error("K_s must equal k_gi*G + k_ps*T")
	}
}

func TestDeriveAllIsDeterministic(t *testing.T) {
	a := DeriveAll(testSeed(0x42))
	b := DeriveAll(testSeed(0x42))
	defer a.Zeroize()
	defer b.Zeroize()

	if !a.Ks.Equal(b.Ks) || !a.KvMain.Equal(b.KvMain) {
		t.Fatal("DeriveAll must be a deterministic function of s_master")
	}
}

func TestAccountSecretsZeroize(t *testing.T) {
	secrets := DeriveAll(testSeed(0x77))
	secrets.Zeroize()

	if secrets.SMaster != ([32]byte{}) {
		t.Error("SMaster not zeroized")
	}
	if secrets.SVb != ([32]byte{}) {
		t.Error("SVb not zeroized")
	}
	if secrets.SGa != ([32]byte{}) {
		t.Error("SGa not zeroized")
	}
	if !secrets.KPs.IsZero() || !secrets.KGi.IsZero() || !secrets.KV.IsZero() {
		t.Error("secret scalars not zeroized")
	}
}
