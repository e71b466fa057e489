package carrot

import (
	"testing"

	"github.com/t1amak/salvium/pkg/xcrypto"
)

func TestSpendAuthorityProofValid(t *testing.T) {
	x := xcrypto.RandomScalar()
	y := xcrypto.RandomScalar()
	k := xcrypto.AddPoints(xcrypto.ScalarMultBase(x), xcrypto.ScalarMultPoint(y, xcrypto.GeneratorT()))

	proof := MakeCarrotSpendAuthorityProof(x, y, k)
	if !VerifyCarrotSpendAuthorityProof(proof, k) {
		t.Fatal("a correctly constructed proof must verify")
	}
}

func TestSpendAuthorityProofRejectsTamperedFields(t *testing.T) {
	x := xcrypto.RandomScalar()
	y := xcrypto.RandomScalar()
	k := xcrypto.AddPoints(xcrypto.ScalarMultBase(x), xcrypto.ScalarMultPoint(y, xcrypto.GeneratorT()))
	proof := MakeCarrotSpendAuthorityProof(x, y, k)

	otherScalar := xcrypto.RandomScalar()
	otherPoint := xcrypto.ScalarMultBase(otherScalar)

	mutations := []func(SpendAuthorityProof) SpendAuthorityProof{
		func(p SpendAuthorityProof) SpendAuthorityProof { p.RG = otherPoint; return p },
		func(p SpendAuthorityProof) SpendAuthorityProof { p.RT = otherPoint; return p },
		func(p SpendAuthorityProof) SpendAuthorityProof { p.Z1 = otherScalar; return p },
		func(p SpendAuthorityProof) SpendAuthorityProof { p.Z2 = otherScalar; return p },
	}

	for i, mutate := range mutations {
		tampered := mutate(proof)
		if VerifyCarrotSpendAuthorityProof(tampered, k) {
			t.Errorf("mutation %d: tampered proof must not verify", i)
		}
	}

	if VerifyCarrotSpendAuthorityProof(proof, otherPoint) {
		t.Error("proof for K must not verify against an unrelated K")
	}
}
