package carrot

import "github.com/t1amak/salvium/pkg/xcrypto"

// SpendAuthorityProof is a Schnorr-style proof of knowledge of (x, y) such
// that K = x·G + y·T (§4.8), used to prove spend authority over a one-time
// address's dual-generator opening without revealing (x, y).
type SpendAuthorityProof struct {
	RG *xcrypto.PointEd
	RT *xcrypto.PointEd
	Z1 *xcrypto.Scalar
	Z2 *xcrypto.Scalar
}

// MakeCarrotSpendAuthorityProof proves knowledge of (x, y) for K = x·G + y·T.
func MakeCarrotSpendAuthorityProof(x, y *xcrypto.Scalar, k *xcrypto.PointEd) SpendAuthorityProof {
	r1 := xcrypto.RandomScalar()
	r2 := xcrypto.RandomScalar()
	rg := xcrypto.ScalarMultBase(r1)
	rt := xcrypto.ScalarMultPoint(r2, xcrypto.GeneratorT())

	c := xcrypto.HashScalar(domainZKP, pointBytes(rg), pointBytes(rt), pointBytes(k))
	z1 := xcrypto.MulAdd(c, x, r1)
	z2 := xcrypto.MulAdd(c, y, r2)

	return SpendAuthorityProof{RG: rg, RT: rt, Z1: z1, Z2: z2}
}

// VerifyCarrotSpendAuthorityProof checks z1·G + z2·T - c'·K = R_G + R_T.
func VerifyCarrotSpendAuthorityProof(proof SpendAuthorityProof, k *xcrypto.PointEd) bool {
	c := xcrypto.HashScalar(domainZKP, pointBytes(proof.RG), pointBytes(proof.RT), pointBytes(k))

	lhs := xcrypto.AddPoints(xcrypto.ScalarMultBase(proof.Z1), xcrypto.ScalarMultPoint(proof.Z2, xcrypto.GeneratorT()))
	lhs = xcrypto.SubPoints(lhs, xcrypto.ScalarMultPoint(c, k))

	rhs := xcrypto.AddPoints(proof.RG, proof.RT)
	return lhs.Equal(rhs)
}
