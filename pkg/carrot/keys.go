package carrot

import "github.com/t1amak/salvium/pkg/xcrypto"

// AccountSecrets is the full derived key tree of a wallet, computed once
// from a 32-byte master seed (§3 Key hierarchy, §4.2). Every field except
// the two public keys is secret and MUST be zeroized via Zeroize when
// the caller is done with it; Go has no destructors, so this is the
// caller's responsibility, typically via `defer secrets.Zeroize()`
// immediately after DeriveAll returns.
type AccountSecrets struct {
	SMaster [32]byte
	KPs     *xcrypto.Scalar // prove-spend key
	SVb     [32]byte        // view-balance secret
	KGi     *xcrypto.Scalar // generate-image key
	KV      *xcrypto.Scalar // incoming view key
	SGa     [32]byte        // generate-address secret

	Ks     *xcrypto.PointEd // public account spend key
	KvMain *xcrypto.PointEd // public account view key
}

// DeriveAll computes the full secret tree from a master seed, per §3/§4.2.
// Domain strings are literal ASCII and are never altered: doing so would
// silently change every derived key and break compatibility with any other
// implementation of this spec.
func DeriveAll(sMaster [32]byte) *AccountSecrets {
	kPs := xcrypto.HashScalar(domainProveSpendKey, sMaster[:])
	sVb := xcrypto.Hash32(domainViewBalanceSecret, sMaster[:])
	kGi := xcrypto.HashScalar(domainGenerateImageKey, sVb[:])
	kV := xcrypto.HashScalar(domainIncomingViewKey, sVb[:])
	sGa := xcrypto.Hash32(domainGenerateAddrSecret, sVb[:])

	ks := xcrypto.AddPoints(xcrypto.ScalarMultBase(kGi), xcrypto.ScalarMultPoint(kPs, xcrypto.GeneratorT()))
	kv := xcrypto.ScalarMultBase(kV)

	return &AccountSecrets{
		SMaster: sMaster,
		KPs:     kPs,
		SVb:     sVb,
		KGi:     kGi,
		KV:      kV,
		SGa:     sGa,
		Ks:      ks,
		KvMain:  kv,
	}
}

// Zeroize overwrites every secret field. The two public keys are left
// intact since they carry no confidentiality requirement.
func (a *AccountSecrets) Zeroize() {
	for i := range a.SMaster {
		a.SMaster[i] = 0
	}
	for i := range a.SVb {
		a.SVb[i] = 0
	}
	for i := range a.SGa {
		a.SGa[i] = 0
	}
	if a.KPs != nil {
		a.KPs.Zeroize()
	}
	if a.KGi != nil {
		a.KGi.Zeroize()
	}
	if a.KV != nil {
		a.KV.Zeroize()
	}
}
