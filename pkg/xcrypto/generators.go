package xcrypto

// T and H are the two auxiliary generators this spec layers on top of the
// standard Ed25519 base point G: T backs the dual-generator one-time address
// (K_o = K_s^j + k_o^g·G + k_o^t·T) and the account spend key
// (K_s = k_gi·G + k_ps·T); H is the Pedersen blinding generator
// (C_a = k_a·G + a·H). Both are computed once at init, not hardcoded, so the
// "recompute and compare" conformance test (Testable Property 2) is
// checking this package against itself rather than against a copied
// literal.
var (
	genT = Mul8(HashToPoint(func() []byte { h := KeccakRaw([]byte("Monero Generator T")); return h[:] }()))
	genH = Mul8(HashToPoint(func() []byte { g := BaseG().Bytes(); h := KeccakRaw(g[:]); return h[:] }()))
)

// GeneratorT returns the second independent generator T.
func GeneratorT() *PointEd {
	p := &PointEd{}
	*p = *genT
	return p
}

// GeneratorH returns the Pedersen blinding generator H.
func GeneratorH() *PointEd {
	p := &PointEd{}
	*p = *genH
	return p
}
