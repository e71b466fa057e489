package xcrypto

// PedersenCommit computes C = blinding*G + amount*H, the amount commitment
// this spec uses for every enote (coinbase uses blinding = 1).
func PedersenCommit(blinding *Scalar, amount uint64) *PointEd {
	left := ScalarMultBase(blinding)
	right := ScalarMultPoint(ScalarFromUint64(amount), GeneratorH())
	return AddPoints(left, right)
}
