package carrot

import "github.com/t1amak/salvium/pkg/xcrypto"

// MainAddress is the account's top-level public address (§3).
type MainAddress struct {
	Ks     *xcrypto.PointEd // account spend key
	KvMain *xcrypto.PointEd // k_v · G
}

// MakeMainAddress builds the main address from an account's public keys.
func MakeMainAddress(secrets *AccountSecrets) MainAddress {
	return MainAddress{Ks: secrets.Ks, KvMain: secrets.KvMain}
}

// Subaddress is a subaddress identified by a (major, minor) index pair.
// Index (0, 0) is defined to be the main address itself, with subaddress
// scalar d = 1 (§4.3) — a special case, not a corollary of the general hash
// formula below, which does not generically evaluate to 1 at (0, 0).
type Subaddress struct {
	JMajor, JMinor uint32
	D              *xcrypto.Scalar  // subaddress scalar
	Ksj            *xcrypto.PointEd // d · K_s
	Kvj            *xcrypto.PointEd // k_v · K_s^j
}

// MakeSubaddress derives the subaddress at (jMajor, jMinor) from a wallet's
// secrets, per §3/§4.3.
func MakeSubaddress(secrets *AccountSecrets, jMajor, jMinor uint32) Subaddress {
	if jMajor == 0 && jMinor == 0 {
		one := xcrypto.ScalarFromUint64(1)
		kvj := xcrypto.ScalarMultPoint(secrets.KV, secrets.Ks)
		return Subaddress{JMajor: 0, JMinor: 0, D: one, Ksj: secrets.Ks, Kvj: kvj}
	}

	idxBytes := indexBytes(jMajor, jMinor)
	m := xcrypto.HashScalar(domainSubaddrM, secrets.SGa[:], idxBytes)
	ksBytes := secrets.Ks.Bytes()
	d := xcrypto.HashScalar(domainSubaddrD, ksBytes[:], m.Bytes(), idxBytes)

	ksj := xcrypto.ScalarMultPoint(d, secrets.Ks)
	kvj := xcrypto.ScalarMultPoint(secrets.KV, ksj)

	return Subaddress{JMajor: jMajor, JMinor: jMinor, D: d, Ksj: ksj, Kvj: kvj}
}

func indexBytes(jMajor, jMinor uint32) []byte {
	var buf [8]byte
	for i := 0; i < 4; i++ {
		buf[i] = byte(jMajor >> (8 * i))
		buf[4+i] = byte(jMinor >> (8 * i))
	}
	return buf[:]
}

// IntegratedAddress reuses a main address's public keys and carries a
// nonzero payment id (§3).
type IntegratedAddress struct {
	MainAddress
	PaymentID PaymentId
}

// MakeIntegratedAddress builds an integrated address; paymentID must be
// nonzero per the data model invariant (payment_id = 0 means "no pid").
func MakeIntegratedAddress(secrets *AccountSecrets, paymentID PaymentId) IntegratedAddress {
	return IntegratedAddress{MainAddress: MakeMainAddress(secrets), PaymentID: paymentID}
}

// Destination is the public-only tuple a sender needs to address an enote:
// (K_s^j, K_v^j, is_subaddress, payment_id). It is what a sender derives
// from a recipient's published address, never from their own secrets.
type Destination struct {
	Ksj          *xcrypto.PointEd
	Kvj          *xcrypto.PointEd
	IsSubaddress bool
	PaymentID    PaymentId
}

// DestinationOf builds the sender-side Destination for a main address.
func DestinationOf(addr MainAddress) Destination {
	return Destination{Ksj: addr.Ks, Kvj: addr.KvMain, IsSubaddress: false}
}

// DestinationOfSubaddress builds the sender-side Destination for a
// subaddress, given only its public keys (as a sender would
// receive them out of band — never the wallet's own Subaddress struct,
// which additionally carries the secret scalar d).
func DestinationOfSubaddress(ksj, kvj *xcrypto.PointEd) Destination {
	return Destination{Ksj: ksj, Kvj: kvj, IsSubaddress: true}
}

// DestinationOfIntegrated builds the sender-side Destination for an
// integrated address.
func DestinationOfIntegrated(addr IntegratedAddress) Destination {
	return Destination{Ksj: addr.Ks, Kvj: addr.KvMain, IsSubaddress: false, PaymentID: addr.PaymentID}
}
