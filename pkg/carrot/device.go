package carrot

import "github.com/t1amak/salvium/pkg/xcrypto"

// ViewIncomingDevice is the lowest-privilege capability this package's
// scanning code needs: the ability to compute the receiver-side ECDH
// shared secret from an ephemeral pubkey, using only k_v. This is the
// "view-incoming device" of DESIGN NOTES §9, modeled as a borrowed
// interface rather than a struct so a production wallet can back it with a
// hardware signer that never exposes k_v in process memory.
type ViewIncomingDevice interface {
	// SharedSecretNormal computes s_sr = 8 · k_v · D_e for external
	// (non-internal) scanning.
	SharedSecretNormal(dE xcrypto.PointX) [32]byte

	// DeriveViewPubkey computes k_v · ksj, i.e. the subaddress view pubkey
	// K_v^j for a recovered candidate spend pubkey K_s^j. External scanning
	// uses this to rebuild the Destination a Janus check recomputes d_e
	// against, without ever exposing the raw scalar k_v to pkg/carrot.
	DeriveViewPubkey(ksj *xcrypto.PointEd) *xcrypto.PointEd

	// MainAddressViewPubkey computes K_v_main = k_v · G. Janus verification
	// needs this distinct value (not DeriveViewPubkey's k_v · K_s) whenever
	// the recovered destination turns out to be the main address, since a
	// sender addressing the main address hashes K_v_main into d_e, not
	// k_v · K_s (§3, §4.4).
	MainAddressViewPubkey() *xcrypto.PointEd
}

// ViewBalanceDevice additionally carries view-balance privileges: it can
// compute an internal self-send's shared secret directly from s_vb (no
// ECDH needed), and it can derive the generate-address secret s_ga used to
// build subaddresses. This is the "view-balance device" of DESIGN NOTES §9.
type ViewBalanceDevice interface {
	ViewIncomingDevice

	// InternalSharedSecret returns s_vb, used directly as the shared secret
	// for an internal self-send (§4.4).
	InternalSharedSecret() [32]byte

	// GenerateAddressSecret returns s_ga, used to derive subaddress scalars.
	GenerateAddressSecret() [32]byte
}

// MemoryViewBalanceDevice is a plain in-memory implementation backed by an
// AccountSecrets, used throughout this package's tests and by the
// demonstration CLI. A production wallet would instead back ViewBalanceDevice
// with a hardware or remote signer; this package never assumes which.
type MemoryViewBalanceDevice struct {
	secrets *AccountSecrets
}

// NewMemoryViewBalanceDevice wraps secrets for local use. The caller
// retains ownership of secrets and is responsible for zeroizing it; this
// device does not copy the underlying key material into longer-lived
// storage.
func NewMemoryViewBalanceDevice(secrets *AccountSecrets) *MemoryViewBalanceDevice {
	return &MemoryViewBalanceDevice{secrets: secrets}
}

// SharedSecretNormal implements ViewIncomingDevice.
func (d *MemoryViewBalanceDevice) SharedSecretNormal(dE xcrypto.PointX) [32]byte {
	return xcrypto.MontgomeryLadder8(d.secrets.KV, dE)
}

// DeriveViewPubkey implements ViewIncomingDevice.
func (d *MemoryViewBalanceDevice) DeriveViewPubkey(ksj *xcrypto.PointEd) *xcrypto.PointEd {
	return xcrypto.ScalarMultPoint(d.secrets.KV, ksj)
}

// MainAddressViewPubkey implements ViewIncomingDevice.
func (d *MemoryViewBalanceDevice) MainAddressViewPubkey() *xcrypto.PointEd {
	return xcrypto.ScalarMultBase(d.secrets.KV)
}

// InternalSharedSecret implements ViewBalanceDevice.
func (d *MemoryViewBalanceDevice) InternalSharedSecret() [32]byte {
	return d.secrets.SVb
}

// GenerateAddressSecret implements ViewBalanceDevice.
func (d *MemoryViewBalanceDevice) GenerateAddressSecret() [32]byte {
	return d.secrets.SGa
}
