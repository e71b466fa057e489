package carrot

import (
	"encoding/binary"
	"fmt"
)

// CarrotEnoteV1 is a normal (non-coinbase) one-time output record. Its wire
// layout is fixed and little-endian throughout (§6):
//
//	K_o(32) || C_a(32) || amount_enc(8) || anchor_enc(16) || view_tag(3) || D_e(32) || tx_first_key_image(32)
//
// Note the encrypted payment id is NOT part of this record: it is a
// transaction-level value (at most one real payment id per tx), returned
// separately by the construction pipeline and supplied separately to the
// scanner, matching how a payment id is carried in tx_extra rather than per
// output.
type CarrotEnoteV1 struct {
	Ko              [32]byte
	Ca              [32]byte
	AmountEnc       EncryptedAmount
	AnchorEnc       EncryptedJanusAnchor
	ViewTag         ViewTag
	De              [32]byte // PointX
	TxFirstKeyImage KeyImage
}

const carrotEnoteV1Size = 32 + 32 + 8 + 16 + 3 + 32 + 32

// MarshalBinary encodes the enote per the wire layout above.
func (e CarrotEnoteV1) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, carrotEnoteV1Size)
	out = append(out, e.Ko[:]...)
	out = append(out, e.Ca[:]...)
	out = append(out, e.AmountEnc[:]...)
	out = append(out, e.AnchorEnc[:]...)
	out = append(out, e.ViewTag[:]...)
	out = append(out, e.De[:]...)
	out = append(out, e.TxFirstKeyImage[:]...)
	return out, nil
}

// UnmarshalBinary decodes an enote per the wire layout above.
func (e *CarrotEnoteV1) UnmarshalBinary(data []byte) error {
	if len(data) != carrotEnoteV1Size {
		return fmt.Errorf("carrot: CarrotEnoteV1: want %d bytes, got %d", carrotEnoteV1Size, len(data))
	}
	off := 0
	off += copy(e.Ko[:], data[off:off+32])
	off += copy(e.Ca[:], data[off:off+32])
	off += copy(e.AmountEnc[:], data[off:off+8])
	off += copy(e.AnchorEnc[:], data[off:off+16])
	off += copy(e.ViewTag[:], data[off:off+3])
	off += copy(e.De[:], data[off:off+32])
	off += copy(e.TxFirstKeyImage[:], data[off:off+32])
	return nil
}

// CarrotCoinbaseEnoteV1 is a coinbase output record: the amount is
// cleartext and the commitment blinding factor is implicitly 1 (§4.6). Wire
// layout (§6):
//
//	K_o(32) || amount(8) || anchor_enc(16) || view_tag(3) || D_e(32) || block_index(8)
type CarrotCoinbaseEnoteV1 struct {
	Ko         [32]byte
	Amount     uint64
	AnchorEnc  EncryptedJanusAnchor
	ViewTag    ViewTag
	De         [32]byte
	BlockIndex uint64
}

const carrotCoinbaseEnoteV1Size = 32 + 8 + 16 + 3 + 32 + 8

// MarshalBinary encodes the coinbase enote per the wire layout above.
func (e CarrotCoinbaseEnoteV1) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, carrotCoinbaseEnoteV1Size)
	out = append(out, e.Ko[:]...)
	var amtBuf [8]byte
	binary.LittleEndian.PutUint64(amtBuf[:], e.Amount)
	out = append(out, amtBuf[:]...)
	out = append(out, e.AnchorEnc[:]...)
	out = append(out, e.ViewTag[:]...)
	out = append(out, e.De[:]...)
	var blkBuf [8]byte
	binary.LittleEndian.PutUint64(blkBuf[:], e.BlockIndex)
	out = append(out, blkBuf[:]...)
	return out, nil
}

// UnmarshalBinary decodes a coinbase enote per the wire layout above.
func (e *CarrotCoinbaseEnoteV1) UnmarshalBinary(data []byte) error {
	if len(data) != carrotCoinbaseEnoteV1Size {
		return fmt.Errorf("carrot: CarrotCoinbaseEnoteV1: want %d bytes, got %d", carrotCoinbaseEnoteV1Size, len(data))
	}
	off := 0
	off += copy(e.Ko[:], data[off:off+32])
	e.Amount = binary.LittleEndian.Uint64(data[off : off+8])
	off += 8
	off += copy(e.AnchorEnc[:], data[off:off+16])
	off += copy(e.ViewTag[:], data[off:off+3])
	off += copy(e.De[:], data[off:off+32])
	e.BlockIndex = binary.LittleEndian.Uint64(data[off : off+8])
	return nil
}
