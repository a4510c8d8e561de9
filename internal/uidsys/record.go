package uidsys

import "encoding/binary"

const (
	// RecordSize is the on-disk size of a single uid.sys record.
	RecordSize = 12

	titleIDOffset = 0
	slotOffset    = 10
)

// TitleRecord is a single decoded uid.sys entry.
type TitleRecord struct {
	// TitleID holds the category in the high 32 bits and the code in the low 32 bits.
	TitleID uint64
	// InstallSlot is the raw stored slot; see titleid.InstallIndex for the displayed value.
	InstallSlot uint16
}

// Encode serializes r into its 12-byte on-disk form. The reserved bytes are zero.
func Encode(r TitleRecord) [RecordSize]byte {
	var buf [RecordSize]byte
	binary.BigEndian.PutUint64(buf[titleIDOffset:], r.TitleID)
	binary.BigEndian.PutUint16(buf[slotOffset:], r.InstallSlot)
	return buf
}

// EncodeAll serializes records back to back in order.
func EncodeAll(records []TitleRecord) []byte {
	out := make([]byte, 0, len(records)*RecordSize)
	for _, r := range records {
		chunk := Encode(r)
		out = append(out, chunk[:]...)
	}
	return out
}

func decodeRecord(chunk []byte) TitleRecord {
	return TitleRecord{
		TitleID:     binary.BigEndian.Uint64(chunk[titleIDOffset : titleIDOffset+8]),
		InstallSlot: binary.BigEndian.Uint16(chunk[slotOffset : slotOffset+2]),
	}
}
